// SPDX-License-Identifier: MIT

// Command bip2facets converts a KONECT bipartite edge list into a maximal
// facet list.
//
//	bip2facets --col 1 out.github > github.facets
package main

import (
	"os"

	"github.com/katalvlaran/facetkit/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.NewConvertCommand(os.Stdout, os.Stderr), os.Args[1:]))
}
