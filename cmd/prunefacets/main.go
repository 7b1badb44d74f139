// SPDX-License-Identifier: MIT

// Command prunefacets removes included facets from facet lists.
//
//	prunefacets github.facets > github.maximal
package main

import (
	"os"

	"github.com/katalvlaran/facetkit/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.NewPruneCommand(os.Stdout, os.Stderr), os.Args[1:]))
}
