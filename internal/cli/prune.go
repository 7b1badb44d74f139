// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/facetkit/facet"
	"github.com/katalvlaran/facetkit/textio"
)

// NewPruneCommand builds the prunefacets command writing maximal facets to
// stdout and diagnostics to stderr.
func NewPruneCommand(stdout, stderr io.Writer) *cobra.Command {
	flags := &commonFlags{}
	cmd := &cobra.Command{
		Use:   "prunefacets [flags] facet_list [facet_list...]",
		Short: "Remove included and duplicate facets from a facet list",
		Long: `prunefacets reads facets (one per line, whitespace-separated integers), merges
duplicates and drops every facet contained in another one. Survivors are
printed largest first.

Several lists or doublestar globs ("runs/**/*.facets") are read as one
collection. Use "-" for standard input; files ending in .zst are decompressed.`,
		Args: requireArgs(1, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrune(cmd, flags, args)
		},
	}
	flags.register(cmd)

	return newCommand(cmd, stdout, stderr)
}

func runPrune(cmd *cobra.Command, flags *commonFlags, patterns []string) error {
	logger := newLogger(cmd.ErrOrStderr(), cmd.Name(), flags.verbose)

	paths, err := textio.Expand(patterns)
	if err != nil {
		return &UsageError{Err: err}
	}
	logger.Printf("reading %d input(s)", len(paths))
	in, err := readFacets(cmd, paths)
	if err != nil {
		return err
	}
	if len(in) == 0 {
		logger.Printf("no facets read, nothing to emit")
	}

	maximal := facet.Prune(in)
	n, err := facet.WriteList(cmd.OutOrStdout(), slices.Values(maximal))
	if err != nil {
		return err
	}
	logger.Printf("kept %d of %d facets", n, len(in))

	if flags.stats == "" {
		return nil
	}

	return writeStats(flags.stats, cmd.ErrOrStderr(), pruneStats{
		Inputs:     paths,
		FacetsRead: len(in),
		Maximal:    n,
		Removed:    len(in) - n,
	})
}

// readFacets concatenates the facets of every path, reading "-" from the
// command's input.
func readFacets(cmd *cobra.Command, paths []string) ([]facet.Facet, error) {
	var out []facet.Facet
	for _, p := range paths {
		var (
			fs  []facet.Facet
			err error
		)
		if p == textio.Stdin {
			fs, err = facet.ReadList(cmd.InOrStdin())
		} else {
			fs, err = facet.ReadListFiles(p)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, fs...)
	}

	return out, nil
}
