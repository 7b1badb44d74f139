// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/facetkit/edgelist"
	"github.com/katalvlaran/facetkit/facet"
	"github.com/katalvlaran/facetkit/textio"
)

type convertFlags struct {
	commonFlags
	col int
}

// NewConvertCommand builds the bip2facets command writing facets to stdout
// and diagnostics to stderr.
func NewConvertCommand(stdout, stderr io.Writer) *cobra.Command {
	flags := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "bip2facets [flags] edge_list_path",
		Short: "Convert a KONECT bipartite edge list to a list of maximal facets",
		Long: `bip2facets reads a bipartite edge list (KONECT format, 1-indexed, '%' comments),
relabels both vertex classes densely from 0 and prints one facet per line:
the sorted ids of the other column for every distinct value of --col.

Use "-" to read standard input; files ending in .zst are decompressed.`,
		Args: requireArgs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, flags, args[0])
		},
	}
	cmd.Flags().IntVarP(&flags.col, "col", "c", 0, "Column to use as facets (0 or 1)")
	flags.register(cmd)

	return newCommand(cmd, stdout, stderr)
}

func runConvert(cmd *cobra.Command, flags *convertFlags, path string) error {
	col, err := edgelist.ParseColumn(flags.col)
	if err != nil {
		return &UsageError{Err: err}
	}
	logger := newLogger(cmd.ErrOrStderr(), cmd.Name(), flags.verbose)

	logger.Printf("loading %s", path)
	set, err := loadEdges(cmd, path)
	if err != nil {
		return err
	}
	logger.Printf("%d unique edges", set.Len())
	if set.Len() == 0 {
		logger.Printf("%s has no edges, nothing to emit", path)
	}

	facets, m, err := facet.FromEdges(set, col)
	if err != nil {
		return err
	}
	n, err := facet.WriteList(cmd.OutOrStdout(), facets)
	if err != nil {
		return err
	}
	logger.Printf("wrote %d facets grouped on column %d", n, col)

	if flags.stats == "" {
		return nil
	}

	return writeStats(flags.stats, cmd.ErrOrStderr(), convertStats{
		Input:         path,
		Column:        int(col),
		Edges:         set.Len(),
		LeftVertices:  m.Size(edgelist.Left),
		RightVertices: m.Size(edgelist.Right),
		Facets:        n,
	})
}

// loadEdges reads "-" from the command's input so tests can feed it.
func loadEdges(cmd *cobra.Command, path string) (*edgelist.Set, error) {
	if path == textio.Stdin {
		return edgelist.Load(cmd.InOrStdin())
	}

	return edgelist.LoadFile(path)
}
