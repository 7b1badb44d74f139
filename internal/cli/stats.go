// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// convertStats is the --stats summary of a bip2facets run.
type convertStats struct {
	Input         string `yaml:"input"`
	Column        int    `yaml:"column"`
	Edges         int    `yaml:"edges"`
	LeftVertices  int    `yaml:"left_vertices"`
	RightVertices int    `yaml:"right_vertices"`
	Facets        int    `yaml:"facets"`
}

// pruneStats is the --stats summary of a prunefacets run.
type pruneStats struct {
	Inputs     []string `yaml:"inputs"`
	FacetsRead int      `yaml:"facets_read"`
	Maximal    int      `yaml:"maximal"`
	Removed    int      `yaml:"removed"`
}

// writeStats encodes v as YAML to dest: "-" means stderr, anything else is
// a file path that is created or truncated.
func writeStats(dest string, stderr io.Writer, v any) error {
	if dest == "-" {
		return encodeYAML(stderr, v)
	}
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	if err := encodeYAML(f, v); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}

	return enc.Close()
}
