// SPDX-License-Identifier: MIT
// Package: facetkit/facet
//
// io.go — facet list text format (ReadList, ReadListFiles, WriteList).
//
// Contract:
//   • One facet per line, whitespace-separated int64; no comments.
//   • A blank line is the empty facet.
//   • WriteList prints vertices ascending, single-space separated.

package facet

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/katalvlaran/facetkit/textio"
)

// ReadList parses one facet per line of whitespace-separated integers.
// A blank line is the empty facet. Comments are not supported.
func ReadList(r io.Reader) ([]Facet, error) {
	var out []Facet
	err := textio.ScanLines(r, func(n int, line string) error {
		fields := strings.Fields(line)
		vs := make([]int64, len(fields))
		for i, tok := range fields {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return textio.NewParseError(n, line, err)
			}
			vs[i] = v
		}
		out = append(out, New(vs...))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ReadListFiles reads every path with textio.Open and concatenates the
// facets in path order.
func ReadListFiles(paths ...string) ([]Facet, error) {
	var out []Facet
	for _, p := range paths {
		fs, err := readListFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, fs...)
	}

	return out, nil
}

func readListFile(path string) ([]Facet, error) {
	rc, err := textio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	fs, err := ReadList(rc)
	if err != nil {
		return nil, textio.WithPath(err, path)
	}

	return fs, nil
}

// WriteList prints every facet on its own line and returns how many were
// written. Output is buffered and flushed before returning.
func WriteList(w io.Writer, facets iter.Seq[Facet]) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for f := range facets {
		if _, err := bw.WriteString(f.String()); err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}

	return n, bw.Flush()
}
