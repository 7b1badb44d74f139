// SPDX-License-Identifier: MIT
// Package: facetkit/edgelist
//
// load.go — KONECT edge list loader (Load, LoadFile).
//
// Contract:
//   • Lines whose first non-space rune (Unicode aware) is '%' are comments.
//   • Every other line needs ≥ 2 whitespace-separated fields; the first two
//     parse as base-10 int64 and are shifted from 1-based to 0-based.
//   • Extra fields (KONECT weights, timestamps) are ignored.
//   • Duplicate edges collapse: the result is a Set, not a multiset.
//   • The first malformed line aborts with *textio.ParseError; no recovery.
//
// Complexity:
//   • Time: O(total input bytes).
//   • Space: O(E) for the unique edges.
//
// Determinism:
//   • Set order is first-seen file order.

package edgelist

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/facetkit/textio"
)

const commentPrefix = "%"

var (
	errTooFewFields = errors.New("need at least two fields")
	errIDUnderflow  = errors.New("id too small to shift to 0-based")
)

// Load reads a KONECT-style edge list from r.
//
// Lines starting with '%' (after leading whitespace) are comments. Every
// other line must carry at least two integer fields; extra fields such as
// weights or timestamps are ignored. Ids are shifted from 1-based to
// 0-based. Duplicate edges collapse into one.
//
// The first malformed line aborts the load with a *textio.ParseError.
func Load(r io.Reader) (*Set, error) {
	set := NewSet() // insertion-ordered, dedups on Add
	err := textio.ScanLines(r, func(n int, line string) error {
		// Comment detection mirrors the field splitter: any Unicode space.
		if strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), commentPrefix) {
			return nil
		}
		e, err := parseEdge(line)
		if err != nil {
			// Attach line number and raw text; the path is added by LoadFile.
			return textio.NewParseError(n, line, err)
		}
		set.Add(e) // duplicates are dropped silently

		return nil
	})
	if err != nil {
		return nil, err
	}

	return set, nil
}

// LoadFile opens path with textio.Open and loads it.
func LoadFile(path string) (*Set, error) {
	rc, err := textio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	set, err := Load(rc)
	if err != nil {
		return nil, textio.WithPath(err, path)
	}

	return set, nil
}

func parseEdge(line string) (Edge, error) {
	fields := strings.Fields(line)
	// Only the first two fields matter; KONECT may append weight/time.
	if len(fields) < 2 {
		return Edge{}, fmt.Errorf("%w, got %d", errTooFewFields, len(fields))
	}
	l, err := parseID(fields[0])
	if err != nil {
		return Edge{}, err
	}
	r, err := parseID(fields[1])
	if err != nil {
		return Edge{}, err
	}

	return Edge{Left: l, Right: r}, nil
}

// parseID parses a 1-based id and returns it 0-based.
func parseID(tok string) (int64, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, err
	}
	// v-1 would wrap around to MaxInt64.
	if v == math.MinInt64 {
		return 0, errIDUnderflow
	}

	return v - 1, nil
}
