// SPDX-License-Identifier: MIT
// Package: facetkit/edgelist
//
// sort.go — column sort feeding facet.Generate (SortBy).
//
// Contract:
//   • Returns a copy; the input slice is not reordered.
//   • Key is the grouping column only; ties keep input order (stable).
//
// Complexity:
//   • Time: O(E log E). Space: O(E) for the copy.

package edgelist

import (
	"cmp"
	"slices"
)

// SortBy returns a copy of edges stably sorted by their value in column c.
// Ties keep their input order; the other column is not a secondary key.
// An invalid c sorts by Left, matching Edge.At.
func SortBy(edges []Edge, c Column) []Edge {
	out := slices.Clone(edges)
	slices.SortStableFunc(out, func(a, b Edge) int {
		return cmp.Compare(a.At(c), b.At(c))
	})

	return out
}
