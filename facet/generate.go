// SPDX-License-Identifier: MIT
// Package: facetkit/facet
//
// generate.go — grouping of a column-sorted edge list into facets
// (Generate, FromEdges).
//
// Contract:
//   • Input MUST be sorted on col; Generate never sorts.
//   • One yielded run per maximal block of equal col values, in input order;
//     the trailing run is always yielded; empty input yields nothing.
//   • Each yielded slice is freshly allocated and owned by the caller.
//   • Invalid col → edgelist.ErrBadColumn before any iteration.
//
// Complexity:
//   • Generate: O(E) time, O(largest run) live space.
//   • FromEdges: O(E log E) dominated by the sort.
//
// Determinism:
//   • FromEdges emits facets in ascending dense grouping id.

package facet

import (
	"iter"

	"github.com/katalvlaran/facetkit/edgelist"
)

// Generate groups a column-sorted edge list into facets.
//
// Each yielded slice holds the other-column values of one maximal run of
// consecutive edges sharing the same value in col, in input order. The
// slice is owned by the caller. Every run is yielded, including the last;
// an empty edge list yields nothing.
//
// sorted MUST already be ordered by col (see edgelist.SortBy); Generate
// does not sort. Equal values that are not adjacent form separate runs.
func Generate(sorted []edgelist.Edge, col edgelist.Column) (iter.Seq[[]int64], error) {
	if err := col.Validate(); err != nil {
		return nil, err
	}
	member := col.Other() // the column that becomes facet content

	return func(yield func([]int64) bool) {
		// Guard before peeking at sorted[0].
		if len(sorted) == 0 {
			return
		}
		prev := sorted[0].At(col)
		var run []int64
		for _, e := range sorted {
			cur := e.At(col)
			if cur != prev {
				// Boundary: the previous run is complete.
				if !yield(run) {
					return
				}
				run = nil // fresh backing array; the yielded slice stays intact
			}
			run = append(run, e.At(member))
			prev = cur
		}
		// The loop only yields on boundaries; flush the last run.
		yield(run)
	}, nil
}

// FromEdges runs the converter pipeline over set: dense remap of both
// sides, stable sort on col, grouping, and conversion of every run to a
// Facet. Facets come out in ascending order of their grouping id.
func FromEdges(set *edgelist.Set, col edgelist.Column) (iter.Seq[Facet], *edgelist.Mapping, error) {
	if err := col.Validate(); err != nil {
		return nil, nil, err
	}
	edges, m := edgelist.Remap(set.Edges())
	// Sorting on col makes every group contiguous for Generate.
	runs, err := Generate(edgelist.SortBy(edges, col), col)
	if err != nil {
		return nil, nil, err
	}

	return func(yield func(Facet) bool) {
		for run := range runs {
			// New sorts members ascending for presentation.
			if !yield(New(run...)) {
				return
			}
		}
	}, m, nil
}
