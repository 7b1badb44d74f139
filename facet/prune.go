// SPDX-License-Identifier: MIT
// Package: facetkit/facet
//
// prune.go — maximal-facet extraction by size-stratified subsumption
// removal (Prune).
//
// Contract:
//   • Duplicates (equal Key) collapse to one representative.
//   • A facet survives iff it is not a subset of another distinct facet.
//   • Every survivor is present in the input; nothing is synthesized.
//   • Sizes are finalized strictly largest first; a size class is emitted only
//     after every larger facet has removed its subsets from it.
//   • The input slice is never modified; empty input → nil.
//
// Complexity:
//   • Time: O(B²·S) for B distinct facets of average size S.
//   • Space: O(B) for buckets and the seen-key set.
//
// Determinism:
//   • Descending cardinality; lexicographic vertices within a cardinality.

package facet

import (
	"maps"
	"slices"
)

// Prune returns the maximal facets of facets: duplicates are merged and
// every facet that is a subset of another one is dropped. Each returned
// facet is present in the input.
//
// Sizes are processed strictly largest first, and a size class is only
// emitted after every larger facet has removed its subsets from it.
// Same-size facets never include each other once deduplicated, so a
// bucket is final as soon as its turn comes.
//
// Output: descending cardinality, lexicographic within a cardinality.
// Complexity: O(B²·S) time, O(B) extra space.
func Prune(facets []Facet) []Facet {
	if len(facets) == 0 {
		return nil // nothing to bucket
	}

	// Equal sets share a Key and therefore a size; global dedup is
	// equivalent to per-bucket dedup.
	bySize := make(map[int][]Facet)
	seen := make(map[Key]struct{}, len(facets))
	for _, f := range facets {
		if _, dup := seen[f.key]; dup {
			continue
		}
		seen[f.key] = struct{}{}
		bySize[f.Len()] = append(bySize[f.Len()], f)
	}

	// Descending cardinalities drive the outer loop.
	sizes := slices.Sorted(maps.Keys(bySize))
	slices.Reverse(sizes)
	// Lexicographic order inside a bucket fixes both the ref order and the
	// emission order.
	for _, s := range sizes {
		slices.SortFunc(bySize[s], Compare)
	}

	out := make([]Facet, 0, len(seen))
	for i, size := range sizes {
		// bySize[size] is final here: only larger refs could remove from it,
		// and they all ran in earlier iterations.
		refs := bySize[size]
		for _, ref := range refs {
			for _, smaller := range sizes[i+1:] {
				if len(bySize[smaller]) == 0 {
					continue // already emptied by a previous ref
				}
				// DeleteFunc compacts in place; bySize[size] is not touched.
				bySize[smaller] = slices.DeleteFunc(bySize[smaller], func(f Facet) bool {
					return f.SubsetOf(ref)
				})
			}
		}
		out = append(out, refs...) // survivors of this size are maximal
	}

	return out
}
