// SPDX-License-Identifier: MIT

// Package facet turns sorted bipartite edge lists into facets and reduces
// facet collections to their maximal elements.
//
// What is a facet?
//
//	A facet is a finite set of vertex ids. A collection of facets generates
//	a simplicial complex; only the maximal facets (those not included in
//	another) are needed to describe it.
//
// Key pieces:
//
//	New        - build an immutable Facet (sorted, duplicate free).
//	Generate   - lazily group a column-sorted edge list into runs.
//	FromEdges  - full converter pipeline: remap → sort → group → Facet.
//	Prune      - drop duplicates and every facet included in another.
//	ReadList   - parse "one facet per line" text.
//	WriteList  - print facets as space-separated ids.
//
// Equality and hashing:
//
//	Every Facet carries a canonical 256-bit BLAKE3 Key computed over the
//	varint encoding of its sorted vertices, so two facets built from the
//	same ids in any order share a Key. Prune deduplicates on that Key.
//
// Pruning (size-stratified subsumption removal):
//
//  1. Bucket facets by cardinality; drop duplicates.
//  2. Walk sizes in descending order. Every facet of the current size
//     removes its subsets from every smaller bucket.
//  3. Whatever survives in the current bucket is maximal and is emitted.
//
// Complexity: O(B²·S) for B distinct facets of average size S.
//
// Output order: descending cardinality, lexicographic within a size.
package facet
