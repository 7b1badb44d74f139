// SPDX-License-Identifier: MIT
// Package: facetkit/edgelist
//
// remap.go — dense relabelling of both bipartite sides (Remap, Mapping).
//
// Contract:
//   • Two independent tables, one per Column; ids never cross sides.
//   • First sight of an id on a side assigns the next free dense id (0,1,2,…);
//     later sightings reuse it. Result is a bijection onto 0..k-1 per side.
//   • Edge order of the output equals edge order of the input.
//   • Never fails for a finite input.
//
// Complexity:
//   • Time: O(E) map lookups, single pass.
//   • Space: O(V_left + V_right) for both directions of each table.
//
// Determinism:
//   • Fully determined by input order (Set keeps first-seen order).

package edgelist

// Mapping records the two independent relabelling tables produced by Remap.
type Mapping struct {
	toDense  [2]map[int64]int64
	original [2][]int64
}

func newMapping(hint int) *Mapping {
	return &Mapping{
		toDense: [2]map[int64]int64{
			make(map[int64]int64, hint),
			make(map[int64]int64, hint),
		},
	}
}

// assign returns the dense id for v on side c, allocating the next free
// one on first sight.
func (m *Mapping) assign(c Column, v int64) int64 {
	if id, ok := m.toDense[c][v]; ok {
		return id // seen before on this side
	}
	// Next free id on side c equals the number of ids seen so far.
	id := int64(len(m.original[c]))
	m.toDense[c][v] = id
	m.original[c] = append(m.original[c], v)

	return id
}

// Size returns how many distinct ids were seen on side c.
func (m *Mapping) Size(c Column) int {
	if c.Validate() != nil {
		return 0
	}

	return len(m.original[c])
}

// Dense returns the dense id assigned to original id v on side c.
func (m *Mapping) Dense(c Column, v int64) (int64, bool) {
	if c.Validate() != nil {
		return 0, false
	}
	id, ok := m.toDense[c][v]

	return id, ok
}

// Original returns the input id that dense id maps back to on side c.
func (m *Mapping) Original(c Column, id int64) (int64, bool) {
	if c.Validate() != nil || id < 0 || id >= int64(len(m.original[c])) {
		return 0, false
	}

	return m.original[c][id], true
}

// Remap relabels both sides of edges with dense 0-based ids assigned in
// first-seen order during a single pass. The relative edge order is kept.
// Complexity: O(E) time, O(V) extra space.
func Remap(edges []Edge) ([]Edge, *Mapping) {
	m := newMapping(len(edges))
	out := make([]Edge, len(edges)) // same length and order as edges
	for i, e := range edges {
		// Sides are independent: Left id 3 and Right id 3 are unrelated.
		out[i] = Edge{
			Left:  m.assign(Left, e.Left),
			Right: m.assign(Right, e.Right),
		}
	}

	return out, m
}
