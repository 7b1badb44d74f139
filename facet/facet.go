// SPDX-License-Identifier: MIT
// Package: facetkit/facet
//
// facet.go — immutable Facet value and its canonical Key.
//
// Contract:
//   • Vertices are stored sorted ascending and duplicate free.
//   • Key is BLAKE3-256 over the varint encoding of the sorted vertices;
//     the empty set has the zero Key, so Facet{} equals New().
//   • Equal agrees with set equality; SubsetOf is ⊆ (equal sets included).
//
// Complexity:
//   • New: O(n log n). Equal, SubsetOf: O(|f| + |g|). Contains: O(log n).

package facet

import (
	"encoding/binary"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"

	"lukechampine.com/blake3"
)

// Key is the canonical BLAKE3-256 digest of a facet's vertex set.
type Key [32]byte

// String returns the hex digest.
func (k Key) String() string { return hex.EncodeToString(k[:]) }

// Facet is an immutable set of vertex ids kept in ascending order.
// The zero value is the empty facet and equals New().
type Facet struct {
	vertices []int64
	key      Key
}

// New returns the facet holding the distinct values of vertices.
// The argument slice is not retained.
// Complexity: O(n log n).
func New(vertices ...int64) Facet {
	vs := slices.Clone(vertices)
	slices.Sort(vs)
	vs = slices.Compact(vs)

	return Facet{vertices: vs, key: canonicalKey(vs)}
}

// canonicalKey digests the varint encoding of sorted. The empty set maps
// to the zero Key so that Facet{} and New() are the same value.
func canonicalKey(sorted []int64) Key {
	if len(sorted) == 0 {
		return Key{}
	}
	buf := make([]byte, 0, len(sorted)*binary.MaxVarintLen64)
	for _, v := range sorted {
		buf = binary.AppendVarint(buf, v)
	}

	return blake3.Sum256(buf)
}

// Len returns the cardinality.
func (f Facet) Len() int { return len(f.vertices) }

// Vertices returns a copy of the ids in ascending order.
func (f Facet) Vertices() []int64 { return slices.Clone(f.vertices) }

// Key returns the canonical digest.
func (f Facet) Key() Key { return f.key }

// Equal reports set equality.
func (f Facet) Equal(g Facet) bool {
	return f.key == g.key && slices.Equal(f.vertices, g.vertices)
}

// Contains reports whether v belongs to f.
func (f Facet) Contains(v int64) bool {
	_, ok := slices.BinarySearch(f.vertices, v)

	return ok
}

// SubsetOf reports whether every vertex of f is in g (f ⊆ g).
// Complexity: O(|f| + |g|), a merge walk over both sorted slices.
func (f Facet) SubsetOf(g Facet) bool {
	if len(f.vertices) > len(g.vertices) {
		return false
	}
	j := 0
	for _, v := range f.vertices {
		for j < len(g.vertices) && g.vertices[j] < v {
			j++
		}
		if j == len(g.vertices) || g.vertices[j] != v {
			return false
		}
		j++
	}

	return true
}

// Compare orders facets lexicographically by their sorted vertices.
func Compare(a, b Facet) int {
	return slices.Compare(a.vertices, b.vertices)
}

// String joins the vertices with single spaces ("0 1 5").
func (f Facet) String() string {
	var sb strings.Builder
	for i, v := range f.vertices {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(v, 10))
	}

	return sb.String()
}
