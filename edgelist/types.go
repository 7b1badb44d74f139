// SPDX-License-Identifier: MIT
// Package: facetkit/edgelist
//
// types.go — Column, Edge, Set and the ErrBadColumn sentinel.

package edgelist

import (
	"errors"
	"fmt"
)

// ErrBadColumn is returned when a column index is neither 0 nor 1.
var ErrBadColumn = errors.New("edgelist: column must be 0 or 1")

// Column selects one side of a bipartite edge.
type Column int

const (
	// Left is the first column of an edge list line.
	Left Column = 0
	// Right is the second column of an edge list line.
	Right Column = 1
)

// ParseColumn validates a raw column index.
func ParseColumn(c int) (Column, error) {
	col := Column(c)
	if err := col.Validate(); err != nil {
		return 0, err
	}

	return col, nil
}

// Validate reports ErrBadColumn for anything but Left or Right.
func (c Column) Validate() error {
	if c != Left && c != Right {
		return fmt.Errorf("%w: got %d", ErrBadColumn, int(c))
	}

	return nil
}

// Other returns the opposite side.
func (c Column) Other() Column {
	if c == Left {
		return Right
	}

	return Left
}

// Edge is an ordered (left, right) pair of vertex ids.
type Edge struct {
	Left  int64
	Right int64
}

// At returns the endpoint on side c. Any c other than Right yields Left.
func (e Edge) At(c Column) int64 {
	if c == Right {
		return e.Right
	}

	return e.Left
}

// Set is a collection of unique edges that remembers first-seen order.
// The zero value is not usable; call NewSet.
type Set struct {
	order []Edge
	seen  map[Edge]struct{}
}

// NewSet returns an empty Set, optionally seeded with edges.
func NewSet(edges ...Edge) *Set {
	s := &Set{seen: make(map[Edge]struct{}, len(edges))}
	for _, e := range edges {
		s.Add(e)
	}

	return s
}

// Add inserts e and reports whether it was new.
func (s *Set) Add(e Edge) bool {
	if _, ok := s.seen[e]; ok {
		return false
	}
	s.seen[e] = struct{}{}
	s.order = append(s.order, e)

	return true
}

// Has reports whether e is in the set.
func (s *Set) Has(e Edge) bool {
	_, ok := s.seen[e]

	return ok
}

// Len returns the number of unique edges.
func (s *Set) Len() int { return len(s.order) }

// Edges returns a copy of the edges in first-seen order.
func (s *Set) Edges() []Edge {
	out := make([]Edge, len(s.order))
	copy(out, s.order)

	return out
}
