// SPDX-License-Identifier: MIT

// Package edgelist loads bipartite edge lists in KONECT text format and
// normalizes them for facet extraction.
//
// A bipartite edge list pairs a "left" vertex class with a "right" vertex
// class:
//
//	% bip unweighted     <- comment, ignored
//	1 1
//	1 2
//	2 1
//
// Pipeline:
//
//	Load    - skip '%' comments, parse the first two integers of each line,
//	          shift 1-based ids to 0-based, collapse duplicates.
//	Remap   - replace each side's sparse ids with dense 0..k-1 ids in
//	          first-seen order (two independent tables, see Mapping).
//	SortBy  - stable sort by the grouping Column, ready for facet.Generate.
//
// Determinism:
//
//	Set iterates in first-seen input order, so Remap and every later stage
//	are reproducible for a given file.
//
// Errors:
//
//	ErrBadColumn              - column index is not 0 or 1.
//	textio.ErrMalformedLine   - a data line is not two integers (via *textio.ParseError).
//
// Limits: ids are int64; values outside that range are rejected.
package edgelist
