// SPDX-License-Identifier: MIT

// Package textio holds the plain-text plumbing shared by the edgelist and
// facet readers: opening inputs, expanding glob patterns and scanning lines
// with precise parse errors.
//
// Inputs:
//
//	"-"            standard input (never closed by Open).
//	"*.zst"        zstd-compressed file, decompressed transparently.
//	anything else  regular file.
//
// Patterns passed to Expand use doublestar syntax ("data/**/*.facets").
// A pattern that matches nothing is returned verbatim so that the caller's
// Open reports a meaningful error instead of silently reading nothing.
//
// Errors:
//
//	ErrMalformedLine - a record line could not be tokenized as expected.
//	ErrBadPattern    - a glob pattern is syntactically invalid.
//
// Every malformed record surfaces as *ParseError, which unwraps to both
// ErrMalformedLine and the underlying cause (e.g. strconv.ErrSyntax).
package textio
