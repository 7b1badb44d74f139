// SPDX-License-Identifier: MIT

// Package cli wires the facetkit libraries into the bip2facets and
// prunefacets commands.
//
// Exit codes (see ExitCode):
//
//	0 - success, empty input, or stdout closed early by the reader (EPIPE)
//	1 - parse or I/O failure
//	2 - usage error (missing path, bad flag, --col outside {0,1})
package cli
