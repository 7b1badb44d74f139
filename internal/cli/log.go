// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"log"
)

// newLogger returns a stderr progress logger prefixed with the command
// name; it discards everything unless verbose is set.
func newLogger(w io.Writer, name string, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}

	return log.New(w, name+": ", 0)
}
