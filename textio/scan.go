// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"io"
)

const (
	initialLineBuf = 64 * 1024
	// MaxLineBytes bounds a single record; very wide facets fit comfortably.
	MaxLineBytes = 16 * 1024 * 1024
)

// ScanLines calls fn for every line of r with its 1-based number and the
// line text without the trailing newline. The first error returned by fn
// stops the scan and is returned unchanged.
func ScanLines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBuf), MaxLineBytes)

	n := 0
	for sc.Scan() {
		n++
		if err := fn(n, sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("textio: reading after line %d: %w", n, err)
	}

	return nil
}
