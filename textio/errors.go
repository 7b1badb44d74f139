// SPDX-License-Identifier: MIT

package textio

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine indicates a non-comment line that does not tokenize
	// into the expected integer fields.
	ErrMalformedLine = errors.New("textio: malformed line")

	// ErrBadPattern indicates an input glob pattern that cannot be parsed.
	ErrBadPattern = errors.New("textio: bad glob pattern")
)

// ParseError describes one malformed input line.
//
// Path is empty when the input was not opened by path (e.g. a bytes.Reader
// in tests). Line is 1-based.
type ParseError struct {
	Path string
	Line int
	Text string
	Err  error
}

// NewParseError builds a *ParseError for line n with the given cause.
func NewParseError(n int, text string, cause error) *ParseError {
	return &ParseError{Line: n, Text: text, Err: cause}
}

func (e *ParseError) Error() string {
	where := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		where = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}

	return fmt.Sprintf("%s: %s %q: %v", ErrMalformedLine, where, e.Text, e.Err)
}

// Unwrap exposes both the sentinel and the cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedLine, e.Err}
}

// WithPath attaches path to err. A *ParseError gets its Path field set;
// any other non-nil error is wrapped as "<path>: <err>".
func WithPath(err error, path string) error {
	if err == nil {
		return nil
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Path = path

		return err
	}

	return fmt.Errorf("%s: %w", path, err)
}
