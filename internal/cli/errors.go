// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"io"
	"syscall"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// errMissingInput is wrapped in a UsageError when no path is given.
var errMissingInput = errors.New("cli: missing input path")

// UsageError marks invalid command-line arguments. It is reported together
// with the command usage and maps to exit code 2.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// IsBrokenPipe reports whether err comes from writing to a closed pipe,
// e.g. when output is piped into `head`.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	var ue *UsageError
	switch {
	case err == nil, IsBrokenPipe(err):
		return exitOK
	case errors.As(err, &ue):
		return exitUsage
	default:
		return exitFail
	}
}
