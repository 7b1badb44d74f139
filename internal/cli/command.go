// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// commonFlags are shared by both commands.
type commonFlags struct {
	verbose bool
	stats   string
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log progress to stderr")
	cmd.Flags().StringVar(&f.stats, "stats", "", `Write a YAML run summary to this file ("-" for stderr)`)
}

// newCommand applies the settings both commands share: buffers, silent
// cobra error handling and flag errors reported as UsageError.
func newCommand(cmd *cobra.Command, stdout, stderr io.Writer) *cobra.Command {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	return cmd
}

// requireArgs rejects fewer than lo positional arguments (and more than
// hi when hi > 0) with a UsageError.
func requireArgs(lo, hi int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		switch {
		case len(args) < lo:
			return &UsageError{Err: errMissingInput}
		case hi > 0 && len(args) > hi:
			return &UsageError{Err: fmt.Errorf("cli: expected at most %d path(s), got %d", hi, len(args))}
		}

		return nil
	}
}

// Main executes cmd with args, reports any error on the command's stderr
// and returns the process exit code.
func Main(cmd *cobra.Command, args []string) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil || IsBrokenPipe(err) {
		return exitOK
	}

	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "%s: %v\n", cmd.Name(), err)
	var ue *UsageError
	if errors.As(err, &ue) {
		fmt.Fprint(w, cmd.UsageString())
	}

	return ExitCode(err)
}
