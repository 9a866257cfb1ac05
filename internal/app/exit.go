// internal/app/exit.go
package app

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"peptidechop/internal/engine"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags, parameters or sequences
	ExitFailure  = 3 // I/O or internal error
	ExitCanceled = 130
)

// exitError carries an explicit exit code. A nil err means the message was
// already reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error { return &exitError{code: ExitUsage, err: err} }

func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	switch {
	case errors.As(err, &ee):
		return ee.code
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case engine.IsInputError(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// usageArgs makes positional-argument errors exit with ExitUsage.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}
