package chopper

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter reports a configuration value outside its range.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidSequence reports a sequence that cannot be chopped.
	ErrInvalidSequence = errors.New("invalid sequence")
	// ErrWindowUnderflow marks an internal invariant violation: a tail window
	// was re-anchored to a negative start. New rejects every input that could
	// reach it.
	ErrWindowUnderflow = errors.New("window underflow")
)

// WindowUnderflowError is the panic value raised by a traversal when the
// tail re-anchoring computes a negative start.
type WindowUnderflowError struct {
	Position      int
	Start         int
	End           int
	PeptideLength int
}

func (e *WindowUnderflowError) Error() string {
	return fmt.Sprintf("cannot fit a %d-residue peptide ending at %d (cursor %d, start %d): %v",
		e.PeptideLength, e.End, e.Position, e.Start, ErrWindowUnderflow)
}

func (e *WindowUnderflowError) Unwrap() error { return ErrWindowUnderflow }

func paramErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...)
}

func seqErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidSequence}, args...)...)
}
