// internal/engine/engine.go
package engine

import (
	"errors"
	"fmt"

	"peptidechop/core/chopper"
)

type Engine struct{ cfg chopper.Config }

// New returns an Engine, or an error if cfg can never be satisfied.
func New(cfg chopper.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

func (e *Engine) Config() chopper.Config { return e.cfg }

// Chop cuts one sequence into fragments labelled with seqID.
func (e *Engine) Chop(seqID, seq string) ([]Fragment, error) {
	var out []Fragment
	err := e.Visit(seqID, seq, func(f Fragment) error {
		out = append(out, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Visit streams the fragments of seq without collecting them. A window
// underflow is returned as an error wrapping chopper.ErrWindowUnderflow.
func (e *Engine) Visit(seqID, seq string, visit func(Fragment) error) (err error) {
	c, err := chopper.New(seq, e.cfg)
	if err != nil {
		if seqID != "" {
			return fmt.Errorf("%s: %w", seqID, err)
		}
		return err
	}
	defer recoverUnderflow(seqID, &err)
	for i, p := range c.Peptides() {
		if err := visit(Fragment{SequenceID: seqID, Index: i + 1, Peptide: p}); err != nil {
			return err
		}
	}
	return nil
}

// recoverUnderflow turns a *chopper.WindowUnderflowError panic into *err.
// Any other panic value is re-raised. Call it deferred.
func recoverUnderflow(seqID string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	uerr, ok := r.(*chopper.WindowUnderflowError)
	if !ok {
		panic(r)
	}
	*err = fmt.Errorf("%s: internal error: %w", seqID, uerr)
}

// IsInputError reports whether err is about the user's sequence or
// parameters rather than an I/O or internal failure.
func IsInputError(err error) bool {
	return errors.Is(err, chopper.ErrInvalidSequence) || errors.Is(err, chopper.ErrInvalidParameter)
}
