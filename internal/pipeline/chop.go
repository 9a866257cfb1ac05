// internal/pipeline/chop.go
package pipeline

import "peptidechop/internal/engine"

// Chopper is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Chopper interface {
	Chop(seqID, seq string) ([]engine.Fragment, error)
}
