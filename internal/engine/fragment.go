// internal/engine/fragment.go
package engine

import (
	"strconv"

	"peptidechop/core/chopper"
)

// Fragment is one peptide together with where it came from.
type Fragment struct {
	SequenceID  string
	Description string // header text after the id
	SourceFile  string
	Index       int // 1-based within the record
	chopper.Peptide
}

// Label is the FASTA header used for exported peptides: "{name}:peptide_{n}".
func (f Fragment) Label() string {
	return f.SequenceID + ":peptide_" + strconv.Itoa(f.Index)
}
