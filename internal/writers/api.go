// internal/writers/api.go
package writers

import (
	"peptidechop/internal/engine"
	"peptidechop/pkg/api"
)

// ToAPI converts an internal fragment into the v1 wire type.
func ToAPI(f engine.Fragment, withSource bool) api.PeptideV1 {
	p := api.PeptideV1{
		SequenceID: f.SequenceID,
		Index:      f.Index,
		Start:      f.Start,
		End:        f.End(),
		Length:     len(f.Seq),
		Trimmed:    f.Trimmed,
		Peptide:    f.Seq,
	}
	if withSource {
		p.SourceFile = f.SourceFile
	}
	return p
}

func collectAPI(in <-chan engine.Fragment, withSource bool) []api.PeptideV1 {
	out := []api.PeptideV1{}
	for f := range in {
		out = append(out, ToAPI(f, withSource))
	}
	return out
}
