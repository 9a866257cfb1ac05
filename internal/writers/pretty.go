package writers

import (
	"bufio"
	"io"

	"peptidechop/internal/engine"
	"peptidechop/internal/pretty"
)

func init() {
	Register("pretty", "txt", streamPretty)
}

// streamPretty buffers one record at a time and renders it as a staircase.
// A record ends when the sequence id or source changes or the index restarts.
func streamPretty(w io.Writer, in <-chan engine.Fragment, _ Options) error {
	bw := bufio.NewWriter(w)
	var rec []engine.Fragment
	flush := func() error {
		if len(rec) == 0 {
			return nil
		}
		_, err := bw.WriteString(pretty.RenderRecord(rec))
		rec = rec[:0]
		return err
	}
	for f := range in {
		if n := len(rec); n > 0 {
			last := rec[n-1]
			if f.SequenceID != last.SequenceID || f.SourceFile != last.SourceFile || f.Index <= last.Index {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		rec = append(rec, f)
	}
	if err := flush(); err != nil {
		return err
	}
	return bw.Flush()
}
