// internal/writers/text.go
package writers

import (
	"bufio"
	"fmt"
	"io"

	"peptidechop/internal/engine"
)

func init() {
	Register("fasta", "fasta", streamFASTA)
	Register("text", "txt", streamText)
	Register("tsv", "tsv", streamTSV)
}

// streamFASTA writes ">{name}:peptide_{n}\n{peptide}\n" per fragment.
func streamFASTA(w io.Writer, in <-chan engine.Fragment, _ Options) error {
	bw := bufio.NewWriter(w)
	for f := range in {
		if _, err := fmt.Fprintf(bw, ">%s\n%s\n", f.Label(), f.Seq); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// streamText writes bare peptides, one per line.
func streamText(w io.Writer, in <-chan engine.Fragment, _ Options) error {
	bw := bufio.NewWriter(w)
	for f := range in {
		if _, err := bw.WriteString(f.Seq); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

const tsvHeader = "sequence_id\tindex\tstart\tend\tlength\ttrimmed\tpeptide"

func streamTSV(w io.Writer, in <-chan engine.Fragment, opt Options) error {
	bw := bufio.NewWriter(w)
	if opt.Header {
		hdr := tsvHeader
		if opt.SourceFile {
			hdr += "\tsource_file"
		}
		if _, err := fmt.Fprintln(bw, hdr); err != nil {
			return err
		}
	}
	for f := range in {
		_, err := fmt.Fprintf(bw, "%s\t%d\t%d\t%d\t%d\t%d\t%s",
			f.SequenceID, f.Index, f.Start, f.End(), len(f.Seq), f.Trimmed, f.Seq)
		if err == nil && opt.SourceFile {
			_, err = fmt.Fprintf(bw, "\t%s", f.SourceFile)
		}
		if err == nil {
			err = bw.WriteByte('\n')
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
