// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA entry.
type Record struct {
	ID   string // header up to the first blank
	Desc string // rest of the header line
	Seq  string // residues, upper-cased, whitespace removed
}

// ScanCtx parses FASTA from r and calls emit once per record, in file order.
// A sequence without any header is emitted with an empty ID.
// It returns promptly when ctx is done; emit may return an error to stop early.
func ScanCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		cur    Record
		seq    = make([]byte, 0, 4096)
		active bool
	)
	flush := func() error {
		if !active {
			return nil
		}
		cur.Seq = string(seq)
		seq = seq[:0]
		active = false
		return emit(cur)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			cur = parseHeader(line[1:])
			active = true
			continue
		}
		active = true
		for _, b := range line {
			if b == ' ' || b == '\t' {
				continue
			}
			if 'a' <= b && b <= 'z' {
				b -= 'a' - 'A'
			}
			seq = append(seq, b)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ScanPathCtx opens path (gzip and "-" aware) and scans it with ScanCtx.
func ScanPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return ScanCtx(ctx, rc, emit)
}

// ReadAll collects every record of r.
func ReadAll(r io.Reader) ([]Record, error) {
	var recs []Record
	err := ScanCtx(context.Background(), r, func(rec Record) error {
		recs = append(recs, rec)
		return nil
	})
	return recs, err
}

func parseHeader(hdr []byte) Record {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return Record{ID: string(hdr[:i]), Desc: string(bytes.TrimSpace(hdr[i+1:]))}
	}
	return Record{ID: string(hdr)}
}
