// internal/app/sink.go
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"peptidechop/internal/cliutil"
	"peptidechop/internal/engine"
	"peptidechop/internal/writers"
)

// fragmentSink receives the fragments of one record at a time, in order.
type fragmentSink interface {
	Write(recordID string, frags []engine.Fragment) error
	Close() error
}

// streamSink feeds a single writer goroutine.
type streamSink struct {
	ctx  context.Context
	in   chan<- engine.Fragment
	done <-chan error
}

func newStreamSink(ctx context.Context, out io.Writer, format string, opt writers.Options, bufSize int) *streamSink {
	in, done := writers.Start(out, format, opt, bufSize)
	return &streamSink{ctx: ctx, in: in, done: done}
}

func (s *streamSink) Write(_ string, frags []engine.Fragment) error {
	for _, f := range frags {
		select {
		case s.in <- f:
		case <-s.ctx.Done():
			return s.ctx.Err()
		}
	}
	return nil
}

func (s *streamSink) Close() error {
	close(s.in)
	return <-s.done
}

// splitSink writes each record to {dir}/{name}_peptides.{ext}.
type splitSink struct {
	dir    string
	format string
	opt    writers.Options
	used   map[string]int
}

func newSplitSink(dir, format string, opt writers.Options) (*splitSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &splitSink{dir: dir, format: format, opt: opt, used: map[string]int{}}, nil
}

// FileName returns the file a record is written to; repeated names get a
// numeric suffix.
func (s *splitSink) FileName(recordID string) string {
	base := cliutil.SafeFileName(recordID) + "_peptides"
	s.used[base]++
	if n := s.used[base]; n > 1 {
		base = fmt.Sprintf("%s_%d", base, n)
	}
	return filepath.Join(s.dir, base+"."+writers.Ext(s.format))
}

func (s *splitSink) Write(recordID string, frags []engine.Fragment) error {
	fh, err := os.Create(s.FileName(recordID))
	if err != nil {
		return err
	}
	if err := writers.WriteAll(fh, s.format, s.opt, frags); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

func (s *splitSink) Close() error { return nil }
