// internal/app/chop.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"peptidechop/core/fasta"
	"peptidechop/internal/cliutil"
	"peptidechop/internal/engine"
	"peptidechop/internal/pipeline"
	"peptidechop/internal/runutil"
	"peptidechop/internal/writers"
)

type chopStats struct {
	records, invalid, peptides, duplicates int
}

// chopCommand is the explicit form of the root action.
func (r *runner) chopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chop [flags] [FASTA ...]",
		Short: "Chop FASTA records (the default when no command is given)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runChop(cmd.Context(), args)
		},
	}
}

// runChop chops every input once and writes the result to --out or --split-dir.
func (r *runner) runChop(ctx context.Context, args []string) error {
	src, err := r.source(args)
	if err != nil {
		return err
	}
	return r.chopSource(ctx, src)
}

func (r *runner) chopSource(ctx context.Context, src pipeline.Source) error {
	if r.s.SplitDir != "" {
		return r.chopTo(ctx, src, nil)
	}
	out, closeOut, err := r.openOut()
	if err != nil {
		return err
	}
	err = r.chopTo(ctx, src, out)
	if cerr := closeOut(); err == nil && cerr != nil && !writers.IsBrokenPipe(cerr) {
		err = cerr
	}
	return err
}

// source builds the record source from --sequence and positional inputs.
func (r *runner) source(args []string) (pipeline.Source, error) {
	paths, err := cliutil.ExpandPositionals(args)
	if err != nil {
		return nil, usageError(err)
	}
	var srcs []pipeline.Source
	if r.seq != "" {
		src, err := r.inlineSource()
		if err != nil {
			return nil, usageError(err)
		}
		srcs = append(srcs, src)
	}
	if len(paths) > 0 {
		srcs = append(srcs, pipeline.Files(paths))
	}
	if len(srcs) == 0 {
		return nil, usageError(errors.New("provide FASTA files, '-' for stdin, or --sequence"))
	}
	return pipeline.Concat(srcs...), nil
}

// inlineSource reads --sequence as FASTA when it starts with a header and as
// one raw sequence named --name otherwise.
func (r *runner) inlineSource() (pipeline.Source, error) {
	if !strings.HasPrefix(strings.TrimSpace(r.seq), ">") {
		rec := fasta.Record{ID: r.name, Seq: cliutil.NormalizeSequence(r.seq)}
		return pipeline.Records("", rec), nil
	}
	recs, err := fasta.ReadAll(strings.NewReader(r.seq))
	if err != nil {
		return nil, fmt.Errorf("--sequence: %w", err)
	}
	for i := range recs {
		if recs[i].ID == "" {
			recs[i].ID = r.name
		}
	}
	return pipeline.Records("", recs...), nil
}

func (r *runner) openOut() (io.Writer, func() error, error) {
	if r.s.Out == "" || r.s.Out == "-" {
		return r.stdout, func() error { return nil }, nil
	}
	fh, err := os.Create(r.s.Out)
	if err != nil {
		return nil, nil, err
	}
	return fh, fh.Close, nil
}

// chopTo runs the pipeline into out, or into per-record files when out is nil.
func (r *runner) chopTo(ctx context.Context, src pipeline.Source, out io.Writer) error {
	eng, err := engine.New(r.s.Chop())
	if err != nil {
		return usageError(err)
	}
	opt := writers.Options{Header: !r.s.NoHeader, SourceFile: r.s.SourceFile}
	threads := r.s.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	var sink fragmentSink
	if out == nil {
		sink, err = newSplitSink(r.s.SplitDir, r.s.Output, opt)
		if err != nil {
			return err
		}
	} else {
		sink = newStreamSink(ctx, out, r.s.Output, opt, threads*64)
	}

	var seen *runutil.LRUSet[string]
	if r.s.Dedupe {
		seen = runutil.NewLRUSet[string](r.s.DedupeCap)
	}

	var st chopStats
	perr := pipeline.ForEachRecord(ctx, pipeline.Config{Threads: threads}, src, eng,
		func(res pipeline.Result) error {
			st.records++
			if res.Err != nil {
				if !engine.IsInputError(res.Err) {
					return res.Err
				}
				st.invalid++
				if r.s.SkipInvalid {
					r.log.Warn("skipping record", "record", res.Record.ID, "source", res.SourceFile, "error", res.Err)
				} else {
					r.log.Error("cannot chop record", "record", res.Record.ID, "source", res.SourceFile, "error", res.Err)
				}
				return nil
			}
			frags := res.Fragments
			if seen != nil {
				kept := frags[:0]
				for _, f := range frags {
					if seen.Add(f.Seq) {
						st.duplicates++
						continue
					}
					kept = append(kept, f)
				}
				frags = kept
			}
			st.peptides += len(frags)
			r.log.Debug("chopped record", "record", res.Record.ID, "length", len(res.Record.Seq), "peptides", len(frags))
			return sink.Write(res.Record.ID, frags)
		})

	werr := sink.Close()
	if perr == nil && werr != nil && !writers.IsBrokenPipe(werr) {
		return &exitError{code: ExitFailure, err: werr}
	}
	if writers.IsBrokenPipe(perr) || (perr == nil && writers.IsBrokenPipe(werr)) {
		return nil
	}
	if perr != nil {
		return perr
	}

	r.log.Debug("done", "records", st.records, "invalid", st.invalid, "peptides", st.peptides, "duplicates", st.duplicates)
	if st.invalid > 0 && !r.s.SkipInvalid {
		return &exitError{code: ExitUsage, err: fmt.Errorf("%d of %d records could not be chopped", st.invalid, st.records)}
	}
	return nil
}
