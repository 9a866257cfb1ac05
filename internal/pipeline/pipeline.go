// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"peptidechop/core/fasta"
	"peptidechop/internal/engine"
)

// Config controls the chopping pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// window is how many records may be in flight (queued, chopping, or waiting
// for an earlier record) at once. It bounds the collector's reorder buffer.
func (c Config) window() int { return c.Threads * 2 }

// Result is the outcome for one record. Err is set when the record could not
// be chopped; Fragments is then empty.
type Result struct {
	Record     fasta.Record
	SourceFile string
	Fragments  []engine.Fragment
	Err        error
}

// ForEachRecord chops every record produced by src and calls visit once per
// record, in the order src produced them. It returns the first error from
// src or visit, or the context error if ctx was cancelled.
func ForEachRecord(
	parent context.Context,
	cfg Config,
	src Source,
	ch Chopper,
	visit func(Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	type job struct {
		n    int
		rec  fasta.Record
		file string
	}
	type done struct {
		n int
		Result
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan done, cfg.Threads*2)
	// One slot per record from feed until the collector is done with it.
	slots := make(chan struct{}, cfg.window())

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					frags, err := ch.Chop(j.rec.ID, j.rec.Seq)
					for i := range frags {
						frags[i].SourceFile = j.file
						frags[i].Description = j.rec.Desc
					}
					r := done{n: j.n, Result: Result{Record: j.rec, SourceFile: j.file, Fragments: frags, Err: err}}
					select {
					case results <- r:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: re-establish input order.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]Result)
		next := 0
		for r := range results {
			if cerr != nil {
				<-slots
				continue
			}
			pending[r.n] = r.Result
			for {
				res, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				err := visit(res)
				<-slots
				if err != nil {
					cerr = err
					cancel()
					break
				}
			}
		}
	}()

	// Feed work
	n := 0
	ferr := src(ctx, func(rec fasta.Record, file string) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case slots <- struct{}{}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case jobs <- job{n: n, rec: rec, file: file}:
			n++
			return nil
		}
	})

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	switch {
	case cerr != nil:
		return cerr
	case parent.Err() != nil:
		return parent.Err()
	default:
		return ferr
	}
}
