// internal/pipeline/source.go
package pipeline

import (
	"context"
	"path/filepath"
	"strings"

	"peptidechop/core/fasta"
)

// Source feeds records, with the file they came from, to emit.
type Source func(ctx context.Context, emit func(rec fasta.Record, sourceFile string) error) error

// Files scans each path in turn. Records without a header are named after
// their file.
func Files(paths []string) Source {
	return func(ctx context.Context, emit func(fasta.Record, string) error) error {
		for _, p := range paths {
			err := fasta.ScanPathCtx(ctx, p, func(rec fasta.Record) error {
				if rec.ID == "" {
					rec.ID = stem(p)
				}
				return emit(rec, p)
			})
			if err != nil {
				return err
			}
		}
		return nil
	}
}

// Records feeds recs as if they had been read from sourceFile.
func Records(sourceFile string, recs ...fasta.Record) Source {
	return func(ctx context.Context, emit func(fasta.Record, string) error) error {
		for _, r := range recs {
			if err := emit(r, sourceFile); err != nil {
				return err
			}
		}
		return nil
	}
}

func stem(path string) string {
	if path == "-" {
		return "stdin"
	}
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Concat runs each source in turn.
func Concat(srcs ...Source) Source {
	return func(ctx context.Context, emit func(fasta.Record, string) error) error {
		for _, s := range srcs {
			if err := s(ctx, emit); err != nil {
				return err
			}
		}
		return nil
	}
}
