// internal/app/watch.go
package app

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"peptidechop/internal/cliutil"
	"peptidechop/internal/pipeline"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 150 * time.Millisecond

func (r *runner) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [flags] FASTA ...",
		Short: "Re-chop FASTA files whenever they change",
		Long: `Chop the given FASTA files, then chop them again every time one of them is
written, until interrupted. With --out the file is rewritten on every run.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := cliutil.ExpandPositionals(args)
			if err != nil {
				return usageError(err)
			}
			for _, p := range paths {
				if p == "-" {
					return usageError(errors.New("watch cannot read stdin"))
				}
			}
			return r.runWatch(cmd.Context(), paths)
		},
	}
}

func (r *runner) runWatch(ctx context.Context, paths []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directories: editors often replace files rather than write them.
	dirs := map[string]bool{}
	for _, p := range paths {
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}

	run := func() {
		err := r.chopSource(ctx, pipeline.Files(paths))
		if err != nil && ctx.Err() == nil {
			r.log.Error("chop failed", "error", err)
		}
	}
	run()
	watchLoop(ctx, w, paths, r.log, run)
	return nil
}

// watchLoop calls run after changes to any of paths settle, until ctx is done.
func watchLoop(ctx context.Context, w *fsnotify.Watcher, paths []string, log *slog.Logger, run func()) {
	watched := map[string]bool{}
	for _, p := range paths {
		watched[filepath.Clean(p)] = true
	}
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !watched[filepath.Clean(ev.Name)] {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			log.Debug("input changed", "file", ev.Name, "op", ev.Op.String())
			timer.Reset(watchDebounce)
		case <-timer.C:
			log.Info("re-chopping", "files", len(paths))
			run()
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Warn("watch error", "error", err)
		}
	}
}
