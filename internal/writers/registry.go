// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"peptidechop/internal/engine"
)

// Options tune the presentation of a format.
type Options struct {
	Header     bool // column header for tsv
	SourceFile bool // include the source file in tsv/json outputs
}

// StreamFunc drains in and writes every fragment to w.
type StreamFunc func(w io.Writer, in <-chan engine.Fragment, opt Options) error

type format struct {
	stream StreamFunc
	ext    string
}

// Writer registry (format → handler). Register in init() blocks of each format file.
var registry = map[string]format{}

// Register adds or replaces (last wins) a format. ext is the file extension
// used when writing one file per record.
func Register(name, ext string, fn StreamFunc) { registry[name] = format{stream: fn, ext: ext} }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Known reports whether name is a registered format.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// Ext returns the file extension for format name, or "txt".
func Ext(name string) string {
	if f, ok := registry[name]; ok && f.ext != "" {
		return f.ext
	}
	return "txt"
}

// Start spins up a writer goroutine for the given format. The caller sends
// fragments on the returned channel, closes it, then reads exactly one value
// from the error channel.
func Start(out io.Writer, name string, opt Options, bufSize int) (chan<- engine.Fragment, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Fragment, bufSize)
	errCh := make(chan error, 1)

	go func() {
		f, ok := registry[name]
		if !ok {
			for range in {
			}
			errCh <- fmt.Errorf("unsupported output %q (known: %v)", name, Formats())
			return
		}
		err := f.stream(out, in, opt)
		// Keep senders from blocking if the stream gave up early.
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}

// WriteAll writes frags in one go.
func WriteAll(out io.Writer, name string, opt Options, frags []engine.Fragment) error {
	in, done := Start(out, name, opt, len(frags))
	for _, f := range frags {
		in <- f
	}
	close(in)
	return <-done
}
