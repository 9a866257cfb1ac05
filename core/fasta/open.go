// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type noClose struct{}

func (noClose) Close() error { return nil }

// Stdin is read when path is "-". Tests may swap it.
var Stdin io.Reader = os.Stdin

// Open returns a reader over path, transparently gunzipping when the data
// starts with the gzip magic (1F 8B) or the name ends in .gz. "-" reads Stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		br := bufio.NewReader(Stdin)
		return maybeGzip(br, noClose{}, false)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := maybeGzip(bufio.NewReader(fh), fh, strings.HasSuffix(path, ".gz"))
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

func maybeGzip(br *bufio.Reader, c io.Closer, force bool) (io.ReadCloser, error) {
	sig, _ := br.Peek(2)
	if force || (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, c}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{c}}, nil
}
