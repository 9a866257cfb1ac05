package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestWatchRechopsOnWrite(t *testing.T) {
	dir := t.TempDir()
	fa := filepath.Join(dir, "in.fa")
	require.NoError(t, os.WriteFile(fa, []byte(">a\n"+abc+"\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var stdout, stderr syncBuffer
	done := make(chan int, 1)
	go func() {
		done <- RunContext(ctx, []string{"watch", "-o", "text", "-l", "10", "--overlap", "4", "--disallowed-ends=", fa}, &stdout, &stderr)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "RSTVWYXBZJ\n")
	}, 5*time.Second, 20*time.Millisecond, stderr.String())

	require.NoError(t, os.WriteFile(fa, []byte(">b\nMKTAYIAKQRQISFVKSHFSRQ\n"), 0o644))
	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "MKTAYIAKQR\n")
	}, 5*time.Second, 20*time.Millisecond, stderr.String())

	cancel()
	select {
	case code := <-done:
		assert.Equal(t, ExitOK, code)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchRejectsStdin(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"watch", "-"}, &out, &errOut)
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut.String(), "stdin")
}
