// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

//go:build !windows

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ManuGH/devtools/internal/codegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func fileContains(path, substr string) bool {
	data, err := os.ReadFile(path)
	return err == nil && strings.Contains(string(data), substr)
}

func TestRunCLI_WatchRegeneratesAndStopsOnInterrupt(t *testing.T) {
	input := writeDescriptors(t, descriptors)
	out := t.TempDir()
	dir := t.TempDir()
	trace := filepath.Join(dir, "trace.txt")
	promPath := filepath.Join(dir, "gensettings.prom")
	generated := filepath.Join(out, codegen.ImplementationFile)

	var stderr syncBuffer
	exit := make(chan int, 1)
	go func() {
		exit <- run([]string{
			"-i", input, "-o", out, "-only", "cpp", "-watch",
			"-stack-trace-file", trace,
			"-metrics-textfile", promPath,
			"-log-level", "info",
		}, io.Discard, &stderr)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(stderr.String(), "watch.started")
	}, 10*time.Second, 10*time.Millisecond, "watcher never started:\n%s", stderr.String())
	require.True(t, fileContains(generated, "m_zoomFactor"), "initial generation missing")
	assert.False(t, fileContains(generated, "m_textAutosizingEnabled"))

	// Regeneration also rewrites the metrics textfile.
	require.NoError(t, os.WriteFile(promPath, nil, 0o600))
	updated := descriptors + "textAutosizingEnabled:\n  type: bool\n"
	require.NoError(t, os.WriteFile(input, []byte(updated), 0o600))

	require.Eventually(t, func() bool {
		return fileContains(generated, "    , m_textAutosizingEnabled(page->settings().textAutosizingEnabled())")
	}, 10*time.Second, 20*time.Millisecond, "output was not regenerated:\n%s", stderr.String())
	require.Eventually(t, func() bool {
		return fileContains(promPath, "devtools_codegen_runs_total")
	}, 10*time.Second, 20*time.Millisecond, "metrics textfile was not rewritten")

	require.NoError(t, unix.Kill(os.Getpid(), unix.SIGINT))
	select {
	case code := <-exit:
		assert.Equal(t, 0, code, "stderr:\n%s", stderr.String())
	case <-time.After(10 * time.Second):
		t.Fatal("watch mode did not stop on SIGINT")
	}

	assert.True(t, fileContains(trace, "SIGINT signal received"), "trace file not written")
	assert.Contains(t, stderr.String(), "gensettings.interrupted")
}
