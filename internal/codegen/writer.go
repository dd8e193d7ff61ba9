// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package codegen

import (
	"bufio"
	"context"
	"fmt"
	"io"

	devlog "github.com/ManuGH/devtools/internal/log"
	"github.com/google/renameio/v2"
)

// writeFile replaces path with whatever render produces. renameio handles
// temp file creation, fsync, atomic rename and cleanup on error, so a failed
// run never leaves a half-written source file behind.
func writeFile(ctx context.Context, path string, render func(io.Writer) error) error {
	logger := devlog.FromContext(ctx)

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file %s: %w", path, err)
	}
	defer func() {
		// Cleanup is a no-op once the file has been committed.
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Str(devlog.FieldPath, path).Msg("cleanup pending generated file")
		}
	}()

	if err := render(pendingFile); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}

// source accumulates generated text line by line. Write errors are sticky
// and surface from flush.
type source struct {
	w *bufio.Writer
}

func newSource(w io.Writer) *source {
	return &source{w: bufio.NewWriter(w)}
}

// line writes the concatenated parts followed by a newline.
func (s *source) line(parts ...string) {
	for _, p := range parts {
		_, _ = s.w.WriteString(p)
	}
	_ = s.w.WriteByte('\n')
}

func (s *source) raw(text string) {
	_, _ = s.w.WriteString(text)
}

// blank writes an empty line.
func (s *source) blank() {
	_ = s.w.WriteByte('\n')
}

// guarded wraps body in #if/#endif when expr is non-empty.
func (s *source) guarded(expr string, body func()) {
	if expr == "" {
		body()
		return
	}
	s.line("#if ", expr)
	body()
	s.line("#endif")
}

func (s *source) flush() error {
	return s.w.Flush()
}
