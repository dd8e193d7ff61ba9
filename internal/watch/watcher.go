// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package watch re-runs an action whenever a file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	devlog "github.com/ManuGH/devtools/internal/log"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce coalesces the burst of events editors produce on save.
const DefaultDebounce = 500 * time.Millisecond

// ErrClosed is returned by Run when the underlying notifier shuts down before
// the context is done.
var ErrClosed = errors.New("file watcher closed")

// Watcher calls OnChange after path has been written or replaced.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(context.Context) error
	logger   zerolog.Logger

	// started receives the notifier once it watches the directory.
	started func(*fsnotify.Watcher)
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger overrides the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// New returns a watcher for path. onChange errors are logged; they do not
// stop the watcher.
func New(path string, onChange func(context.Context) error, opts ...Option) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		onChange: onChange,
		logger:   devlog.WithComponent("watch"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is done, the only case in which it returns nil. The
// parent directory is watched rather than the file so that editors that save
// by rename are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}

	w.logger.Info().
		Str(devlog.FieldEvent, "watch.started").
		Str(devlog.FieldPath, w.path).
		Msg("watching descriptor file for changes")
	if w.started != nil {
		w.started(fsw)
	}

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str(devlog.FieldEvent, "watch.stopped").Msg("watcher stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return ErrClosed
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// Write and Create cover in-place saves and rename-into-place.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug().
				Str(devlog.FieldEvent, "watch.file_changed").
				Str("op", event.Op.String()).
				Msg("descriptor file changed")

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			if err := w.onChange(ctx); err != nil {
				w.logger.Error().
					Err(err).
					Str(devlog.FieldEvent, "watch.action_failed").
					Msg("regeneration after change failed")
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return ErrClosed
			}
			w.logger.Error().
				Err(err).
				Str(devlog.FieldEvent, "watch.error").
				Msg("file watcher error")
		}
	}
}
