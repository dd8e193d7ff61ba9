// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package stacktrace dumps goroutine stacks when the process receives a
// termination or interrupt signal. It is a debugging aid for hung build
// steps, not a crash reporter.
package stacktrace

import (
	"context"
	"fmt"
	"io"
	"os"
	ossignal "os/signal"
	"sync"
	"syscall"

	devlog "github.com/ManuGH/devtools/internal/log"
	"github.com/ManuGH/devtools/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// ExitCodeTerminated is the status used after a termination trace (exit(-1)).
	ExitCodeTerminated = 255
	// ExitCodeConfig is the status used when the trace target cannot be opened on delivery.
	ExitCodeConfig = 1

	terminateHeader = "SIGTERM signal received"
	interruptHeader = "SIGINT signal received"
)

// Config configures a handler.
type Config struct {
	// Output is the trace file, truncated on every delivery. Empty means stderr.
	Output string
	// Stderr replaces os.Stderr as the fallback target.
	Stderr io.Writer
	// Exit replaces os.Exit for the termination handler.
	Exit func(code int)
	// Logger replaces the package component logger.
	Logger *zerolog.Logger
}

func (c Config) withDefaults() Config {
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	if c.Exit == nil {
		c.Exit = os.Exit
	}
	if c.Logger == nil {
		l := devlog.WithComponent("stacktrace")
		c.Logger = &l
	}
	return c
}

// Registration is an installed handler. Stop removes it.
type Registration struct {
	sig    os.Signal
	ch     chan os.Signal
	stopCh chan struct{}
	done   chan struct{}
	once   sync.Once
}

// Signal returns the signal this registration handles.
func (r *Registration) Signal() os.Signal {
	return r.sig
}

// Stop deregisters the handler and waits for its goroutine to exit. When no
// other registration remains for the signal, the default disposition is
// restored. Stop is idempotent.
func (r *Registration) Stop() {
	r.once.Do(func() {
		ossignal.Stop(r.ch)
		close(r.stopCh)
		<-r.done

		activeMu.Lock()
		if active[r.sig] == r {
			delete(active, r.sig)
		}
		activeMu.Unlock()
	})
}

var (
	// installMu serialises whole handler swaps; activeMu only guards the map.
	installMu sync.Mutex
	activeMu  sync.Mutex
	active    = map[os.Signal]*Registration{}

	// dumpMu serialises trace writes when signals arrive while a trace is
	// still being written.
	dumpMu sync.Mutex
)

// OnTerminate installs a SIGTERM handler that writes a trace to cfg.Output
// (or stderr) and then exits with ExitCodeTerminated. A previous SIGTERM
// registration is replaced.
func OnTerminate(cfg Config) (*Registration, error) {
	cfg = cfg.withDefaults()
	if err := probeOutput(cfg.Output); err != nil {
		return nil, err
	}
	return install(syscall.SIGTERM, func() {
		if err := dump(cfg, syscall.SIGTERM, terminateHeader); err != nil {
			cfg.Logger.WithLevel(zerolog.FatalLevel).
				Err(err).
				Str(devlog.FieldEvent, "stacktrace.output_failed").
				Str(devlog.FieldPath, cfg.Output).
				Msg("cannot write stack trace")
			cfg.Exit(ExitCodeConfig)
			return
		}
		cfg.Exit(ExitCodeTerminated)
	}), nil
}

// OnInterrupt installs a SIGINT handler that writes a trace and then
// cancels the returned context with cause ErrInterrupted instead of exiting,
// leaving the decision to the caller. A previous SIGINT registration is
// replaced.
func OnInterrupt(parent context.Context, cfg Config) (context.Context, *Registration, error) {
	cfg = cfg.withDefaults()
	if err := probeOutput(cfg.Output); err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithCancelCause(parent)
	reg := install(os.Interrupt, func() {
		if err := dump(cfg, os.Interrupt, interruptHeader); err != nil {
			cfg.Logger.Error().
				Err(err).
				Str(devlog.FieldEvent, "stacktrace.output_failed").
				Str(devlog.FieldPath, cfg.Output).
				Msg("cannot write stack trace")
			cancel(fmt.Errorf("%w: %w", ErrInterrupted, err))
			return
		}
		cancel(ErrInterrupted)
	})
	return ctx, reg, nil
}

func install(sig os.Signal, handle func()) *Registration {
	installMu.Lock()
	defer installMu.Unlock()

	r := &Registration{
		sig:    sig,
		ch:     make(chan os.Signal, 1),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
	// The new channel is notified before the old one is stopped so the
	// signal never falls back to its default action mid-swap.
	ossignal.Notify(r.ch, sig)
	go func() {
		defer close(r.done)
		for {
			select {
			case <-r.stopCh:
				return
			case <-r.ch:
				handle()
			}
		}
	}()

	activeMu.Lock()
	prev := active[sig]
	activeMu.Unlock()
	if prev != nil {
		prev.Stop()
	}

	activeMu.Lock()
	active[sig] = r
	activeMu.Unlock()
	return r
}

// probeOutput checks up front that the trace file can be opened for
// writing, without truncating an existing file.
func probeOutput(path string) error {
	if path == "" {
		return nil
	}
	// #nosec G304 -- trace path is operator supplied
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputTarget, err)
	}
	return f.Close()
}

// dump writes one trace for sig to the configured target.
func dump(cfg Config, sig os.Signal, header string) error {
	dumpMu.Lock()
	defer dumpMu.Unlock()

	goroutines := Capture()
	dumpID := uuid.NewString()

	var (
		w      io.Writer
		target string
	)
	if cfg.Output != "" {
		// #nosec G304 -- trace path is operator supplied
		f, err := os.OpenFile(cfg.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOutputTarget, err)
		}
		defer f.Close()
		w, target = f, "file"
	} else {
		w, target = cfg.Stderr, "stderr"
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	if err := Render(w, header+" (dump "+dumpID+")", goroutines, NewSourceLines()); err != nil {
		return fmt.Errorf("write stack trace: %w", err)
	}
	metrics.IncStackDump(signalName(sig), target)

	if target == "file" {
		cfg.Logger.WithLevel(zerolog.FatalLevel).
			Str(devlog.FieldEvent, "stacktrace.dump_written").
			Str(devlog.FieldSignal, signalName(sig)).
			Str(devlog.FieldDumpID, dumpID).
			Str(devlog.FieldPath, cfg.Output).
			Int("goroutines", len(goroutines)).
			Msg("stack trace saved")
	}
	return nil
}

func signalName(sig os.Signal) string {
	switch sig {
	case syscall.SIGTERM:
		return "SIGTERM"
	case os.Interrupt:
		return "SIGINT"
	}
	return sig.String()
}
