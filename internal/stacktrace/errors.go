// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package stacktrace

import "errors"

var (
	// ErrOutputTarget reports a trace output file that cannot be opened.
	// It is a configuration error: the handler cannot do its job.
	ErrOutputTarget = errors.New("stack trace output cannot be opened")

	// ErrInterrupted is the cancellation cause of contexts returned by
	// OnInterrupt once the interrupt signal has been handled.
	ErrInterrupted = errors.New("interrupted")
)
