// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package settings

import "errors"

var (
	// ErrInvalidDescriptor classifies descriptors that fail validation.
	// Use errors.Is(err, ErrInvalidDescriptor) instead of string matching.
	ErrInvalidDescriptor = errors.New("invalid setting descriptor")

	// ErrUnknownField classifies strict YAML parse failures caused by unknown keys.
	ErrUnknownField = errors.New("unknown descriptor field")
)
