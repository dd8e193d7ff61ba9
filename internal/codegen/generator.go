// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package codegen renders the C++ sources that expose engine settings to
// the test-only settings override class.
package codegen

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	devlog "github.com/ManuGH/devtools/internal/log"
	"github.com/ManuGH/devtools/internal/metrics"
	"github.com/ManuGH/devtools/internal/settings"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Kind selects one generated artifact.
type Kind string

const (
	KindImplementation Kind = "cpp"
	KindHeader         Kind = "header"
	KindIDL            Kind = "idl"
)

// AllKinds lists every artifact in emission order.
var AllKinds = []Kind{KindImplementation, KindHeader, KindIDL}

type emitFunc func(ctx context.Context, outputDirectory string, set settings.Set) error

var emitters = map[Kind]struct {
	file string
	emit emitFunc
}{
	KindImplementation: {ImplementationFile, emitImplementation},
	KindHeader:         {HeaderFile, emitHeader},
	KindIDL:            {IDLFile, emitIDL},
}

// ParseKinds parses a comma separated artifact list; "all" or "" selects every artifact.
func ParseKinds(raw string) ([]Kind, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "all" {
		return append([]Kind(nil), AllKinds...), nil
	}
	seen := map[Kind]bool{}
	var kinds []Kind
	for _, part := range strings.Split(raw, ",") {
		k := Kind(strings.TrimSpace(part))
		if _, ok := emitters[k]; !ok {
			return nil, fmt.Errorf("unknown artifact %q (want cpp, header, idl or all)", part)
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Result summarises one generator run.
type Result struct {
	RunID    string
	Files    []string // written paths, in emission order
	Eligible []string // emitted setting names, sorted
	Skipped  []string // setting names with unsupported types, sorted
	Duration time.Duration
}

// Generator writes the selected artifacts into an output directory.
type Generator struct {
	kinds  []Kind
	logger zerolog.Logger
}

// New returns a generator for the given artifacts (all of them when none are given).
func New(kinds ...Kind) *Generator {
	if len(kinds) == 0 {
		kinds = AllKinds
	}
	return &Generator{
		kinds:  kinds,
		logger: devlog.WithComponent("codegen"),
	}
}

// Kinds returns the artifacts this generator writes.
func (g *Generator) Kinds() []Kind {
	return append([]Kind(nil), g.kinds...)
}

// Generate writes every selected artifact sequentially. The first error
// aborts the run; files written before it are left in place.
func (g *Generator) Generate(ctx context.Context, outputDirectory string, set settings.Set) (res Result, err error) {
	start := time.Now()
	res.RunID = uuid.NewString()
	ctx = devlog.ContextWithRunID(ctx, res.RunID)
	logger := devlog.WithContext(ctx, g.logger)
	ctx = logger.WithContext(ctx)

	defer func() {
		res.Duration = time.Since(start)
		metrics.RecordRun(err, res.Duration)
	}()

	eligible, skipped := set.Eligible()
	for _, d := range eligible {
		res.Eligible = append(res.Eligible, d.Name)
	}
	res.Skipped = skipped
	for _, name := range skipped {
		logger.Debug().
			Str(devlog.FieldEvent, "codegen.setting_skipped").
			Str(devlog.FieldSetting, name).
			Str("type", set[name].Type).
			Msg("setting type has no IDL mapping, skipping")
	}

	for _, kind := range g.kinds {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		e, ok := emitters[kind]
		if !ok {
			return res, fmt.Errorf("unknown artifact %q", kind)
		}
		if err := e.emit(ctx, outputDirectory, set); err != nil {
			logger.Error().
				Err(err).
				Str(devlog.FieldEvent, "codegen.write_failed").
				Str(devlog.FieldGenerator, string(kind)).
				Str(devlog.FieldOutputDir, outputDirectory).
				Msg("failed to write generated file")
			return res, fmt.Errorf("generate %s: %w", kind, err)
		}

		path := filepath.Join(outputDirectory, e.file)
		res.Files = append(res.Files, path)
		metrics.RecordFileWritten(string(kind))
		metrics.RecordSettings(string(kind), len(eligible), len(skipped))
		logger.Info().
			Str(devlog.FieldEvent, "codegen.file_written").
			Str(devlog.FieldGenerator, string(kind)).
			Str(devlog.FieldPath, path).
			Int(devlog.FieldEligible, len(eligible)).
			Int(devlog.FieldSkipped, len(skipped)).
			Msg("generated file written")
	}
	return res, nil
}
