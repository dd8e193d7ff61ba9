// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// gensettings renders the InternalSettingsGenerated sources from a setting
// descriptor file.
//
// Usage:
//
//	gensettings -i Settings.yaml -o DerivedSources/WebCore
//	gensettings -i Settings.yaml -o out -only cpp
//	gensettings -i Settings.yaml -o out -watch
//
// Exit codes:
//   - 0: Generation succeeded
//   - 1: Descriptor or generation error
//   - 2: Usage error
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ManuGH/devtools/internal/codegen"
	devlog "github.com/ManuGH/devtools/internal/log"
	"github.com/ManuGH/devtools/internal/metrics"
	"github.com/ManuGH/devtools/internal/settings"
	"github.com/ManuGH/devtools/internal/stacktrace"
	"github.com/ManuGH/devtools/internal/version"
	"github.com/ManuGH/devtools/internal/watch"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	envStackTraceFile = "GENSETTINGS_STACK_TRACE_FILE"
)

type options struct {
	input          string
	outputDir      string
	only           string
	watch          bool
	metricsFile    string
	stackTraceFile string
	logLevel       string
	showVersion    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("gensettings", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.input, "input", "", "path to YAML setting descriptor file")
	fs.StringVar(&opts.input, "i", "", "path to YAML setting descriptor file (shorthand)")
	fs.StringVar(&opts.outputDir, "output-dir", "", "directory receiving the generated sources")
	fs.StringVar(&opts.outputDir, "o", "", "directory receiving the generated sources (shorthand)")
	fs.StringVar(&opts.only, "only", "all", "artifacts to generate: cpp, header, idl (comma separated) or all")
	fs.BoolVar(&opts.watch, "watch", false, "keep running and regenerate when the input changes")
	fs.StringVar(&opts.metricsFile, "metrics-textfile", "", "write Prometheus textfile collector metrics to this path")
	fs.StringVar(&opts.stackTraceFile, "stack-trace-file", os.Getenv(envStackTraceFile), "file receiving stack traces on SIGTERM/SIGINT (default stderr)")
	fs.StringVar(&opts.logLevel, "log-level", os.Getenv("LOG_LEVEL"), "log level (debug, info, warn, error)")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.showVersion {
		return opts, nil
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if opts.input == "" {
		return opts, errors.New("--input is required")
	}
	if opts.outputDir == "" {
		return opts, errors.New("--output-dir is required")
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  gensettings -i Settings.yaml -o OUTPUT_DIR [-only cpp,header,idl] [-watch]")
		return exitUsage
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, version.String())
		return exitOK
	}

	kinds, err := codegen.ParseKinds(opts.only)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	devlog.Configure(devlog.Config{
		Level:   opts.logLevel,
		Output:  stderr,
		Service: "gensettings",
		Version: version.Version,
	})
	logger := devlog.WithComponent("gensettings")

	if err := execute(context.Background(), opts, kinds, stderr, logger); err != nil {
		fail(stderr, err)
		return exitError
	}
	return exitOK
}

func fail(stderr io.Writer, err error) {
	fmt.Fprintf(stderr, "gensettings: %v\n", err)
}

func execute(parent context.Context, opts options, kinds []codegen.Kind, stderr io.Writer, logger zerolog.Logger) error {
	traceCfg := stacktrace.Config{Output: opts.stackTraceFile, Stderr: stderr}
	termReg, err := stacktrace.OnTerminate(traceCfg)
	if err != nil {
		return fmt.Errorf("install termination handler: %w", err)
	}
	defer termReg.Stop()

	ctx, intReg, err := stacktrace.OnInterrupt(parent, traceCfg)
	if err != nil {
		return fmt.Errorf("install interrupt handler: %w", err)
	}
	defer intReg.Stop()

	if opts.metricsFile != "" {
		defer func() {
			if mErr := metrics.WriteTextfile(opts.metricsFile); mErr != nil {
				logger.Warn().
					Err(mErr).
					Str(devlog.FieldEvent, "metrics.write_failed").
					Str(devlog.FieldPath, opts.metricsFile).
					Msg("failed to write metrics textfile")
			}
		}()
	}

	gen := codegen.New(kinds...)
	regenerate := func(ctx context.Context) error {
		set, err := settings.LoadFile(opts.input)
		if err != nil {
			return fmt.Errorf("load descriptors: %w", err)
		}
		res, err := gen.Generate(ctx, opts.outputDir, set)
		if err != nil {
			return err
		}
		logger.Info().
			Str(devlog.FieldEvent, "gensettings.generated").
			Str(devlog.FieldRunID, res.RunID).
			Str(devlog.FieldInputPath, opts.input).
			Str(devlog.FieldOutputDir, opts.outputDir).
			Int("files", len(res.Files)).
			Int(devlog.FieldEligible, len(res.Eligible)).
			Int(devlog.FieldSkipped, len(res.Skipped)).
			Dur("duration", res.Duration).
			Msg("settings sources generated")
		return nil
	}

	if err := regenerate(ctx); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watch.New(opts.input, func(ctx context.Context) error {
			if err := regenerate(ctx); err != nil {
				return err
			}
			if opts.metricsFile != "" {
				return metrics.WriteTextfile(opts.metricsFile)
			}
			return nil
		}).Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		if errors.Is(context.Cause(ctx), stacktrace.ErrInterrupted) {
			logger.Info().
				Str(devlog.FieldEvent, "gensettings.interrupted").
				Msg("interrupt received, stopping watch mode")
		}
		return nil
	})
	return g.Wait()
}
