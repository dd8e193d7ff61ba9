// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package metrics provides Prometheus metrics for the build tooling. The
// tools are short-lived, so metrics are exported through the node_exporter
// textfile collector format instead of an HTTP endpoint.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every metric of this package. It is separate from the
// default registry so textfile output carries no Go runtime collectors.
var Registry = prometheus.NewRegistry()

var (
	// CodegenRunsTotal counts generator runs by result (success/error).
	CodegenRunsTotal = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "devtools_codegen_runs_total",
		Help: "Total number of settings generator runs, by result.",
	}, []string{"result"})

	// CodegenFilesWrittenTotal counts generated files by generator.
	CodegenFilesWrittenTotal = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "devtools_codegen_files_written_total",
		Help: "Total number of generated files written, by generator.",
	}, []string{"generator"})

	// CodegenSettingsTotal counts descriptors seen by each generator, by outcome (emitted/skipped).
	CodegenSettingsTotal = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "devtools_codegen_settings_total",
		Help: "Total number of setting descriptors processed, by generator and outcome.",
	}, []string{"generator", "outcome"})

	// CodegenLastRunSeconds records the wall time of the most recent run.
	CodegenLastRunSeconds = promauto.With(Registry).NewGauge(prometheus.GaugeOpts{
		Name: "devtools_codegen_last_run_duration_seconds",
		Help: "Duration of the most recent settings generator run.",
	})

	// StackDumpsTotal counts stack traces written by signal handlers.
	StackDumpsTotal = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "devtools_stacktrace_dumps_total",
		Help: "Total number of stack traces written on signal delivery, by signal and target.",
	}, []string{"signal", "target"})
)

// RecordRun records the outcome and duration of one generator run.
func RecordRun(err error, d time.Duration) {
	result := "success"
	if err != nil {
		result = "error"
	}
	CodegenRunsTotal.WithLabelValues(result).Inc()
	CodegenLastRunSeconds.Set(d.Seconds())
}

// RecordFileWritten records one generated file.
func RecordFileWritten(generator string) {
	CodegenFilesWrittenTotal.WithLabelValues(generator).Inc()
}

// RecordSettings records how many descriptors a generator emitted and skipped.
func RecordSettings(generator string, emitted, skipped int) {
	CodegenSettingsTotal.WithLabelValues(generator, "emitted").Add(float64(emitted))
	CodegenSettingsTotal.WithLabelValues(generator, "skipped").Add(float64(skipped))
}

// IncStackDump records one stack trace dump.
func IncStackDump(signal, target string) {
	StackDumpsTotal.WithLabelValues(signal, target).Inc()
}

// WriteTextfile writes the registry in the textfile collector format. The
// file is replaced atomically by the client library.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
