// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRun(t *testing.T) {
	before := testutil.ToFloat64(CodegenRunsTotal.WithLabelValues("error"))
	RecordRun(errors.New("boom"), 1500*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(CodegenRunsTotal.WithLabelValues("error")))
	assert.InDelta(t, 1.5, testutil.ToFloat64(CodegenLastRunSeconds), 1e-9)
}

func TestRecordSettings(t *testing.T) {
	emitted := testutil.ToFloat64(CodegenSettingsTotal.WithLabelValues("test-gen", "emitted"))
	skipped := testutil.ToFloat64(CodegenSettingsTotal.WithLabelValues("test-gen", "skipped"))

	RecordSettings("test-gen", 3, 1)

	assert.Equal(t, emitted+3, testutil.ToFloat64(CodegenSettingsTotal.WithLabelValues("test-gen", "emitted")))
	assert.Equal(t, skipped+1, testutil.ToFloat64(CodegenSettingsTotal.WithLabelValues("test-gen", "skipped")))
}

func TestRegistryGather(t *testing.T) {
	RecordFileWritten("gather-test")
	IncStackDump("SIGTERM", "stderr")

	families, err := Registry.Gather()
	require.NoError(t, err)

	byName := map[string]*dto.MetricFamily{}
	for _, mf := range families {
		byName[mf.GetName()] = mf
	}
	require.Contains(t, byName, "devtools_codegen_files_written_total")
	require.Contains(t, byName, "devtools_stacktrace_dumps_total")
	assert.Equal(t, dto.MetricType_COUNTER, byName["devtools_stacktrace_dumps_total"].GetType())

	// No runtime collectors on the private registry.
	assert.NotContains(t, byName, "go_goroutines")
}

func TestWriteTextfile(t *testing.T) {
	RecordFileWritten("textfile-test")

	path := filepath.Join(t.TempDir(), "gensettings.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `devtools_codegen_files_written_total{generator="textfile-test"} 1`)
}

func TestWriteTextfile_BadDir(t *testing.T) {
	err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "out.prom"))
	assert.Error(t, err)
}
