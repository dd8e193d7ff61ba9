// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package codegen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ManuGH/devtools/internal/metrics"
	"github.com/ManuGH/devtools/internal/settings"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKinds(t *testing.T) {
	tests := []struct {
		raw     string
		want    []Kind
		wantErr bool
	}{
		{raw: "", want: AllKinds},
		{raw: "all", want: AllKinds},
		{raw: "cpp", want: []Kind{KindImplementation}},
		{raw: "idl, cpp", want: []Kind{KindIDL, KindImplementation}},
		{raw: "cpp,cpp", want: []Kind{KindImplementation}},
		{raw: "java", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseKinds(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerator_Generate(t *testing.T) {
	dir := t.TempDir()
	set := exampleSet()
	set["hideDelay"] = settings.Descriptor{Name: "hideDelay", Type: "Seconds"}

	before := testutil.ToFloat64(metrics.CodegenFilesWrittenTotal.WithLabelValues(string(KindHeader)))

	res, err := New().Generate(context.Background(), dir, set)
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, []string{
		filepath.Join(dir, ImplementationFile),
		filepath.Join(dir, HeaderFile),
		filepath.Join(dir, IDLFile),
	}, res.Files)
	assert.Equal(t, []string{"webGLEnabled", "zoomFactor"}, res.Eligible)
	assert.Equal(t, []string{"hideDelay"}, res.Skipped)

	for _, f := range res.Files {
		_, err := os.Stat(f)
		assert.NoError(t, err)
	}
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CodegenFilesWrittenTotal.WithLabelValues(string(KindHeader))))
}

func TestGenerator_OnlyImplementation(t *testing.T) {
	dir := t.TempDir()
	res, err := New(KindImplementation).Generate(context.Background(), dir, exampleSet())
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ImplementationFile, entries[0].Name())
}

func TestGenerator_Errors(t *testing.T) {
	t.Run("missing output directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "missing")
		_, err := New().Generate(context.Background(), dir, exampleSet())
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "generate cpp")
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		res, err := New().Generate(ctx, t.TempDir(), exampleSet())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, res.Files)
	})
}
