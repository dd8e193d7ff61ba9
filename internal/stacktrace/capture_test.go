// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package stacktrace

import (
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = `goroutine 1 [running]:
main.main()
	/src/app/main.go:12 +0x1d

goroutine 7 [chan receive, 2 minutes]:
github.com/ManuGH/devtools/internal/watch.(*Watcher).loop(0xc000120000, {0x7f3c20, 0xc00001e0a0})
	/src/internal/watch/watcher.go:88 +0x1a5
github.com/ManuGH/devtools/internal/watch.(*Watcher).Start.func1()
	/src/internal/watch/watcher.go:61 +0x2f
created by github.com/ManuGH/devtools/internal/watch.(*Watcher).Start in goroutine 1
	/src/internal/watch/watcher.go:59 +0x105

goroutine 9 [select, locked to thread]:
main.worker(0xc000012345)
	/src/app/worker.go:30 +0x44
...additional frames elided...
`

func TestParse(t *testing.T) {
	got := Parse([]byte(sampleDump), 0)

	want := []Goroutine{
		{
			ID:    1,
			State: "running",
			Frames: []Frame{
				{Function: "main.main", File: "/src/app/main.go", Line: 12},
			},
		},
		{
			ID:    7,
			State: "chan receive, 2 minutes",
			Frames: []Frame{
				{Function: "github.com/ManuGH/devtools/internal/watch.(*Watcher).Start", File: "/src/internal/watch/watcher.go", Line: 59},
				{Function: "github.com/ManuGH/devtools/internal/watch.(*Watcher).Start.func1", File: "/src/internal/watch/watcher.go", Line: 61},
				{Function: "github.com/ManuGH/devtools/internal/watch.(*Watcher).loop", File: "/src/internal/watch/watcher.go", Line: 88},
			},
		},
		{
			ID:    9,
			State: "select, locked to thread",
			Frames: []Frame{
				{Function: "main.worker", File: "/src/app/worker.go", Line: 30},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Skip(t *testing.T) {
	got := Parse([]byte(sampleDump), 7)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(9), got[1].ID)
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, Parse(nil, 0))
	assert.Empty(t, Parse([]byte("garbage\n\tline\n"), 0))
}

func parkedCallee(ready chan<- struct{}, release <-chan struct{}) {
	close(ready)
	<-release
}

func parkedCaller(ready chan<- struct{}, release <-chan struct{}) {
	parkedCallee(ready, release)
	runtime.KeepAlive(release)
}

func TestCapture_OldestFirstAndExcludesSelf(t *testing.T) {
	ready := make(chan struct{})
	release := make(chan struct{})
	defer close(release)
	go parkedCaller(ready, release)
	<-ready

	self := currentGoroutineID()
	goroutines := Capture()

	var parked *Goroutine
	for i := range goroutines {
		g := &goroutines[i]
		assert.NotEqual(t, self, g.ID, "capturing goroutine must be excluded")
		for _, f := range g.Frames {
			if strings.HasSuffix(f.Function, ".parkedCallee") {
				parked = g
			}
		}
	}
	require.NotNil(t, parked, "parked goroutine not found in capture")

	caller, callee := -1, -1
	for i, f := range parked.Frames {
		switch {
		case strings.HasSuffix(f.Function, ".parkedCaller"):
			caller = i
		case strings.HasSuffix(f.Function, ".parkedCallee"):
			callee = i
		}
	}
	require.GreaterOrEqual(t, caller, 0)
	assert.Less(t, caller, callee, "caller must precede callee")
	assert.True(t, strings.HasSuffix(parked.Frames[caller].File, "capture_test.go"))
	assert.Positive(t, parked.Frames[caller].Line)
}
