// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package stacktrace

import (
	"bytes"
	"io"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/maruel/panicparse/v2/stack"
)

// Frame is one call site.
type Frame struct {
	Function string
	File     string
	Line     int
}

// Goroutine is the stack of one goroutine, oldest caller first.
type Goroutine struct {
	ID     int64
	State  string
	Frames []Frame
}

var stackBufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 64<<10)
		return &buf
	},
}

func putStackBuffer(buf *[]byte) {
	if len(*buf) <= 4<<20 {
		stackBufPool.Put(buf)
	}
}

// creatorGoroutine matches the " in goroutine N" suffix Go 1.21+ appends to
// "created by" lines.
var creatorGoroutine = regexp.MustCompile(`(?m)^(created by .+) in goroutine \d+$`)

// Capture snapshots every goroutine except the calling one.
func Capture() []Goroutine {
	self := currentGoroutineID()
	return Parse(allStacks(), self)
}

// allStacks returns the runtime's text dump of every goroutine, growing the
// buffer until the dump fits.
func allStacks() []byte {
	bufp := stackBufPool.Get().(*[]byte)
	defer putStackBuffer(bufp)

	for {
		n := runtime.Stack(*bufp, true)
		if n < len(*bufp) {
			out := make([]byte, n)
			copy(out, (*bufp)[:n])
			return out
		}
		*bufp = make([]byte, 2*len(*bufp))
	}
}

func currentGoroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// "goroutine 7 [running]:"
	fields := strings.Fields(string(buf[:n]))
	if len(fields) < 2 {
		return 0
	}
	id, _ := strconv.ParseInt(fields[1], 10, 64)
	return id
}

// Parse converts a runtime.Stack dump into goroutines, omitting the
// goroutine whose ID is skip (0 keeps all). The runtime lists frames
// newest-first; they are reordered oldest-first, with the "created by"
// call as the oldest frame.
func Parse(dump []byte, skip int64) []Goroutine {
	dump = creatorGoroutine.ReplaceAll(dump, []byte("$1"))
	// ScanSnapshot reports io.EOF once the dump is consumed; on other errors
	// the goroutines parsed so far are still in snap.
	snap, _, _ := stack.ScanSnapshot(bytes.NewReader(dump), io.Discard, &stack.Opts{})
	if snap == nil {
		return nil
	}

	out := make([]Goroutine, 0, len(snap.Goroutines))
	for _, g := range snap.Goroutines {
		if skip != 0 && int64(g.ID) == skip {
			continue
		}
		out = append(out, Goroutine{
			ID:     int64(g.ID),
			State:  goroutineState(g),
			Frames: oldestFirst(g),
		})
	}
	return out
}

// goroutineState restores the annotations panicparse splits out of the
// header, e.g. "chan receive, 2 minutes, locked to thread".
func goroutineState(g *stack.Goroutine) string {
	state := g.State
	if g.SleepMax > 0 {
		state += ", " + strconv.Itoa(g.SleepMax) + " minutes"
	}
	if g.Locked {
		state += ", locked to thread"
	}
	return state
}

func oldestFirst(g *stack.Goroutine) []Frame {
	calls := g.Stack.Calls
	frames := make([]Frame, 0, len(calls)+len(g.CreatedBy.Calls))
	for i := len(g.CreatedBy.Calls) - 1; i >= 0; i-- {
		frames = append(frames, frameOf(g.CreatedBy.Calls[i]))
	}
	for i := len(calls) - 1; i >= 0; i-- {
		frames = append(frames, frameOf(calls[i]))
	}
	return frames
}

func frameOf(c stack.Call) Frame {
	return Frame{Function: c.Func.Complete, File: c.RemoteSrcPath, Line: c.Line}
}
