// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package stacktrace

import (
	"bufio"
	"io"
	"strconv"
)

// Render writes header followed by one traceback per goroutine:
//
//	goroutine 7 [chan receive]:
//	Traceback(most recent call last):
//	  File "/src/app/main.go", line 42, in main.run
//	    <-done
//
// Frames are visited in slice order, which Capture makes oldest-first.
func Render(w io.Writer, header string, goroutines []Goroutine, src *SourceLines) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(header)
	bw.WriteByte('\n')

	for i, g := range goroutines {
		if i > 0 {
			bw.WriteByte('\n')
		}
		bw.WriteString("goroutine ")
		bw.WriteString(strconv.FormatInt(g.ID, 10))
		bw.WriteString(" [")
		bw.WriteString(g.State)
		bw.WriteString("]:\n")
		bw.WriteString("Traceback(most recent call last):\n")
		for _, f := range g.Frames {
			bw.WriteString(`  File "`)
			bw.WriteString(f.File)
			bw.WriteString(`", line `)
			bw.WriteString(strconv.Itoa(f.Line))
			bw.WriteString(", in ")
			bw.WriteString(f.Function)
			bw.WriteString("\n    ")
			bw.WriteString(src.Line(f.File, f.Line))
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
