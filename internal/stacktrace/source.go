// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package stacktrace

import (
	"bufio"
	"os"
	"strings"
)

// SourceLines caches source files read while rendering one trace. It is
// not safe for concurrent use.
type SourceLines struct {
	files map[string][]string
}

// NewSourceLines returns an empty cache.
func NewSourceLines() *SourceLines {
	return &SourceLines{files: make(map[string][]string)}
}

// Line returns line n (1-based) of file with surrounding whitespace
// removed, or "" when the file or line is unavailable.
func (s *SourceLines) Line(file string, n int) string {
	if s == nil || n <= 0 {
		return ""
	}
	lines, ok := s.files[file]
	if !ok {
		lines = readLines(file)
		s.files[file] = lines
	}
	if n > len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[n-1])
}

func readLines(file string) []string {
	// #nosec G304 -- paths come from the runtime's own stack dump
	f, err := os.Open(file)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}
