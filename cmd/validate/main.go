// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// validate is a CLI tool to check setting descriptor files before they reach
// the build.
//
// Usage:
//
//	validate -f Settings.yaml
//	validate --file Settings.yaml
//
// Exit codes:
//   - 0: Descriptors are valid
//   - 1: Descriptors are invalid (parse or validation error)
//   - 2: Usage error (missing required flag)
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ManuGH/devtools/internal/settings"
	"github.com/ManuGH/devtools/internal/version"
)

func main() {
	var file string
	var showVersion bool
	var verbose bool

	flag.StringVar(&file, "file", "", "path to YAML setting descriptor file")
	flag.StringVar(&file, "f", "", "path to YAML setting descriptor file (shorthand)")
	flag.BoolVar(&verbose, "v", false, "list settings the generators will skip")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	if file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  validate -f Settings.yaml")
		fmt.Fprintln(os.Stderr, "  validate --file Settings.yaml")
		os.Exit(2)
	}

	// Load uses strict YAML parsing and validates every descriptor.
	set, err := settings.LoadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Descriptor error in %s:\n", file)
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(os.Stderr, "  %s\n", line)
		}
		os.Exit(1)
	}

	eligible, skipped := set.Eligible()
	fmt.Printf("✓ %s is valid (%d settings, %d exposed, %d skipped)\n", file, len(set), len(eligible), len(skipped))
	if verbose {
		for _, name := range skipped {
			fmt.Printf("  skipped %s (type %s has no IDL mapping)\n", name, set[name].Type)
		}
	}
}
