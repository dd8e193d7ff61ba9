// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileDescriptor is the on-disk shape of one descriptor:
//
//	webGLEnabled:
//	  type: bool
//	  initial: false
//	  conditional: WEBGL
type fileDescriptor struct {
	Type        string `yaml:"type"`
	Initial     string `yaml:"initial"`
	Conditional string `yaml:"conditional"`
}

// LoadFile reads a descriptor file with STRICT parsing and validates the
// result. Unknown keys are rejected so typos cannot silently drop a guard.
func LoadFile(path string) (Set, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported descriptor format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- descriptor paths are provided by the build system via CLI
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse decodes and validates descriptor YAML.
func Parse(data []byte) (Set, error) {
	raw := map[string]fileDescriptor{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Set{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("%w: %v", ErrUnknownField, err)
		}
		return nil, fmt.Errorf("strict descriptor parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("descriptor file contains multiple documents or trailing content")
	}

	set := make(Set, len(raw))
	for name, fd := range raw {
		set[name] = Descriptor{
			Name:        name,
			Type:        strings.TrimSpace(fd.Type),
			Initial:     fd.Initial,
			Conditional: strings.TrimSpace(fd.Conditional),
		}
	}

	if err := Validate(set); err != nil {
		return nil, err
	}
	return set, nil
}
