// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package settings models the setting descriptors consumed by the code
// generators: one record per configurable setting, keyed by name.
package settings

import "sort"

// Type tags the generators know how to expose. Any other type name is
// accepted by the loader but skipped by the generators.
const (
	TypeBool     = "bool"
	TypeInt      = "int"
	TypeUnsigned = "unsigned"
	TypeDouble   = "double"
	TypeFloat    = "float"
	TypeString   = "String"
)

// Descriptor describes one setting.
type Descriptor struct {
	Name        string // C++ identifier, e.g. "webGLEnabled"
	Type        string // type tag, e.g. "bool" or "String"
	Initial     string // optional initial value expression
	Conditional string // optional build-flag guard, e.g. "WEBGL"
}

// Guarded reports whether the descriptor carries a build-flag guard.
func (d Descriptor) Guarded() bool {
	return d.Conditional != ""
}

// Set maps setting name to descriptor.
type Set map[string]Descriptor

// Names returns the setting names in lexicographic order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sorted returns the descriptors in lexicographic order of name. Every
// generator pass iterates this order so output is reproducible.
func (s Set) Sorted() []Descriptor {
	names := s.Names()
	out := make([]Descriptor, 0, len(names))
	for _, name := range names {
		d := s[name]
		if d.Name == "" {
			d.Name = name
		}
		out = append(out, d)
	}
	return out
}

// Eligible splits the sorted descriptors into those a generator can expose
// and the names of those it has to skip.
func (s Set) Eligible() (eligible []Descriptor, skipped []string) {
	for _, d := range s.Sorted() {
		if _, ok := IDLType(d); !ok {
			skipped = append(skipped, d.Name)
			continue
		}
		eligible = append(eligible, d)
	}
	return eligible, skipped
}
