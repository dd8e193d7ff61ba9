// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package settings

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	identRe     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	guardFlagRe = regexp.MustCompile(`^[A-Z0-9_]+$`)
	typeRe      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_:<>, ]*$`)
)

// Validate checks every descriptor and reports all problems at once, in name order.
func Validate(s Set) error {
	var errs []error
	for _, name := range s.Names() {
		d := s[name]
		if d.Name == "" {
			d.Name = name
		}
		if d.Name != name {
			errs = append(errs, fmt.Errorf("%w: %s: name %q does not match key", ErrInvalidDescriptor, name, d.Name))
		}
		if !identRe.MatchString(name) {
			errs = append(errs, fmt.Errorf("%w: %q is not a valid identifier", ErrInvalidDescriptor, name))
		}
		if d.Type == "" {
			errs = append(errs, fmt.Errorf("%w: %s: missing type", ErrInvalidDescriptor, name))
		} else if !typeRe.MatchString(d.Type) {
			errs = append(errs, fmt.Errorf("%w: %s: invalid type %q", ErrInvalidDescriptor, name, d.Type))
		}
		if err := validateGuard(d); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %v", ErrInvalidDescriptor, name, err))
		}
	}
	return errors.Join(errs...)
}

func validateGuard(d Descriptor) error {
	if !d.Guarded() {
		return nil
	}
	if isVerbatimGuard(d.Conditional) {
		return nil
	}
	for _, flag := range splitGuard(d.Conditional) {
		if !guardFlagRe.MatchString(flag) {
			return fmt.Errorf("invalid conditional flag %q in %q", flag, d.Conditional)
		}
	}
	return nil
}
