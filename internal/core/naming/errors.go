// Package naming implements the PHP naming rules used when scaffolding a
// library: namespace segment validation, namespace composition, Composer
// package name derivation, and the vendor namespace to Composer vendor
// slug mapping that is remembered between runs.
//
// Every function in this package is pure. The vendor mapping is an
// immutable value; callers receive a new mapping instead of a mutated one.
package naming

import (
	"errors"
	"fmt"
)

// ErrInvalidSegment indicates a string is not an acceptable namespace segment.
var ErrInvalidSegment = errors.New("naming: invalid namespace segment")

// InvalidSegmentError names the input that failed validation.
type InvalidSegmentError struct {
	Input string
}

// Error implements the error interface.
func (e *InvalidSegmentError) Error() string {
	if e.Input == "" {
		return "namespace segment must not be empty"
	}
	return fmt.Sprintf("%q is not a valid namespace segment: it must start with a letter and contain only letters, digits or %q",
		e.Input, Separator)
}

// Unwrap returns ErrInvalidSegment so callers can use errors.Is.
func (e *InvalidSegmentError) Unwrap() error {
	return ErrInvalidSegment
}
