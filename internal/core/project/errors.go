// Package project generates a new PHP library project: it writes the
// Composer manifest, deploys the boilerplate templates and installs the
// development dependencies.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrInvalidOptions indicates the generation options failed validation.
	ErrInvalidOptions = errors.New("project: invalid options")

	// ErrGenerateFailed indicates a generation step could not complete.
	ErrGenerateFailed = errors.New("project: generation failed")
)
