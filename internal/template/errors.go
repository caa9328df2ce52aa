// Package template renders and deploys the embedded file tree that makes up
// a freshly generated PHP library.
package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the named template is not in the file tree.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates a template referenced data that was not provided.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates template syntax survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")

	// ErrPathTraversal indicates a template path would escape the project root.
	ErrPathTraversal = errors.New("template: path escapes project root")
)
