// Package git prepares a generated project as a Git repository using the
// system git binary.
package git

import "errors"

// Sentinel errors for the git package.
var (
	// ErrSystemGitNotFound indicates git is not on PATH.
	ErrSystemGitNotFound = errors.New("git: system git not found")

	// ErrNotRepository indicates the directory is not inside a work tree.
	ErrNotRepository = errors.New("git: not a repository")

	// ErrHookConflict indicates a different pre-commit hook is already installed.
	ErrHookConflict = errors.New("git: pre-commit hook already exists")
)
