// Package composer builds the composer.json manifest of a generated library
// and runs Composer in the new project.
package composer

import "errors"

// Sentinel errors for the composer package.
var (
	// ErrInvalidConstraint indicates a PHP version constraint Composer would reject.
	ErrInvalidConstraint = errors.New("composer: invalid version constraint")

	// ErrInvalidPackageName indicates a package name that is not "vendor/project".
	ErrInvalidPackageName = errors.New("composer: invalid package name")

	// ErrInvalidAuthor indicates an author that is not "Name" or "Name <email>".
	ErrInvalidAuthor = errors.New("composer: invalid author")

	// ErrComposerNotFound indicates the Composer executable is not on PATH.
	ErrComposerNotFound = errors.New("composer: executable not found")

	// ErrInstallFailed indicates "composer install" exited unsuccessfully.
	ErrInstallFailed = errors.New("composer: install failed")
)
