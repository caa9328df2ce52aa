// Package config provides the global settings store and environment
// configuration for phpgen. Settings live in a single JSON object file in
// the user's config directory and hold answers remembered between runs,
// most importantly the vendor namespace to Composer vendor slug mapping.
package config

import "errors"

// Sentinel errors for configuration operations.
var (
	// ErrStoreUnavailable indicates the settings file could not be read or written.
	ErrStoreUnavailable = errors.New("config: settings store unavailable")

	// ErrInvalidSettings indicates the settings file is not a JSON object.
	ErrInvalidSettings = errors.New("config: invalid settings file")

	// ErrInvalidValue indicates a value could not be encoded or decoded for a key.
	ErrInvalidValue = errors.New("config: invalid settings value")

	// ErrInvalidEnv indicates an environment variable has an unusable value.
	ErrInvalidEnv = errors.New("config: invalid environment")
)
