// Package version exposes build metadata for the phpgen binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Build-time variables injected via -ldflags.
var (
	Version = "v0.1.0-dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the current version string. Binaries installed with
// "go install" carry no ldflags, so the module version is used instead.
func GetVersion() string {
	if Version == "v0.1.0-dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return Version
}

// GetCommit returns the build commit hash.
func GetCommit() string {
	return Commit
}

// GetDate returns the build date.
func GetDate() string {
	return Date
}

// GetFullVersion returns a formatted full version string.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", GetVersion(), Commit, Date)
}
