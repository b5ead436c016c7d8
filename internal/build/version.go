// Package build provides version and build information for claude-notifier.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import (
	"fmt"
	"runtime"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// Info returns a one-line description of the build
func Info() string {
	return fmt.Sprintf("claude-notifier %s (commit %s, built %s, %s)", Version, Commit, BuildDate, runtime.Version())
}
