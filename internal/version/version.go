// Package version holds the semrel build version information. It is a
// separate dependency-free package so any other package can import it
// without cycles.
package version

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

// Info returns the one-line build description used by the version
// command and User-Agent strings.
func Info() string {
	return fmt.Sprintf("semrel %s (commit %s, built %s, %s, %s/%s)",
		Version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
