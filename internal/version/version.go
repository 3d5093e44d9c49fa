// Package version carries build metadata injected at link time.
package version

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Short is "journal <version>".
func Short() string {
	return "journal " + Version
}

// Info is the detailed line printed by `journal version`.
func Info() string {
	if Version == "dev" {
		return fmt.Sprintf("journal dev (%s, %s/%s)", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("journal %s (commit: %s, built: %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
