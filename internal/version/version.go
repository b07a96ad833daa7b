package version

import (
	"fmt"
	"strings"
)

// Version information, set via ldflags during build.
var (
	// Version is the current version of the application.
	Version = "0.1.0"

	// Commit is the git commit hash.
	Commit = "unknown"

	// Build is the build timestamp.
	Build = "unknown"
)

// String returns the version with a "v" prefix, followed by the short commit
// when it is known.
func String() string {
	v := Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if Commit != "" && Commit != "unknown" {
		return fmt.Sprintf("%s (%s)", v, Commit)
	}
	return v
}
