// Package version exposes build-time version information for the
// whitefang binary.
package version

import "fmt"

// Build-time values, injected via -ldflags. The defaults mark a binary
// built outside the release pipeline.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the version line the CLI prints.
func String() string {
	return fmt.Sprintf("whitefang %s (commit: %s, built: %s)", Version, Commit, Date)
}
