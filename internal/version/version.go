// Package version exposes build-time version information.
// The variables are overridden at build time via -ldflags:
//
//	go build -ldflags "-X github.com/HerbHall/netlens/internal/version.Version=0.2.0 ..."
package version

import "fmt"

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the short git commit hash.
	Commit = "unknown"
	// Date is the build date in RFC 3339 format.
	Date = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Info returns a human-readable version line.
func Info() string {
	return fmt.Sprintf("netlens %s (commit %s, built %s)", Version, Commit, Date)
}

// Map returns version details for JSON responses.
func Map() map[string]string {
	return map[string]string{
		"version": Version,
		"commit":  Commit,
		"date":    Date,
	}
}
