// Package version holds build information injected at link time.
package version

var (
	// Version is the semantic version, set via -ldflags.
	Version = "dev"
	// GitCommit is the short commit hash, set via -ldflags.
	GitCommit = "unknown"
)
