// Package version holds build-time metadata for the slicec CLI, overridden
// via -ldflags at release build time; ground: teacher's internal/version.
package version

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// String renders "X.Y.Z" or "X.Y.Z (commit)" when GitCommit is set.
func String() string {
	if GitCommit == "" {
		return Version
	}
	return Version + " (" + GitCommit + ")"
}
