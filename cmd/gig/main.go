// SPDX-License-Identifier: MPL-2.0

// The gig launcher is a polymorphic front door: invoked under a tool's
// name (via symlink, copy, or GIG_OVERRIDE), it loads that tool's
// <name>.toml, checks the invocation location is a valid project root,
// optionally runs a setup step, and hands control to the real program
// with every original argument forwarded.
package main

import (
	"fmt"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

func main() {
	Execute()
}
