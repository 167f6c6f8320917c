// Package version reports the bob build version.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time with -ldflags "-X github.com/example/bob/internal/version.Commit=...".
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version string shown by "bob --version".
func String() string {
	return fmt.Sprintf("dev (commit: %s, built: %s)", shortCommit(resolveCommit()), BuildTime)
}

// resolveCommit falls back to the VCS stamp embedded by the go tool.
func resolveCommit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Commit
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value
		}
	}
	return Commit
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
