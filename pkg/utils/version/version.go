// Package version provides build-time version information for projscope.
package version

import (
	"fmt"
	"runtime"
	"time"
)

var (
	// Version is the current version of the application
	Version = "dev"
	// GitCommit is the git commit hash
	GitCommit = "unknown"
	// BuildDate is when the binary was built (RFC3339)
	BuildDate = "unknown"
	// GoVersion is the Go version used to build the binary
	GoVersion = runtime.Version()
	// Platform is the target platform
	Platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)

// Info contains version information
type Info struct {
	Version   string `json:"version" yaml:"version" toml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit" toml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date" toml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version" toml:"go_version"`
	Platform  string `json:"platform" yaml:"platform" toml:"platform"`
}

// GetVersion returns the version information
func GetVersion() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
		Platform:  Platform,
	}
}

// GetVersionString returns the detailed one-line version string
func GetVersionString() string {
	info := GetVersion()
	return fmt.Sprintf("projscope has version %s built with %s from %s (%s) on %s",
		info.Version, info.GoVersion, info.GitCommit, info.Platform, info.BuildDate)
}

// GetShortVersionString returns a short version string with the release link
func GetShortVersionString() string {
	info := GetVersion()

	dateStr := info.BuildDate
	if t, err := time.Parse(time.RFC3339, info.BuildDate); err == nil {
		dateStr = t.Format("2006-01-02")
	}

	return fmt.Sprintf("projscope version %s (%s)\nhttps://github.com/yeisme/projscope/releases/tag/v%s",
		info.Version, dateStr, info.Version)
}
