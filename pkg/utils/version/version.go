// Package version provides build-time version information for the animations binary.
package version

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/mod/semver"
)

var (
	// Version is the current version of the application
	Version = "dev"
	// GitCommit is the git commit hash
	GitCommit = "unknown"
	// BuildDate is when the binary was built
	BuildDate = "unknown"
	// GoVersion is the Go version used to build the binary
	GoVersion = runtime.Version()
	// Platform is the target platform
	Platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)

// Info contains version information
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersion returns the version information
func GetVersion() Info {
	return Info{
		Version:   normalize(Version),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
		Platform:  Platform,
	}
}

// normalize turns "1.2" or "v1.2.0" into canonical "v1.2.0"; non-semver values are kept as is.
func normalize(v string) string {
	if !semver.IsValid(v) && semver.IsValid("v"+v) {
		v = "v" + v
	}
	if c := semver.Canonical(v); c != "" {
		return c
	}
	return v
}

// GetVersionString returns a detailed version string
func GetVersionString() string {
	info := GetVersion()
	return fmt.Sprintf("animations has version %s built with %s from %s (%s) on %s",
		info.Version,
		info.GoVersion,
		info.GitCommit,
		info.Platform,
		info.BuildDate,
	)
}

// GetShortVersionString returns a short version string
func GetShortVersionString() string {
	info := GetVersion()

	dateStr := info.BuildDate
	if buildTime, err := time.Parse(time.RFC3339, info.BuildDate); err == nil {
		dateStr = buildTime.Format("2006-01-02")
	}

	return fmt.Sprintf("animations version %s (%s)", info.Version, dateStr)
}
