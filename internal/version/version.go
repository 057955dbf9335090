// Package version provides centralized version management for termsay.
// It supports semantic versioning and build-time injection via -ldflags.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information that can be set at compile time via -ldflags.
var (
	// Version is the semantic version of the application.
	Version = "0.1.0"

	// GitCommit is the git commit hash when the binary was built.
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// Info represents comprehensive version information.
type Info struct {
	Version   string          `json:"version"`
	GitCommit string          `json:"gitCommit"`
	BuildDate string          `json:"buildDate"`
	GoVersion string          `json:"goVersion"`
	Platform  string          `json:"platform"`
	SemVer    *semver.Version `json:"-"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetBaseVersion returns the base version (major.minor.patch) without
// build metadata.
func GetBaseVersion() string {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return Version
	}
	return fmt.Sprintf("%d.%d.%d", sv.Major(), sv.Minor(), sv.Patch())
}

// GetInfo returns comprehensive version information.
func GetInfo() (*Info, error) {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}

	return &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		SemVer:    sv,
	}, nil
}

// GetFormattedVersion returns a nicely formatted version string.
func GetFormattedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("termsay v%s (invalid version)", Version)
	}

	parts := []string{fmt.Sprintf("termsay v%s", info.Version)}

	if info.GitCommit != "unknown" && info.GitCommit != "" {
		shortCommit := info.GitCommit
		if len(shortCommit) > 7 {
			shortCommit = shortCommit[:7]
		}
		parts = append(parts, fmt.Sprintf("commit %s", shortCommit))
	}

	if info.BuildDate != "unknown" && info.BuildDate != "" {
		parts = append(parts, fmt.Sprintf("built %s", info.BuildDate))
	}

	return strings.Join(parts, ", ")
}
