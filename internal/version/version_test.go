// Package version_test provides tests for version management functionality.
package version

import (
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() != Version {
		t.Errorf("GetVersion() = %s, want %s", GetVersion(), Version)
	}
}

func TestGetInfo(t *testing.T) {
	info, err := GetInfo()
	if err != nil {
		t.Fatalf("GetInfo() returned error: %v", err)
	}
	if info.Version != Version {
		t.Errorf("info.Version = %s, want %s", info.Version, Version)
	}
	if info.SemVer == nil {
		t.Error("info.SemVer should be parsed")
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("info.Platform = %s, want GOOS/GOARCH form", info.Platform)
	}
}

func TestGetInfoInvalidVersion(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	Version = "not-a-version"
	if _, err := GetInfo(); err == nil {
		t.Error("GetInfo() should fail for an invalid version")
	}
}

func TestGetBaseVersion(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	Version = "1.2.3+45.abcdef"
	if got := GetBaseVersion(); got != "1.2.3" {
		t.Errorf("GetBaseVersion() = %s, want 1.2.3", got)
	}
}

func TestGetFormattedVersion(t *testing.T) {
	original := GitCommit
	defer func() { GitCommit = original }()

	GitCommit = "abcdef1234567890"
	formatted := GetFormattedVersion()
	if !strings.Contains(formatted, "termsay v"+Version) {
		t.Errorf("GetFormattedVersion() = %s, missing version", formatted)
	}
	if !strings.Contains(formatted, "commit abcdef1") {
		t.Errorf("GetFormattedVersion() = %s, missing short commit", formatted)
	}
}
