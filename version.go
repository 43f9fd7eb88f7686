package coverart

import (
	"fmt"
	"runtime"
)

// Version is the semantic version of the coverart library.
const Version = "1.0.0"

// Variables populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// VersionInfo contains detailed version information.
type VersionInfo struct {
	Version   string // semantic version, e.g. "1.0.0"
	GitCommit string // git commit hash, set via ldflags at build time
	BuildTime string // build timestamp, set via ldflags at build time
	GoVersion string // Go version used to build
}

// String formats the version info the way the command-line tool
// reports it.
func (v VersionInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)",
		v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
}

// GetVersionInfo returns detailed version information.
//
// GitCommit, BuildTime, and GoVersion come from -ldflags and show as
// "unknown" when not set, except GoVersion, which falls back to the
// runtime's version:
//
//	go build -ldflags="-X github.com/aswild/ogg-coverart.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/aswild/ogg-coverart.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
func GetVersionInfo() VersionInfo {
	goVer := goVersion
	if goVer == "unknown" {
		goVer = runtime.Version()
	}

	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: goVer,
	}
}
