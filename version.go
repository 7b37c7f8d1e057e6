package echoproc

import (
	"runtime"
	"slices"

	"github.com/simonhull/echoproc/internal/registry"
)

// Version is the semantic version of echoproc.
const Version = "0.1.0"

// Build metadata, overridden with -ldflags at release time:
//
//	go build -ldflags="-X github.com/simonhull/echoproc.gitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/simonhull/echoproc.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)

// BuildInfo describes the running build and what it can read.
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	// Formats lists the containers with a registered loader.
	Formats []Format
	// Models lists the echosounders Process dispatches to.
	Models []SonarModel
}

// GetBuildInfo returns the version, build metadata and supported inputs.
func GetBuildInfo() BuildInfo {
	formats := registry.Formats()
	slices.Sort(formats)

	return BuildInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
		Formats:   formats,
		Models:    []SonarModel{SonarEK60, SonarEK80, SonarAZFP},
	}
}
