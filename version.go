package flacmeta

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the flacmeta library.
const Version = "0.1.0"

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// Variables populated at build time via -ldflags, e.g.
//
//	go build -ldflags="-X github.com/simonhull/flacmeta.gitCommit=$(git rev-parse HEAD)"
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)

// GetVersionInfo returns the library version plus whatever build metadata
// is available. Values not set through -ldflags fall back to the VCS
// stamps embedded by the go command, then to "unknown".
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.GitCommit == "unknown":
			info.GitCommit = s.Value
		case s.Key == "vcs.time" && info.BuildTime == "unknown":
			info.BuildTime = s.Value
		}
	}
	return info
}
