package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// Set with -ldflags "-X github.com/osse101/LondonTravel_Go/internal/handler.Version=..."
var (
	Version   = ""
	BuildTime = ""
	GitCommit = ""
)

const devVersion = "dev"

// HandleVersion reports the deployed build so releases can be verified
// @Summary Build information
// @Description Reports the deployed version so releases can be verified
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(serviceName, configuredVersion string) http.HandlerFunc {
	info := buildVersionInfo(serviceName, configuredVersion, readVCS())
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// vcsInfo is what `go build` stamps from the working tree
type vcsInfo struct {
	revision string
	time     string
	modified bool
}

func readVCS() vcsInfo {
	var v vcsInfo
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			v.revision = s.Value
		case "vcs.time":
			v.time = s.Value
		case "vcs.modified":
			v.modified = s.Value == "true"
		}
	}
	return v
}

// buildVersionInfo prefers ldflags, then configuration, then VCS stamps
func buildVersionInfo(serviceName, configured string, vcs vcsInfo) VersionInfo {
	info := VersionInfo{
		Service:   serviceName,
		Version:   firstNonEmpty(Version, configured, devVersion),
		GoVersion: runtime.Version(),
		BuildTime: firstNonEmpty(BuildTime, vcs.time),
		GitCommit: firstNonEmpty(GitCommit, vcs.revision),
		Modified:  GitCommit == "" && vcs.modified,
	}
	return info
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
