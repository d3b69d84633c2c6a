// Package version exposes build metadata stamped in by the release
// pipeline.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Overridden at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info describes one build of the binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the version information of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders a one-line description, e.g.
// "visedit version 1.2.0 (1a2b3c4d, built 2025-01-01, go1.23.0, linux/amd64)".
func (i Info) String() string {
	details := []string{}

	if i.Commit != "unknown" {
		commit := i.Commit
		if len(commit) > 8 {
			commit = commit[:8]
		}
		details = append(details, commit)
	}
	if i.Date != "unknown" {
		details = append(details, "built "+i.Date)
	}
	details = append(details, i.GoVersion, i.Platform)

	return fmt.Sprintf("visedit version %s (%s)", i.Version, strings.Join(details, ", "))
}
