package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringDevBuild(t *testing.T) {
	info := Info{
		Version:   "dev",
		Commit:    "unknown",
		Date:      "unknown",
		GoVersion: "go1.23.0",
		Platform:  "linux/amd64",
	}

	assert.Equal(t, "visedit version dev (go1.23.0, linux/amd64)", info.String())
}

func TestStringReleaseBuild(t *testing.T) {
	info := Info{
		Version:   "1.2.0",
		Commit:    "1a2b3c4d5e6f7890",
		Date:      "2025-01-01",
		GoVersion: "go1.23.0",
		Platform:  "darwin/arm64",
	}

	assert.Equal(t,
		"visedit version 1.2.0 (1a2b3c4d, built 2025-01-01, go1.23.0, darwin/arm64)",
		info.String())
}

func TestGetReflectsBuildVariables(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, Commit, info.Commit)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
