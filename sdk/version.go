package sdk

import (
	"fmt"
	"runtime"
)

var (
	// VERSION is set with -ldflags "-X github.com/asciiplot/asciiplot/sdk.VERSION=$(VERSION)"
	VERSION = "snapshot"
	// GOOS is set with -ldflags "-X github.com/asciiplot/asciiplot/sdk.GOOS=$(GOOS)"
	GOOS = ""
	// GOARCH is set with -ldflags "-X github.com/asciiplot/asciiplot/sdk.GOARCH=$(GOARCH)"
	GOARCH = ""
	// GITHASH is set with -ldflags "-X github.com/asciiplot/asciiplot/sdk.GITHASH=$(GITHASH)"
	GITHASH = ""
	// BUILDTIME is set with -ldflags "-X github.com/asciiplot/asciiplot/sdk.BUILDTIME=$(BUILDTIME)"
	BUILDTIME = ""
)

func init() {
	if GOOS == "" {
		GOOS = runtime.GOOS
	}
	if GOARCH == "" {
		GOARCH = runtime.GOARCH
	}
}

// Version is the binary version information.
type Version struct {
	Version      string `json:"version" yaml:"version" cli:"version,key"`
	Architecture string `json:"architecture" yaml:"architecture" cli:"architecture"`
	OS           string `json:"os" yaml:"os" cli:"os"`
	GitHash      string `json:"git_hash" yaml:"git_hash" cli:"git_hash"`
	BuildTime    string `json:"build_time" yaml:"build_time" cli:"build_time"`
}

// VersionCurrent returns the current version.
func VersionCurrent() Version {
	return Version{
		Version:      VERSION,
		Architecture: GOARCH,
		OS:           GOOS,
		GitHash:      GITHASH,
		BuildTime:    BUILDTIME,
	}
}

// VersionString returns a string containing the version, os, arch, git hash and build time.
func VersionString() string {
	return fmt.Sprintf("asciiplot version:%s os:%s architecture:%s git.hash:%s build.time:%s", VERSION, GOOS, GOARCH, GITHASH, BUILDTIME)
}
