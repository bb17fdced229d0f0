package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const (

	// Name of the tool, used for the binary, log group and XDG directories.
	Name = "sharedfx"

	// Shown for build values nothing provided.
	unknown = "(unknown)"

	// Branch whose builds carry no stage suffix.
	releaseBranch = "main"
)

// Build values set with -ldflags "-X". Release pipelines set all of them.
var (
	version   = "" // Release version (e.g., "v1.2.3").
	stage     = "" // Branch the build was cut from.
	gitCommit = "" // Commit hash.

	rawQuiet   = "false" // Default quiet mode.
	rawDebug   = "false" // Default debug mode.
	rawVerbose = "false" // Default verbose mode.
)

// Reads module build information. Replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Returns the release version without a "v" prefix.
//
// Binaries built with go install carry their module version, which is used
// when the linker flag is unset.
func Version() string {
	v := strings.TrimSpace(version)
	if v == "" {
		if info, ok := readBuildInfo(); ok && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	if v == "" {
		return unknown
	}
	return strings.TrimPrefix(strings.ToLower(v), "v")
}

// Returns the branch the build was cut from, lower-cased.
func Stage() string {
	if s := strings.TrimSpace(stage); s != "" {
		return strings.ToLower(s)
	}
	return unknown
}

// Returns the commit hash the binary was built from.
//
// Falls back to the VCS revision the go command stamps into the binary.
func GitCommit() string {
	if c := strings.TrimSpace(gitCommit); c != "" {
		return c
	}
	if info, ok := readBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}
	return unknown
}

// Returns the operating system and architecture the binary runs on (e.g.,
// "linux/amd64").
func Arch() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// Returns a one-line description of the build:
//
//	1.2.3 a1b2c3d [linux/amd64]           release branch
//	1.2.3+feature a1b2c3d [linux/amd64]   any other stage
//	(unknown) a1b2c3d [linux/amd64]       development build
func VersionString() string {
	v := Version()
	if s := Stage(); s != unknown && s != releaseBranch {
		v += "+" + s
	}
	return fmt.Sprintf("%s %s [%s]", v, GitCommit(), Arch())
}
