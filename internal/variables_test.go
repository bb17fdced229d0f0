package internal

import (
	"runtime/debug"
	"strings"
	"sync/atomic"
	"testing"
)

// Sets the build values for the duration of a test.
func withBuild(t *testing.T, v, s, c string, info *debug.BuildInfo) {
	t.Helper()
	oldV, oldS, oldC, oldRead := version, stage, gitCommit, readBuildInfo
	version, stage, gitCommit = v, s, c
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
	t.Cleanup(func() {
		version, stage, gitCommit, readBuildInfo = oldV, oldS, oldC, oldRead
	})
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		name    string
		version string
		stage   string
		commit  string
		info    *debug.BuildInfo
		want    string
	}{
		{
			name:    "release branch",
			version: "v1.2.3", stage: "main", commit: "a1b2c3d",
			want: "1.2.3 a1b2c3d",
		},
		{
			name:    "feature branch",
			version: "1.2.3", stage: "Feature", commit: "a1b2c3d",
			want: "1.2.3+feature a1b2c3d",
		},
		{
			name: "go install",
			info: &debug.BuildInfo{
				Main:     debug.Module{Version: "v0.4.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffee00"}},
			},
			want: "0.4.0 ffee00",
		},
		{
			name: "development build",
			info: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: "(unknown) (unknown)",
		},
		{
			name: "no build info",
			want: "(unknown) (unknown)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuild(t, tt.version, tt.stage, tt.commit, tt.info)

			got := VersionString()
			want := tt.want + " [" + Arch() + "]"
			if got != want {
				t.Errorf("VersionString() = %q, want %q", got, want)
			}
		})
	}
}

func TestArch(t *testing.T) {
	if !strings.Contains(Arch(), "/") {
		t.Errorf("Arch() = %q, want os/arch", Arch())
	}
}

func TestModes(t *testing.T) {
	defer SetVerbose(IsVerbose())
	SetVerbose(true)
	if !IsVerbose() {
		t.Fatal("verbose mode not enabled")
	}
	SetVerbose(false)
	if IsVerbose() {
		t.Fatal("verbose mode not disabled")
	}

	var flag atomic.Bool
	seed(&flag, "true")
	if !flag.Load() {
		t.Error("seed did not parse true")
	}
	seed(&flag, "nonsense")
	if !flag.Load() {
		t.Error("unparseable value changed the flag")
	}
}
