package platform

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromSpecifier(t *testing.T) {
	tests := []struct {
		name      string
		specifier string
		family    Family
		arch      string
	}{
		{name: "linux amd64", specifier: "linux/amd64", family: Linux, arch: "amd64"},
		{name: "linux aarch64 alias", specifier: "linux/aarch64", family: Linux, arch: "arm64"},
		{name: "macos alias", specifier: "macos/x86_64", family: Darwin, arch: "amd64"},
		{name: "windows with version", specifier: "windows(10.0.17763)/amd64", family: Windows, arch: "amd64"},
		{name: "arm variant", specifier: "linux/arm/v7", family: Linux, arch: "arm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, err := FromSpecifier(tt.specifier)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if host.Family != tt.family {
				t.Errorf("family = %s, want %s", host.Family, tt.family)
			}
			if host.Arch != tt.arch {
				t.Errorf("arch = %q, want %q", host.Arch, tt.arch)
			}
			if host.OSVersion != "" || host.Release != (Release{}) {
				t.Errorf("specifier host carries release information: %+v", host)
			}
		})
	}
}

func TestFromSpecifierErrors(t *testing.T) {
	tests := []struct {
		specifier string
		want      error
	}{
		{"linux", ErrInvalidSpecifier},
		{"linux/*", ErrInvalidSpecifier},
		{"plan9/amd64", ErrUnsupportedPlatform},
	}
	for _, tt := range tests {
		_, err := FromSpecifier(tt.specifier)
		if !errors.Is(err, tt.want) {
			t.Errorf("FromSpecifier(%q) err = %v, want %v", tt.specifier, err, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	host, err := Detect()
	if err != nil {
		t.Skipf("host platform not supported: %v", err)
	}
	rid, err := host.RID()
	if err != nil {
		t.Skipf("host architecture not supported: %v", err)
	}
	if rid == "" {
		t.Fatal("Detect produced an empty rid")
	}
}

func TestParseRelease(t *testing.T) {
	input := `# comment
NAME="Ubuntu"
ID=Ubuntu
VERSION_ID="22.04"
ID_LIKE=debian
malformed line
`
	r := parseRelease(bufio.NewScanner(strings.NewReader(input)))
	if r.ID != "ubuntu" {
		t.Errorf("ID = %q, want ubuntu", r.ID)
	}
	if r.VersionID != "22.04" {
		t.Errorf("VersionID = %q, want 22.04", r.VersionID)
	}
}

func TestReadReleaseFallback(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "os-release")
	if err := os.WriteFile(second, []byte("ID='alpine'\nVERSION_ID=3.19.1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r := readRelease([]string{filepath.Join(dir, "missing"), second})
	if r.prefix() != "alpine.3.19.1" {
		t.Fatalf("prefix = %q, want alpine.3.19.1", r.prefix())
	}

	if got := readRelease([]string{filepath.Join(dir, "missing")}); got != (Release{}) {
		t.Fatalf("missing files produced %+v, want zero release", got)
	}
}
