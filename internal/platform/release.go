package platform

import (
	"bufio"
	"os"
	"strings"
)

// Well-known locations of the os-release file, in lookup order.
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// Linux distribution identity read from os-release.
type Release struct {
	ID        string // Distribution identifier (e.g., "ubuntu").
	VersionID string // Distribution version (e.g., "22.04").
}

// Distributions whose rid carries only the major version.
var majorOnly = map[string]bool{
	"rhel":   true,
	"centos": true,
	"ol":     true,
}

// Returns the "<id>.<version>" rid prefix, or "" when incomplete.
func (r Release) prefix() string {
	if r.ID == "" || r.VersionID == "" {
		return ""
	}
	version := r.VersionID
	if majorOnly[r.ID] {
		version, _, _ = strings.Cut(version, ".")
	}
	return r.ID + "." + version
}

// Reads the first os-release file found among paths.
//
// A missing or unreadable file yields an empty release, which resolves to
// the portable "linux-<arch>" rid.
func readRelease(paths []string) Release {
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			continue
		}
		defer f.Close()
		return parseRelease(bufio.NewScanner(f))
	}
	return Release{}
}

// Parses KEY=VALUE lines, honoring optional single or double quotes.
func parseRelease(s *bufio.Scanner) Release {
	var r Release
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		switch key {
		case "ID":
			r.ID = strings.ToLower(value)
		case "VERSION_ID":
			r.VersionID = value
		}
	}
	return r
}
