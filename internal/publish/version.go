package publish

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cruciblehq/sharedfx/internal/paths"
	"github.com/cruciblehq/sharedfx/internal/platform"
)

// Name of the provenance file at the bundle root.
const VersionFile = ".version"

var errMalformedStamp = errors.New("malformed version stamp")

// Returns the line separator of the running platform.
func lineSeparator() string {
	return platform.ParseFamily(runtime.GOOS).LineSeparator()
}

// Writes <commit><sep><version><sep> to dir/.version, replacing any
// existing file.
func Stamp(dir, commit, version string) error {
	sep := lineSeparator()
	content := commit + sep + version + sep

	if err := os.WriteFile(filepath.Join(dir, VersionFile), []byte(content), paths.DefaultFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystem, err)
	}
	return nil
}

// Reads the commit and version back from dir/.version.
func ReadStamp(dir string) (commit, version string, err error) {
	data, err := os.ReadFile(filepath.Join(dir, VersionFile))
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrFileSystem, err)
	}

	sep := lineSeparator()
	lines := strings.Split(string(data), sep)
	if len(lines) != 3 || lines[2] != "" || lines[1] == "" {
		return "", "", fmt.Errorf("%w: %s", errMalformedStamp, filepath.Join(dir, VersionFile))
	}

	return lines[0], lines[1], nil
}
