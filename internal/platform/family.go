package platform

import (
	"fmt"
	"strings"
)

// Operating system family of a host.
type Family int

const (
	Unsupported Family = iota // Family that cannot be published for.
	Windows                   // Microsoft Windows.
	Linux                     // Any Linux distribution.
	Darwin                    // macOS.
	FreeBSD                   // FreeBSD. Has a rid but no runtime graph family.
)

// Returns the family for a GOOS/OCI operating system name.
func ParseFamily(os string) Family {
	switch strings.ToLower(os) {
	case "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin", "macos":
		return Darwin
	case "freebsd":
		return FreeBSD
	default:
		return Unsupported
	}
}

func (f Family) String() string {
	switch f {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case Darwin:
		return "darwin"
	case FreeBSD:
		return "freebsd"
	default:
		return "unsupported"
	}
}

// Returns the platform tag passed to the runtime graph generator.
//
// Only Windows, Linux and macOS have a runtime graph. Every other family
// returns [ErrUnmappedFamily] so that a manifest is never produced without a
// fallback graph.
func (f Family) GraphFamily() (string, error) {
	switch f {
	case Windows:
		return "win", nil
	case Linux:
		return "linux", nil
	case Darwin:
		return "osx", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnmappedFamily, f)
	}
}

// Returns the suffix of native executables (".exe" on Windows).
func (f Family) ExeSuffix() string {
	if f == Windows {
		return ".exe"
	}
	return ""
}

// Returns the file name of a native shared library with the given base name.
//
//	Windows: hostfxr.dll
//	Darwin:  libhostfxr.dylib
//	others:  libhostfxr.so
func (f Family) SharedLibrary(base string) string {
	switch f {
	case Windows:
		return base + ".dll"
	case Darwin:
		return "lib" + base + ".dylib"
	default:
		return "lib" + base + ".so"
	}
}

// Returns the line separator native to the family.
func (f Family) LineSeparator() string {
	if f == Windows {
		return "\r\n"
	}
	return "\n"
}
