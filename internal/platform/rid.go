package platform

import (
	"fmt"
	"strings"
)

// Returns the rid architecture name for an OCI architecture.
func ridArch(arch string) (string, error) {
	switch arch {
	case "amd64":
		return "x64", nil
	case "386":
		return "x86", nil
	case "arm64":
		return "arm64", nil
	case "arm":
		return "arm", nil
	default:
		return "", fmt.Errorf("%w: architecture %q", ErrUnsupportedPlatform, arch)
	}
}

// Returns the runtime identifier the host publishes for.
//
//	Windows: win7-<arch>, whatever the Windows build
//	Linux:   <id>.<version>-<arch>, or linux-<arch> without os-release
//	Darwin:  osx.<major>.<minor>-<arch>, or osx-<arch> when unknown
//	FreeBSD: freebsd-<arch>
func (h Host) RID() (string, error) {
	arch, err := ridArch(h.Arch)
	if err != nil {
		return "", err
	}

	switch h.Family {
	case Windows:
		return "win7-" + arch, nil
	case Linux:
		if prefix := h.Release.prefix(); prefix != "" {
			return prefix + "-" + arch, nil
		}
		return "linux-" + arch, nil
	case Darwin:
		if v := majorMinor(h.OSVersion); v != "" {
			return "osx." + v + "-" + arch, nil
		}
		return "osx-" + arch, nil
	case FreeBSD:
		return "freebsd-" + arch, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, h.Family)
	}
}

// Truncates a dotted version to its first two components ("14.5.1" becomes
// "14.5"). A single component is padded with ".0".
func majorMinor(v string) string {
	if v == "" {
		return ""
	}
	parts := strings.SplitN(v, ".", 3)
	if len(parts) == 1 {
		return parts[0] + ".0"
	}
	return parts[0] + "." + parts[1]
}
