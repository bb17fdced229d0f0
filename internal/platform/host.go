package platform

import (
	"fmt"
	"strings"

	"github.com/containerd/platforms"
	specs "github.com/opencontainers/image-spec/specs-go/v1"
)

// A platform a bundle can be published for.
type Host struct {
	Family    Family  // Operating system family.
	Arch      string  // Normalized OCI architecture (e.g., "amd64").
	OSVersion string  // macOS product version, empty when unknown.
	Release   Release // Linux distribution, zero when unknown.
}

// Describes the running machine.
func Detect() (Host, error) {
	host, err := fromSpec(platforms.DefaultSpec())
	if err != nil {
		return Host{}, err
	}

	switch host.Family {
	case Linux:
		host.Release = readRelease(osReleasePaths)
	case Darwin:
		host.OSVersion = osVersion()
	}

	return host, nil
}

// Parses an "os/arch[/variant]" specifier (e.g., "linux/arm64").
//
// The resulting host carries no release information, so it resolves to the
// portable rid of its family.
func FromSpecifier(specifier string) (Host, error) {
	if !strings.Contains(specifier, "/") {
		return Host{}, fmt.Errorf("%w: %q must have the form os/arch", ErrInvalidSpecifier, specifier)
	}

	spec, err := platforms.Parse(specifier)
	if err != nil {
		return Host{}, fmt.Errorf("%w: %w", ErrInvalidSpecifier, err)
	}

	return fromSpec(spec)
}

// Builds a host from an OCI platform.
func fromSpec(spec specs.Platform) (Host, error) {
	spec = platforms.Normalize(spec)

	family := ParseFamily(spec.OS)
	if family == Unsupported {
		return Host{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, spec.OS)
	}

	return Host{Family: family, Arch: spec.Architecture}, nil
}

// Returns the OCI "os/arch" form of the host.
func (h Host) String() string {
	return h.Family.String() + "/" + h.Arch
}
