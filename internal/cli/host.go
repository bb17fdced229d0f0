package cli

import "github.com/cruciblehq/sharedfx/internal/platform"

// Returns the target platform: the specifier when set, the running machine
// otherwise.
func resolveHost(specifier string) (platform.Host, error) {
	if specifier != "" {
		return platform.FromSpecifier(specifier)
	}
	return platform.Detect()
}
