//go:build darwin

package platform

import "golang.org/x/sys/unix"

// Returns the macOS product version (e.g., "14.5").
func osVersion() string {
	v, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return ""
	}
	return v
}
