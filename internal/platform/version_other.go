//go:build !darwin

package platform

// The OS version only shapes the rid on macOS; Windows rids are pinned and
// Linux rids come from os-release.
func osVersion() string {
	return ""
}
