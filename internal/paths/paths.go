package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/cruciblehq/sharedfx/internal"
)

const (

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Root of all cached state.
//
//	Linux:   $XDG_CACHE_HOME/sharedfx or ~/.cache/sharedfx
//	macOS:   ~/Library/Caches/sharedfx
//	Windows: %LOCALAPPDATA%\cache\sharedfx
func Cache() string {
	return filepath.Join(xdg.CacheHome, internal.Name)
}

// Default parent directory for materialized projects.
//
// The shared framework project is materialized at
// <Intermediate>/sharedFramework/framework.
func Intermediate() string {
	return filepath.Join(Cache(), "intermediate")
}

// Default directory where helper tools (the runtime graph generator) are
// published before they are run.
func Tools() string {
	return filepath.Join(Cache(), "tools")
}
