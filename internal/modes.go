package internal

import (
	"strconv"
	"sync/atomic"
)

// Output modes. Seeded from linker flags, then overridden by CLI flags.
var (
	quietMode   atomic.Bool
	debugMode   atomic.Bool
	verboseMode atomic.Bool
)

func init() {
	seed(&quietMode, rawQuiet)
	seed(&debugMode, rawDebug)
	seed(&verboseMode, rawVerbose)
}

// Stores the parsed value of a raw linker flag. Unparseable values leave the
// flag disabled.
func seed(flag *atomic.Bool, raw string) {
	if v, err := strconv.ParseBool(raw); err == nil {
		flag.Store(v)
	}
}

// Enables or disables quiet mode.
func SetQuiet(enabled bool) { quietMode.Store(enabled) }

// Returns true if quiet mode is enabled.
func IsQuiet() bool { return quietMode.Load() }

// Enables or disables debug mode.
func SetDebug(enabled bool) { debugMode.Store(enabled) }

// Returns true if debug mode is enabled.
func IsDebug() bool { return debugMode.Load() }

// Enables or disables verbose mode. In verbose mode the output of external
// tools is streamed to stderr as it is produced.
func SetVerbose(enabled bool) { verboseMode.Store(enabled) }

// Returns true if verbose mode is enabled.
func IsVerbose() bool { return verboseMode.Load() }
