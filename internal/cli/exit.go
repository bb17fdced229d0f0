package cli

import "github.com/containerd/errdefs"

// Process exit codes.
const (
	ExitFailure         = 1 // Any failure without a more specific code.
	ExitInvalidArgument = 2 // Invalid configuration or arguments.
	ExitNotFound        = 3 // A required file or directory is missing.
)

// Returns the process exit code for err, or 0 if err is nil.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errdefs.IsInvalidArgument(err):
		return ExitInvalidArgument
	case errdefs.IsNotFound(err):
		return ExitNotFound
	default:
		return ExitFailure
	}
}
