package command

import (
	"fmt"
	"strings"
)

// Maximum number of bytes of diagnostic output carried in an error.
const maxDiagnostics = 4096

// Outcome of an external command.
type Result struct {
	ExitCode int    // Exit code of the process.
	Stdout   string // Captured standard output.
	Stderr   string // Captured standard error.
}

// Returns nil if the command succeeded.
//
// A non-zero exit code yields an error wrapping [ErrCommandFailed] that
// includes desc, the exit code and the tool's diagnostics.
func (r *Result) Check(desc string) error {
	if r.ExitCode == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s exited with code %d: %s", ErrCommandFailed, desc, r.ExitCode, r.Diagnostics())
}

// Returns the captured output most likely to explain a failure.
//
// Stderr is preferred. Tools that report errors on stdout (dotnet does) fall
// back to stdout. Long output is truncated to its tail, where the error
// usually is.
func (r *Result) Diagnostics() string {
	out := strings.TrimSpace(r.Stderr)
	if out == "" {
		out = strings.TrimSpace(r.Stdout)
	}
	if out == "" {
		return "(no output)"
	}
	if len(out) > maxDiagnostics {
		out = "..." + out[len(out)-maxDiagnostics:]
	}
	return out
}
