package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// An external command invocation.
type Cmd struct {
	Path string   // Program to run, resolved through PATH when not absolute.
	Args []string // Arguments, not including the program.
	Dir  string   // Working directory. Empty uses the current directory.
	Env  []string // "KEY=value" overrides applied on top of the process environment.
}

// Returns the command line, for logs and error messages.
func (c Cmd) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Runs commands to completion.
type Runner interface {
	Run(ctx context.Context, cmd Cmd) (*Result, error)
}

// Runs commands as child processes of the current process.
type Exec struct {
	Stream io.Writer // Receives stdout and stderr as they are produced. Nil only captures.
}

// Starts the command and blocks until it exits.
//
// The returned error reports only failures to run the process at all. An
// exit code other than zero is reported through [Result.ExitCode].
// Cancelling ctx kills the process.
func (e Exec) Run(ctx context.Context, cmd Cmd) (*Result, error) {
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = mergeEnv(os.Environ(), cmd.Env)

	var stdout, stderr bytes.Buffer
	c.Stdout = tee(&stdout, e.Stream)
	c.Stderr = tee(&stderr, e.Stream)

	slog.Debug("exec", "command", cmd.String(), "dir", cmd.Dir)

	err := c.Run()

	result := &Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		result.ExitCode = exitErr.ExitCode()
	case ctx.Err() != nil:
		return nil, fmt.Errorf("%w: %s: %w", ErrStart, cmd.Path, ctx.Err())
	default:
		return nil, fmt.Errorf("%w: %s: %w", ErrStart, cmd.Path, err)
	}

	slog.Debug("exit", "command", cmd.Path, "code", result.ExitCode)
	return result, nil
}

// Returns w, or a writer duplicating to w and stream when stream is set.
func tee(w io.Writer, stream io.Writer) io.Writer {
	if stream == nil {
		return w
	}
	return io.MultiWriter(w, stream)
}

// Merges override env vars on top of a base env slice.
//
// Later entries win. Malformed entries without "=" are dropped. The order of
// the base is kept, with new keys appended in override order, so the child
// environment is deterministic.
func mergeEnv(base, overrides []string) []string {
	index := make(map[string]int, len(base)+len(overrides))
	result := make([]string, 0, len(base)+len(overrides))

	for _, entry := range append(append([]string{}, base...), overrides...) {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if i, seen := index[k]; seen {
			result[i] = entry
			continue
		}
		index[k] = len(result)
		result = append(result, entry)
	}

	return result
}
