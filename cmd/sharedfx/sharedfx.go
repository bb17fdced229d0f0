package main

import (
	"log/slog"
	"os"

	"github.com/cruciblehq/sharedfx/internal"
	"github.com/cruciblehq/sharedfx/internal/cli"
)

// The entry point for sharedfx.
//
// Initializes logging, displays startup information, and executes the root
// command. Errors exit with the code [cli.ExitCode] assigns to them.
func main() {
	cli.SetDefaultLogger(cli.Level(internal.IsDebug(), internal.IsQuiet()), os.Stderr)

	slog.Debug("build", "version", internal.VersionString(), "arch", internal.Arch())

	slog.Debug("sharedfx is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(cli.ExitCode(err))
	}
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
