package dotnet

import (
	"context"

	"github.com/cruciblehq/sharedfx/internal/command"
)

// Environment applied to every dotnet invocation.
var defaultEnv = []string{
	"DOTNET_CLI_TELEMETRY_OPTOUT=1",
	"DOTNET_SKIP_FIRST_TIME_EXPERIENCE=1",
	"DOTNET_NOLOGO=1",
}

// The dotnet command line tool.
type CLI struct {
	Runner command.Runner // Executes the tool.
	Path   string         // Path to the dotnet executable.
	Env    []string       // Extra environment, applied after the defaults.
}

// Runs "dotnet restore" in dir.
func (c CLI) Restore(ctx context.Context, dir string, args ...string) (*command.Result, error) {
	return c.run(ctx, dir, "restore", args)
}

// Runs "dotnet publish" in the current directory.
func (c CLI) Publish(ctx context.Context, args ...string) (*command.Result, error) {
	return c.run(ctx, "", "publish", args)
}

func (c CLI) run(ctx context.Context, dir, verb string, args []string) (*command.Result, error) {
	return c.Runner.Run(ctx, command.Cmd{
		Path: c.Path,
		Args: append([]string{verb}, args...),
		Dir:  dir,
		Env:  append(append([]string{}, defaultEnv...), c.Env...),
	})
}
