package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/cruciblehq/sharedfx/internal"
	"github.com/cruciblehq/sharedfx/internal/config"
)

const description = `Publishes the shared runtime framework for one runtime identifier.

The framework project is materialized from its template, restored and
published with dotnet, merged with the native host and compiled ahead
of time. The bundle lands in <output>/shared/<framework>/<version>.`

// Represents the root command for sharedfx.
var RootCmd struct {
	Quiet   bool   `short:"q" help:"Only print warnings and errors." xor:"level"`
	Verbose bool   `short:"v" help:"Stream dotnet, crossgen and generator output to stderr."`
	Debug   bool   `short:"d" help:"Log every step and external command." xor:"level"`
	Config  string `short:"c" help:"Settings file. Defaults to ./${config_file} when present." placeholder:"PATH" type:"path"`

	Publish PublishCmd `cmd:"" help:"Publish the framework bundle."`
	Rid     RidCmd     `cmd:"" help:"Print the runtime identifier and graph family for a platform."`
	Version VersionCmd `cmd:"" help:"Print build information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	parser, err := newParser(&RootCmd, kong.BindTo(ctx, (*context.Context)(nil)))
	if err != nil {
		return err
	}

	kongCtx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	configureLogger()

	return kongCtx.Run()
}

// Builds the command line parser for grammar.
func newParser(grammar any, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name(internal.Name),
		kong.Description(description),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"config_file": config.DefaultFile,
		},
	}, opts...)
	return kong.New(grammar, opts...)
}

// Applies CLI flags to the process modes and replaces the global logger.
func configureLogger() {
	if RootCmd.Debug {
		internal.SetDebug(true)
	}
	if RootCmd.Quiet {
		internal.SetQuiet(true)
	}
	if RootCmd.Verbose {
		internal.SetVerbose(true)
	}

	SetDefaultLogger(Level(internal.IsDebug(), internal.IsQuiet()), os.Stderr)
}
