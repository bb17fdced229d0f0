package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cruciblehq/sharedfx/internal"
	"github.com/cruciblehq/sharedfx/internal/command"
	"github.com/cruciblehq/sharedfx/internal/config"
	"github.com/cruciblehq/sharedfx/internal/dotnet"
	"github.com/cruciblehq/sharedfx/internal/host"
	"github.com/cruciblehq/sharedfx/internal/publish"
)

// Represents the 'sharedfx publish' command.
//
// Every flag overrides the matching configuration file key.
type PublishCmd struct {
	Output           string `short:"o" help:"Output root. The bundle is written to <output>/shared/<framework>/<version>." placeholder:"DIR"`
	Commit           string `help:"Commit hash recorded in .version. Defaults to HEAD of the repository." placeholder:"HASH"`
	Framework        string `help:"Framework name." placeholder:"NAME"`
	FrameworkVersion string `name:"framework-version" help:"Semantic version of the framework." placeholder:"VERSION"`
	Platform         string `help:"Target platform as os/arch. Defaults to the running machine." placeholder:"OS/ARCH"`
	RepoRoot         string `name:"repo-root" help:"Repository root." placeholder:"DIR"`
	Template         string `help:"Project template tree." placeholder:"DIR"`
	PackageSource    string `name:"package-source" help:"Fallback package source for restore." placeholder:"SOURCE"`
	HostLocked       string `name:"host-locked" help:"Locked host build output." placeholder:"DIR"`
	HostLatest       string `name:"host-latest" help:"Latest host build output." placeholder:"DIR"`
	Dotnet           string `help:"dotnet executable." placeholder:"PATH"`
	Crossgen         string `help:"crossgen executable." placeholder:"PATH"`
}

// Executes the publish command.
//
// Prints the bundle directory to stdout on success.
func (c *PublishCmd) Run(ctx context.Context) error {
	cfg, err := c.config(RootCmd.Config)
	if err != nil {
		return err
	}

	target, err := resolveHost(cfg.Platform)
	if err != nil {
		return err
	}

	runner := command.Exec{Stream: toolStream()}

	if cfg.Commit == "" {
		if cfg.Commit, err = headCommit(ctx, runner, cfg.RepoRoot); err != nil {
			return err
		}
	}

	p, err := publish.New(publish.Options{
		Framework:     cfg.Framework,
		Version:       cfg.Version,
		Host:          target,
		RepoRoot:      cfg.RepoRoot,
		Template:      cfg.Template,
		Intermediate:  cfg.Intermediate,
		PackageSource: cfg.PackageSource,
		HostDirs:      host.Dirs{Locked: cfg.Host.Locked, Latest: cfg.Host.Latest},
		ToolsOutput:   cfg.Tools.Output,
		Runner:        runner,
		Compiler:      dotnet.Crossgen{Runner: runner, Path: cfg.Tools.Crossgen},
	})
	if err != nil {
		return err
	}

	slog.Info("publishing", "framework", cfg.Framework, "version", cfg.Version, "rid", p.Descriptor().RID, "commit", cfg.Commit)

	bundle, err := p.Publish(ctx, cfg.Output, cfg.Commit, dotnet.CLI{Runner: runner, Path: cfg.Tools.Dotnet})
	if err != nil {
		return err
	}

	fmt.Println(bundle.Path)
	return nil
}

// Loads the configuration file and applies the command's flags over it.
func (c *PublishCmd) config(path string) (config.Config, error) {
	cfg, err := config.Resolve(path)
	if err != nil {
		return cfg, err
	}

	override(&cfg.Output, c.Output)
	override(&cfg.Commit, c.Commit)
	override(&cfg.Framework, c.Framework)
	override(&cfg.Version, c.FrameworkVersion)
	override(&cfg.Platform, c.Platform)
	override(&cfg.RepoRoot, c.RepoRoot)
	override(&cfg.Template, c.Template)
	override(&cfg.PackageSource, c.PackageSource)
	override(&cfg.Host.Locked, c.HostLocked)
	override(&cfg.Host.Latest, c.HostLatest)
	override(&cfg.Tools.Dotnet, c.Dotnet)
	override(&cfg.Tools.Crossgen, c.Crossgen)

	cfg.ApplyDefaults()
	return cfg, cfg.Validate()
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// Returns where external tool output is streamed, or nil to only capture it.
func toolStream() io.Writer {
	if internal.IsVerbose() {
		return os.Stderr
	}
	return nil
}

// Returns the commit checked out in repo.
func headCommit(ctx context.Context, runner command.Runner, repo string) (string, error) {
	result, err := runner.Run(ctx, command.Cmd{
		Path: "git",
		Args: []string{"rev-parse", "HEAD"},
		Dir:  repo,
	})
	if err != nil {
		return "", fmt.Errorf("resolving commit: %w", err)
	}
	if err := result.Check("git rev-parse HEAD"); err != nil {
		return "", fmt.Errorf("resolving commit: %w", err)
	}
	return strings.TrimSpace(result.Stdout), nil
}
