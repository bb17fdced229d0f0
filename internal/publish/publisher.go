package publish

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cruciblehq/sharedfx/internal/command"
	"github.com/cruciblehq/sharedfx/internal/deps"
	"github.com/cruciblehq/sharedfx/internal/fsutil"
	"github.com/cruciblehq/sharedfx/internal/host"
	"github.com/cruciblehq/sharedfx/internal/platform"
)

// Restores and publishes projects.
type BuildTool interface {

	// Restores the packages of the project in dir.
	Restore(ctx context.Context, dir string, args ...string) (*command.Result, error)

	// Publishes a project. The project path is part of args.
	Publish(ctx context.Context, args ...string) (*command.Result, error)
}

// Compiles assemblies ahead of time.
type Compiler interface {

	// Compiles the managed assemblies in dir in place, resolving platform
	// references against platformDir.
	CompileDirectory(ctx context.Context, platformDir, dir string) error
}

// Configures a [Publisher].
type Options struct {
	Framework     string         // Framework name. Defaults to [DefaultFramework].
	Version       string         // Semantic version of the framework.
	Host          platform.Host  // Target platform.
	RepoRoot      string         // Repository root.
	Template      string         // Template tree. Defaults to [DefaultTemplate].
	Intermediate  string         // Scratch root for the materialized project.
	PackageSource string         // Fallback package source for restore.
	HostDirs      host.Dirs      // Locked and latest host build outputs.
	ToolsOutput   string         // Root the generator tool is published under.
	Runner        command.Runner // Runs the runtime graph generator.
	Compiler      Compiler       // Ahead-of-time compiler.
}

// Publishes one shared framework for one rid.
type Publisher struct {
	desc     Descriptor
	host     platform.Host
	source   string
	hostDirs host.Dirs
	tools    string
	runner   command.Runner
	compiler Compiler
}

// Result of a successful run.
type Bundle struct {
	Path          string        // Bundle directory.
	Manifest      string        // Dependency manifest inside the bundle.
	HostArtifacts []host.Copied // Host files copied into the bundle.
}

// State shared by the steps of one run.
type run struct {
	tool     BuildTool
	commit   string
	bundle   Bundle
	manifest string
}

// A named publish step.
type step struct {
	name string
	fn   func(ctx context.Context, r *run) error
}

// Resolves the target rid and materializes the framework project.
//
// An unsupported platform or an invalid version fails here, before any
// external tool runs.
func New(opts Options) (*Publisher, error) {
	desc, err := newDescriptor(opts)
	if err != nil {
		return nil, err
	}

	slog.Info("framework project materialized", "framework", desc.Name, "version", desc.Version, "rid", desc.RID, "dir", desc.ProjectDir)

	return &Publisher{
		desc:     desc,
		host:     opts.Host,
		source:   opts.PackageSource,
		hostDirs: opts.HostDirs,
		tools:    opts.ToolsOutput,
		runner:   opts.Runner,
		compiler: opts.Compiler,
	}, nil
}

// Returns the descriptor of the framework being published.
func (p *Publisher) Descriptor() Descriptor {
	return p.desc
}

// Publishes the framework into <outputRoot>/shared/<name>/<version>.
//
// Steps run in order and the first failure is returned as a [*StepError].
// The bundle is only complete when the returned error is nil.
func (p *Publisher) Publish(ctx context.Context, outputRoot, commit string, tool BuildTool) (*Bundle, error) {
	r := &run{
		tool:   tool,
		commit: commit,
		bundle: Bundle{Path: p.desc.BundlePath(outputRoot)},
	}

	for _, s := range p.steps() {
		slog.Debug("publish step", "step", s.name, "bundle", r.bundle.Path)
		if err := s.fn(ctx, r); err != nil {
			return nil, &StepError{Step: s.name, Err: err}
		}
	}

	slog.Info("shared framework published", "bundle", r.bundle.Path)
	return &r.bundle, nil
}

// Returns the steps of a run, in execution order.
func (p *Publisher) steps() []step {
	return []step{
		{"restore", p.restore},
		{"reset", p.reset},
		{"publish", p.publish},
		{"clean", p.clean},
		{"rename-deps", p.renameDeps},
		{"entry-point", p.clearEntryPoint},
		{"runtime-graph", p.runtimeGraph},
		{"host-artifacts", p.copyHost},
		{"prune-il", p.pruneIL},
		{"crossgen", p.crossgen},
		{"stamp-version", p.stamp},
	}
}

func (p *Publisher) restore(ctx context.Context, r *run) error {
	return runTool("restore", func() (*command.Result, error) {
		return r.tool.Restore(ctx, p.desc.ProjectDir,
			"--verbosity", "verbose",
			"--disable-parallel",
			"--infer-runtimes",
			"--fallbacksource", p.source,
		)
	})
}

func (p *Publisher) reset(_ context.Context, r *run) error {
	if err := fsutil.RemoveAll(r.bundle.Path); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystem, err)
	}
	return nil
}

func (p *Publisher) publish(ctx context.Context, r *run) error {
	return runTool("publish", func() (*command.Result, error) {
		return r.tool.Publish(ctx,
			"--output", r.bundle.Path,
			"-r", p.desc.RID,
			p.desc.ProjectDir,
		)
	})
}

func (p *Publisher) clean(_ context.Context, r *run) error {
	if err := deps.CleanPublishOutput(r.bundle.Path, projectName, p.host.Family.ExeSuffix()); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystem, err)
	}
	return nil
}

func (p *Publisher) renameDeps(_ context.Context, r *run) error {
	manifest, err := deps.Rename(r.bundle.Path, projectName, p.desc.Name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystem, err)
	}
	r.manifest = manifest
	r.bundle.Manifest = manifest
	return nil
}

func (p *Publisher) clearEntryPoint(_ context.Context, r *run) error {
	removed, err := deps.ClearEntryPoint(r.manifest)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystem, err)
	}
	slog.Debug("entry point removed", "library", removed)
	return nil
}

func (p *Publisher) runtimeGraph(ctx context.Context, r *run) error {
	return p.generateGraph(ctx, r.tool, r.manifest)
}

func (p *Publisher) copyHost(_ context.Context, r *run) error {
	copied, err := host.Copy(host.ForFamily(p.host.Family), p.hostDirs, r.bundle.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystem, err)
	}
	r.bundle.HostArtifacts = copied
	return nil
}

// Publish places a native image of mscorlib in the bundle; the IL copy is
// redundant when it is there.
func (p *Publisher) pruneIL(_ context.Context, r *run) error {
	ok, err := fsutil.Exists(filepath.Join(r.bundle.Path, "mscorlib.ni.dll"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystem, err)
	}
	if !ok {
		return nil
	}

	err = os.Remove(filepath.Join(r.bundle.Path, "mscorlib.dll"))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %w", ErrFileSystem, err)
	}
	return nil
}

func (p *Publisher) crossgen(ctx context.Context, r *run) error {
	if err := p.compiler.CompileDirectory(ctx, r.bundle.Path, r.bundle.Path); err != nil {
		return fmt.Errorf("%w: %w", ErrExternalTool, err)
	}
	return nil
}

func (p *Publisher) stamp(_ context.Context, r *run) error {
	return Stamp(r.bundle.Path, r.commit, p.desc.Version)
}

// Runs a tool invocation and checks its result.
func runTool(desc string, fn func() (*command.Result, error)) error {
	result, err := fn()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExternalTool, err)
	}
	if err := result.Check(desc); err != nil {
		return fmt.Errorf("%w: %w", ErrExternalTool, err)
	}
	return nil
}
