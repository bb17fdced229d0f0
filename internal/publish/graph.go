package publish

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/cruciblehq/sharedfx/internal/command"
	"github.com/cruciblehq/sharedfx/internal/deps"
	"github.com/cruciblehq/sharedfx/internal/platform"
)

// Name of the runtime graph generator project and executable.
const GeneratorName = "RuntimeGraphGenerator"

// Returns the generator's source project under the repository root.
func generatorProject(repoRoot string) string {
	return filepath.Join(repoRoot, "tools", GeneratorName)
}

// Returns the generator's publish directory under the tools root.
func generatorOutput(toolsOutput string) string {
	return filepath.Join(toolsOutput, GeneratorName)
}

// Returns the path of the published generator executable. The generator
// runs on the build machine, so the suffix follows the running OS.
func generatorExe(toolsOutput string) string {
	suffix := platform.ParseFamily(runtime.GOOS).ExeSuffix()
	return filepath.Join(generatorOutput(toolsOutput), GeneratorName+suffix)
}

// Publishes the runtime graph generator and runs it against the manifest.
//
// The target family is mapped first. A family without a runtime graph is a
// configuration error and no tool runs. After a successful run the manifest
// must still be valid and carry a runtimes section.
func (p *Publisher) generateGraph(ctx context.Context, tool BuildTool, manifest string) error {
	family, err := p.host.Family.GraphFamily()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	out := generatorOutput(p.tools)
	err = runTool("publish "+GeneratorName, func() (*command.Result, error) {
		return tool.Publish(ctx, "--output", out, generatorProject(p.desc.RepoRoot))
	})
	if err != nil {
		return err
	}

	exe := generatorExe(p.tools)
	err = runTool(GeneratorName, func() (*command.Result, error) {
		return p.runner.Run(ctx, command.Cmd{
			Path: exe,
			Args: []string{"--project", p.desc.ProjectDir, "--deps", manifest, family},
		})
	})
	if err != nil {
		return err
	}

	runtimes, err := deps.Runtimes(manifest)
	if err != nil {
		return fmt.Errorf("%w: %s left an unreadable manifest: %w", ErrExternalTool, GeneratorName, err)
	}
	if len(runtimes) == 0 {
		return fmt.Errorf("%w: %s wrote no runtimes to %s", ErrExternalTool, GeneratorName, manifest)
	}

	slog.Debug("runtime graph generated", "family", family, "runtimes", len(runtimes))
	return nil
}
