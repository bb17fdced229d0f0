package publish

import (
	"fmt"
	"path/filepath"

	"github.com/Masterminds/semver/v3"

	"github.com/cruciblehq/sharedfx/internal/project"
)

const (

	// Framework published when none is configured.
	DefaultFramework = "Microsoft.NETCore.App"

	// Name of the project the template describes. The build tool names its
	// outputs after it.
	projectName = "framework"
)

// Identity and source locations of the framework being published.
type Descriptor struct {
	Name       string // Framework name (e.g., "Microsoft.NETCore.App").
	Version    string // Semantic version of the framework.
	RID        string // Runtime identifier the bundle targets.
	Template   string // Root of the project template tree.
	ProjectDir string // Materialized project directory.
	RepoRoot   string // Repository root, for locating tool sources.
}

// Returns the template location used when none is configured.
func DefaultTemplate(repoRoot string) string {
	return filepath.Join(repoRoot, "src", "sharedframework", projectName)
}

// Returns the directory the project is materialized into.
func projectDir(intermediate string) string {
	return filepath.Join(intermediate, "sharedFramework", projectName)
}

// Resolves the rid and materializes the project.
func newDescriptor(opts Options) (Descriptor, error) {
	name := opts.Framework
	if name == "" {
		name = DefaultFramework
	}

	if _, err := semver.StrictNewVersion(opts.Version); err != nil {
		return Descriptor{}, fmt.Errorf("%w: version %q: %w", ErrConfiguration, opts.Version, err)
	}

	rid, err := opts.Host.RID()
	if err != nil {
		return Descriptor{}, err
	}

	template := opts.Template
	if template == "" {
		template = DefaultTemplate(opts.RepoRoot)
	}

	dir, err := project.Materialize(project.Options{
		Template:  template,
		Dir:       projectDir(opts.Intermediate),
		Framework: name,
		Version:   opts.Version,
		RID:       rid,
	})
	if err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		Name:       name,
		Version:    opts.Version,
		RID:        rid,
		Template:   template,
		ProjectDir: dir,
		RepoRoot:   opts.RepoRoot,
	}, nil
}

// Returns the bundle directory under outputRoot.
func (d Descriptor) BundlePath(outputRoot string) string {
	return BundlePath(outputRoot, d.Name, d.Version)
}

// Returns <outputRoot>/shared/<name>/<version>.
func BundlePath(outputRoot, name, version string) string {
	return filepath.Join(outputRoot, "shared", name, version)
}
