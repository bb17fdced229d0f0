package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"

	"github.com/cruciblehq/sharedfx/internal/paths"
	"github.com/cruciblehq/sharedfx/internal/platform"
	"github.com/cruciblehq/sharedfx/internal/publish"
)

// Configuration file looked up in the working directory when none is named.
const DefaultFile = "sharedfx.toml"

// Publish settings.
type Config struct {
	Framework     string `toml:"framework"`      // Framework name.
	Version       string `toml:"version"`        // Semantic version of the framework.
	Commit        string `toml:"commit"`         // Commit hash recorded in the bundle.
	RepoRoot      string `toml:"repo_root"`      // Repository root.
	Template      string `toml:"template"`       // Project template tree.
	Intermediate  string `toml:"intermediate"`   // Scratch root.
	Output        string `toml:"output"`         // Output root the bundle is placed under.
	PackageSource string `toml:"package_source"` // Fallback package source for restore.
	Platform      string `toml:"platform"`       // "os/arch" target override. Empty targets the host.
	Host          Host   `toml:"host"`
	Tools         Tools  `toml:"tools"`
}

// Host build locations.
type Host struct {
	Locked string `toml:"locked"` // Pinned host build output.
	Latest string `toml:"latest"` // Host build output tracking the framework.
}

// External tool locations.
type Tools struct {
	Dotnet   string `toml:"dotnet"`   // dotnet executable.
	Crossgen string `toml:"crossgen"` // crossgen executable.
	Output   string `toml:"output"`   // Root tools are published under.
}

// Returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Framework: publish.DefaultFramework,
		RepoRoot:  ".",
		Output:    "artifacts",
		Tools: Tools{
			Dotnet: "dotnet",
		},
	}
}

// Reads the TOML file at path over the defaults.
//
// Keys the file sets replace the defaults; keys it omits keep them. Unknown
// keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("%w: %s: unknown keys: %s", ErrInvalidConfig, path, unknownKeys(strict))
		}
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// Lists the dotted keys of a strict decoding failure.
func unknownKeys(err *toml.StrictMissingError) string {
	keys := make([]string, len(err.Errors))
	for i, e := range err.Errors {
		keys[i] = strings.Join(e.Key(), ".")
	}
	return strings.Join(keys, ", ")
}

// Loads path if set, otherwise [DefaultFile] if it exists in the working
// directory, otherwise returns [Default].
func Resolve(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultFile); err != nil {
		return Default(), nil
	}
	return Load(DefaultFile)
}

// Fills settings whose defaults depend on other settings.
func (c *Config) ApplyDefaults() {
	if c.Framework == "" {
		c.Framework = Default().Framework
	}
	if c.RepoRoot == "" {
		c.RepoRoot = Default().RepoRoot
	}
	if c.Template == "" {
		c.Template = publish.DefaultTemplate(c.RepoRoot)
	}
	if c.Intermediate == "" {
		c.Intermediate = paths.Intermediate()
	}
	if c.Output == "" {
		c.Output = Default().Output
	}
	if c.Tools.Dotnet == "" {
		c.Tools.Dotnet = Default().Tools.Dotnet
	}
	if c.Tools.Output == "" {
		c.Tools.Output = paths.Tools()
	}
}

// Reports every problem with the configuration at once.
func (c Config) Validate() error {
	var problems []error

	if c.Version == "" {
		problems = append(problems, errors.New("version is required"))
	} else if _, err := semver.StrictNewVersion(c.Version); err != nil {
		problems = append(problems, fmt.Errorf("version %q: %w", c.Version, err))
	}

	required := []struct {
		key   string
		value string
	}{
		{"framework", c.Framework},
		{"repo_root", c.RepoRoot},
		{"output", c.Output},
		{"package_source", c.PackageSource},
		{"host.locked", c.Host.Locked},
		{"host.latest", c.Host.Latest},
		{"tools.dotnet", c.Tools.Dotnet},
		{"tools.crossgen", c.Tools.Crossgen},
	}
	for _, r := range required {
		if r.value == "" {
			problems = append(problems, fmt.Errorf("%s is required", r.key))
		}
	}

	if c.Platform != "" {
		if _, err := platform.FromSpecifier(c.Platform); err != nil {
			problems = append(problems, err)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
}
