package dotnet

import (
	"context"
	"debug/pe"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cruciblehq/sharedfx/internal/command"
)

// Suffix of crossgen output files before they replace the IL assembly.
const readyToRunSuffix = ".readytorun"

// Index of the CLR runtime header in the PE data directory.
const comDescriptorIndex = 14

// Assemblies that ship precompiled and are never passed to crossgen.
var excluded = map[string]struct{}{
	"mscorlib.dll":                  {},
	"mscorlib.ni.dll":               {},
	"System.Private.CoreLib.dll":    {},
	"System.Private.CoreLib.ni.dll": {},
}

// The crossgen ahead-of-time compiler.
type Crossgen struct {
	Runner command.Runner // Executes the compiler.
	Path   string         // Path to the crossgen executable.

	isManaged func(path string) bool // Overrides [HasMetadata] in tests.
}

// Compiles every managed assembly directly inside dir to ready-to-run code,
// replacing each IL file with its compiled form.
//
// platformDir holds the platform assemblies the compiler resolves
// references against. Native libraries and excluded assemblies are skipped.
// The first failure aborts; assemblies compiled before it stay compiled.
func (c Crossgen) CompileDirectory(ctx context.Context, platformDir, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCompile, err)
	}

	isManaged := c.isManaged
	if isManaged == nil {
		isManaged = HasMetadata
	}

	compiled := 0
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || !strings.EqualFold(filepath.Ext(name), ".dll") {
			continue
		}
		if _, skip := excluded[name]; skip {
			continue
		}

		path := filepath.Join(dir, name)
		if !isManaged(path) {
			slog.Debug("skipping native library", "file", name)
			continue
		}

		if err := c.compile(ctx, platformDir, path); err != nil {
			return err
		}
		compiled++
	}

	slog.Info("crossgen complete", "dir", dir, "assemblies", compiled)
	return nil
}

// Compiles one assembly and moves the result over the original.
func (c Crossgen) compile(ctx context.Context, platformDir, path string) error {
	out := path + readyToRunSuffix

	slog.Debug("crossgen", "assembly", filepath.Base(path))

	result, err := c.Runner.Run(ctx, command.Cmd{
		Path: c.Path,
		Args: []string{
			"-readytorun",
			"-in", path,
			"-out", out,
			"-platform_assemblies_paths", platformDir,
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCompile, err)
	}
	if err := result.Check("crossgen " + filepath.Base(path)); err != nil {
		return fmt.Errorf("%w: %w", ErrCompile, err)
	}

	if err := os.Rename(out, path); err != nil {
		return fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return nil
}

// Reports whether the file at path is a PE image carrying CLR metadata.
//
// Files that cannot be read or are not PE images report false.
func HasMetadata(path string) bool {
	f, err := pe.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var dirs []pe.DataDirectory
	switch h := f.OptionalHeader.(type) {
	case *pe.OptionalHeader32:
		dirs = h.DataDirectory[:min(int(h.NumberOfRvaAndSizes), len(h.DataDirectory))]
	case *pe.OptionalHeader64:
		dirs = h.DataDirectory[:min(int(h.NumberOfRvaAndSizes), len(h.DataDirectory))]
	}

	if len(dirs) <= comDescriptorIndex {
		return false
	}
	d := dirs[comDescriptorIndex]
	return d.VirtualAddress != 0 && d.Size != 0
}
