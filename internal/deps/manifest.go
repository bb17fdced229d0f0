package deps

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/cruciblehq/sharedfx/internal/jsondoc"
)

// Suffix of dependency manifest files.
const Suffix = ".deps.json"

// Returns the manifest file name for a project or framework name.
func FileName(name string) string {
	return name + Suffix
}

// Deletes the build outputs of the published project from dir.
//
// The project's executable, assembly, symbols and runtime configuration are
// application artifacts that have no place in a framework bundle. Files
// that do not exist are skipped.
func CleanPublishOutput(dir, name, exeSuffix string) error {
	for _, file := range []string{
		name + exeSuffix,
		name + ".dll",
		name + ".pdb",
		name + ".runtimeconfig.json",
		name + ".runtimeconfig.dev.json",
	} {
		err := os.Remove(filepath.Join(dir, file))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("%w: %w", ErrManifest, err)
		}
	}
	return nil
}

// Moves the manifest for project from to the manifest for to, within dir,
// and returns the new path.
func Rename(dir, from, to string) (string, error) {
	src := filepath.Join(dir, FileName(from))
	dest := filepath.Join(dir, FileName(to))

	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrManifestNotFound, src)
		}
		return "", fmt.Errorf("%w: %w", ErrManifest, err)
	}

	if err := os.Rename(src, dest); err != nil {
		return "", fmt.Errorf("%w: %w", ErrManifest, err)
	}

	return dest, nil
}

// Removes the entry-point library from the manifest at path and returns its
// library key (e.g., "framework/1.0.0"), or "" when the manifest has none.
//
// The entry point is the first library of the first target. It is removed
// from every target and from the libraries section. The manifest is
// rewritten only if something was removed.
func ClearEntryPoint(path string) (string, error) {
	doc, err := load(path)
	if err != nil {
		return "", err
	}

	targets := jsondoc.Keys(doc, "targets")
	if len(targets) == 0 {
		return "", nil
	}

	libs := jsondoc.Keys(doc, jsondoc.Path("targets", targets[0]))
	if len(libs) == 0 {
		return "", nil
	}
	entry := libs[0]

	for _, target := range targets {
		doc, err = jsondoc.Delete(doc, jsondoc.Path("targets", target, entry))
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrManifest, err)
		}
	}

	doc, err = jsondoc.Delete(doc, jsondoc.Path("libraries", entry))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrManifest, err)
	}

	if err := jsondoc.Save(path, doc); err != nil {
		return "", fmt.Errorf("%w: %w", ErrManifest, err)
	}

	slog.Debug("removed entry point", "library", entry, "manifest", path)
	return entry, nil
}

// Returns the name of the project library recorded in the manifest, or ""
// when it records none.
//
// A project library is a libraries entry of type "project"; publish
// records exactly one, the application's entry point.
func EntryPoint(path string) (string, error) {
	doc, err := load(path)
	if err != nil {
		return "", err
	}

	var name string
	gjson.GetBytes(doc, "libraries").ForEach(func(key, value gjson.Result) bool {
		if value.Get("type").String() == "project" {
			name, _, _ = strings.Cut(key.String(), "/")
			return false
		}
		return true
	})
	return name, nil
}

// Returns the runtime fallback graph of the manifest at path: each rid mapped
// to the rids that can substitute for it, most specific first. A manifest
// without a graph yields an empty map.
func Runtimes(path string) (map[string][]string, error) {
	doc, err := load(path)
	if err != nil {
		return nil, err
	}

	graph := make(map[string][]string)
	gjson.GetBytes(doc, "runtimes").ForEach(func(key, value gjson.Result) bool {
		var fallbacks []string
		for _, rid := range value.Array() {
			fallbacks = append(fallbacks, rid.String())
		}
		graph[key.String()] = fallbacks
		return true
	})
	return graph, nil
}

// Returns the version of the named library in the manifest, or "" when the
// manifest does not list it.
func LibraryVersion(path, name string) (string, error) {
	doc, err := load(path)
	if err != nil {
		return "", err
	}

	for _, key := range jsondoc.Keys(doc, "libraries") {
		if lib, version, ok := strings.Cut(key, "/"); ok && lib == name {
			return version, nil
		}
	}
	return "", nil
}

// Reads and validates the manifest at path.
func load(path string) ([]byte, error) {
	doc, err := jsondoc.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	return doc, nil
}
