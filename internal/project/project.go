package project

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/cruciblehq/sharedfx/internal/fsutil"
	"github.com/cruciblehq/sharedfx/internal/jsondoc"
)

const (

	// Descriptor file shipped in the template tree.
	TemplateFile = "project.json.template"

	// Descriptor file the build tool reads.
	ProjectFile = "project.json"
)

// Controls project materialization.
type Options struct {
	Template  string // Root of the template tree.
	Dir       string // Scratch directory to materialize into. Reset first.
	Framework string // Name of the framework dependency to pin.
	Version   string // Version the framework dependency is pinned to.
	RID       string // The only runtime the project targets.
}

// Materializes the template into opts.Dir and returns the directory.
//
// Any existing content of opts.Dir is deleted first. Every error is fatal;
// a partially written scratch directory is left behind on failure and is
// reset by the next run.
func Materialize(opts Options) (string, error) {
	if ok, err := fsutil.Exists(opts.Template); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMaterialize, err)
	} else if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, opts.Template)
	}

	slog.Debug("materializing project", "template", opts.Template, "dir", opts.Dir, "rid", opts.RID)

	if err := fsutil.ResetDir(opts.Dir); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMaterialize, err)
	}

	if err := fsutil.CopyDir(opts.Template, opts.Dir); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMaterialize, err)
	}

	templatePath := filepath.Join(opts.Dir, TemplateFile)
	doc, err := jsondoc.Load(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, templatePath)
		}
		return "", fmt.Errorf("%w: %w", ErrMaterialize, err)
	}

	doc, err = rewrite(doc, opts)
	if err != nil {
		return "", err
	}

	if err := jsondoc.Save(filepath.Join(opts.Dir, ProjectFile), doc); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMaterialize, err)
	}

	if err := os.Remove(templatePath); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMaterialize, err)
	}

	return opts.Dir, nil
}

// Pins the framework dependency and restricts the runtimes to opts.RID.
//
// The runtimes object is replaced, never merged: rids listed by the
// template are discarded.
func rewrite(doc []byte, opts Options) ([]byte, error) {
	if !gjson.GetBytes(doc, "dependencies").IsObject() {
		return nil, fmt.Errorf("%w: missing dependencies object", ErrInvalidProject)
	}

	doc, err := jsondoc.SetString(doc, jsondoc.Path("dependencies", opts.Framework), opts.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}

	doc, err = jsondoc.SetRaw(doc, jsondoc.Path("runtimes"), "{}")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}

	doc, err = jsondoc.SetRaw(doc, jsondoc.Path("runtimes", opts.RID), "{}")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}

	return doc, nil
}

// Returns the runtimes declared by the project.json in dir.
func Runtimes(dir string) ([]string, error) {
	doc, err := jsondoc.Load(filepath.Join(dir, ProjectFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}
	return jsondoc.Keys(doc, "runtimes"), nil
}

// Returns the version the project pins the named dependency to.
func DependencyVersion(dir, name string) (string, error) {
	doc, err := jsondoc.Load(filepath.Join(dir, ProjectFile))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}
	return gjson.GetBytes(doc, jsondoc.Path("dependencies", name)).String(), nil
}
