package host

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"

	"github.com/cruciblehq/sharedfx/internal/fsutil"
)

// Directories artifacts are read from.
type Dirs struct {
	Locked string // Pinned host build output.
	Latest string // Host build output that tracks the framework.
}

// Returns the directory for a source.
func (d Dirs) dir(s Source) string {
	if s == Latest {
		return d.Latest
	}
	return d.Locked
}

// Result of copying one artifact.
type Copied struct {
	Artifact
	Path   string        // Destination path.
	Digest digest.Digest // Digest of the copied content.
}

// Copies every artifact in set into dest, overwriting existing files.
//
// Copies run in set order and stop at the first failure. Each destination
// is re-read and verified against the digest of the bytes read from the
// source.
func Copy(set ArtifactSet, dirs Dirs, dest string) ([]Copied, error) {
	copied := make([]Copied, 0, len(set))

	for _, a := range set {
		c, err := copyArtifact(a, dirs.dir(a.Source), dest)
		if err != nil {
			return copied, err
		}

		slog.Debug("copied host artifact", "name", a.Target, "source", a.Source.String(), "digest", c.Digest.String())
		copied = append(copied, c)
	}

	return copied, nil
}

// Copies a single artifact and verifies the destination content.
func copyArtifact(a Artifact, srcDir, dest string) (Copied, error) {
	src := filepath.Join(srcDir, a.Name)
	target := filepath.Join(dest, a.Target)

	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Copied{}, fmt.Errorf("%w: %s (%s)", ErrArtifactNotFound, src, a.Source)
		}
		return Copied{}, fmt.Errorf("%w: %w", ErrCopy, err)
	}

	digester := digest.Canonical.Digester()
	if err := fsutil.CopyFileTo(src, target, digester.Hash()); err != nil {
		return Copied{}, fmt.Errorf("%w: %w", ErrCopy, err)
	}
	d := digester.Digest()

	if err := verify(target, d); err != nil {
		return Copied{}, err
	}

	return Copied{Artifact: a, Path: target, Digest: d}, nil
}

// Checks that the file at path has digest d.
func verify(path string, d digest.Digest) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopy, err)
	}
	defer f.Close()

	v := d.Verifier()
	if _, err := io.Copy(v, f); err != nil {
		return fmt.Errorf("%w: %w", ErrCopy, err)
	}
	if !v.Verified() {
		return fmt.Errorf("%w: %s, want %s", ErrDigestMismatch, path, d)
	}
	return nil
}
