package fsutil

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cruciblehq/sharedfx/internal/paths"
)

// Returns whether a file or directory exists at path.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
}

// Deletes path and everything under it. A missing path is not an error.
func RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	return nil
}

// Deletes the directory at path, if any, and recreates it empty.
//
// The result never contains entries left over from before the call.
func ResetDir(path string) error {
	if err := RemoveAll(path); err != nil {
		return err
	}
	if err := os.MkdirAll(path, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	return nil
}

// Copies the directory tree at src into dest, overwriting existing files.
//
// Directories are created as needed. Symlinks are recreated as links rather
// than followed. File modes are preserved.
func CopyDir(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		return copyEntry(path, target, d)
	})
	if err != nil {
		return fmt.Errorf("%w: copy %s to %s: %w", ErrFileSystemOperation, src, dest, err)
	}
	return nil
}

// Copies a single directory entry to target.
func copyEntry(path, target string, d fs.DirEntry) error {
	switch {
	case d.IsDir():
		return os.MkdirAll(target, paths.DefaultDirMode)

	case d.Type()&fs.ModeSymlink != 0:
		link, err := os.Readlink(path)
		if err != nil {
			return err
		}
		if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
			return err
		}
		return os.Symlink(link, target)

	case d.Type().IsRegular():
		info, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(path, target, info.Mode().Perm(), nil)
	}

	return nil
}

// Copies the file at src to dest, replacing dest if it exists.
//
// The destination keeps the source's permission bits. The parent directory
// of dest must exist.
func CopyFile(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	if err := copyFile(src, dest, info.Mode().Perm(), nil); err != nil {
		return fmt.Errorf("%w: copy %s to %s: %w", ErrFileSystemOperation, src, dest, err)
	}
	return nil
}

// Copies the file at src to dest, additionally writing its content to w when
// w is non-nil.
//
// Used by callers that hash the content while it is copied.
func CopyFileTo(src, dest string, w io.Writer) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	if err := copyFile(src, dest, info.Mode().Perm(), w); err != nil {
		return fmt.Errorf("%w: copy %s to %s: %w", ErrFileSystemOperation, src, dest, err)
	}
	return nil
}

func copyFile(src, dest string, mode os.FileMode, w io.Writer) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	var dst io.Writer = out
	if w != nil {
		dst = io.MultiWriter(out, w)
	}

	if _, err := io.Copy(dst, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// OpenFile only applies mode to new files.
	return os.Chmod(dest, mode)
}
