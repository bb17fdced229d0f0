package fsutil

import "errors"

var (
	ErrFileSystemOperation = errors.New("file system operation failed")
	ErrNotDirectory        = errors.New("not a directory")
)
