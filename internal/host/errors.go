package host

import (
	"errors"

	"github.com/containerd/errdefs"
)

var (
	ErrCopy             = errors.New("host artifact copy failed")
	ErrArtifactNotFound = errdefs.ErrNotFound.WithMessage("host artifact not found")
	ErrDigestMismatch   = errors.New("host artifact digest mismatch")
)
