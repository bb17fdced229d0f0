package deps

import (
	"errors"

	"github.com/containerd/errdefs"
)

var (
	ErrManifest         = errors.New("dependency manifest update failed")
	ErrManifestNotFound = errdefs.ErrNotFound.WithMessage("dependency manifest not found")
)
