package platform

import (
	"errors"

	"github.com/containerd/errdefs"
)

var (
	ErrUnsupportedPlatform = errdefs.ErrNotImplemented.WithMessage("unsupported platform")
	ErrUnmappedFamily      = errdefs.ErrInvalidArgument.WithMessage("no runtime graph family for platform")
	ErrInvalidSpecifier    = errors.New("invalid platform specifier")
)
