package project

import (
	"errors"

	"github.com/containerd/errdefs"
)

var (
	ErrMaterialize      = errors.New("project materialization failed")
	ErrInvalidProject   = errors.New("invalid project descriptor")
	ErrTemplateNotFound = errdefs.ErrNotFound.WithMessage("project template not found")
)
