package config

import "github.com/containerd/errdefs"

var (
	ErrInvalidConfig  = errdefs.ErrInvalidArgument.WithMessage("invalid configuration")
	ErrConfigNotFound = errdefs.ErrNotFound.WithMessage("configuration file not found")
)
