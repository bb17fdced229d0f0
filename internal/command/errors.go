package command

import "errors"

var (
	ErrCommandFailed = errors.New("command failed")
	ErrStart         = errors.New("command could not be started")
)
