package publish

import (
	"errors"

	"github.com/containerd/errdefs"
)

var (
	ErrExternalTool  = errors.New("external tool failed")
	ErrConfiguration = errdefs.ErrInvalidArgument.WithMessage("invalid publish configuration")
	ErrFileSystem    = errors.New("file system operation failed")
)

// Failure of one publish step.
type StepError struct {
	Step string // Name of the step that failed.
	Err  error  // Cause.
}

func (e *StepError) Error() string {
	return "step " + e.Step + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}
