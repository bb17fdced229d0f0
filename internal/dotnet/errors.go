package dotnet

import "errors"

var (
	ErrCompile = errors.New("ahead-of-time compilation failed")
)
