package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cruciblehq/sharedfx/internal"
)

// Represents the 'sharedfx version' command.
type VersionCmd struct {
	Short bool `short:"s" help:"Print only the version number."`

	out io.Writer `kong:"-"`
}

// Prints the build description, or the bare version with --short.
func (c *VersionCmd) Run(ctx context.Context) error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	if c.Short {
		_, err := fmt.Fprintln(out, internal.Version())
		return err
	}
	_, err := fmt.Fprintln(out, internal.VersionString())
	return err
}
