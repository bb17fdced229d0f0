package cli

import (
	"context"
	"fmt"
)

// Represents the 'sharedfx rid' command.
type RidCmd struct {
	Platform string `help:"Platform as os/arch. Defaults to the running machine." placeholder:"OS/ARCH"`
}

// Prints the runtime identifier and runtime graph family of the platform.
//
// A platform without a runtime graph prints "-" as its family; publishing
// for it fails at the runtime-graph step.
func (c *RidCmd) Run(ctx context.Context) error {
	target, err := resolveHost(c.Platform)
	if err != nil {
		return err
	}

	rid, err := target.RID()
	if err != nil {
		return err
	}

	family, err := target.Family.GraphFamily()
	if err != nil {
		family = "-"
	}

	fmt.Printf("%s\t%s\n", rid, family)
	return nil
}
