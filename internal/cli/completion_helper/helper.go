package completion_helper

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// DefaultFlagComplete prints every flag of the current command, so flags are
// offered even where the urfave/cli default completion prints nothing.
func DefaultFlagComplete(_ context.Context, cmd *cli.Command) {
	out := cmd.Root().Writer
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			if len(name) == 1 {
				fmt.Fprintln(out, "-"+name)
			} else {
				fmt.Fprintln(out, "--"+name)
			}
		}
	}
}
