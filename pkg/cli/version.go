package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdVersion(g *globals) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version",
		Action: func(ctx context.Context, c *cli.Command) error {
			_, err := fmt.Fprintf(g.stdout, "devmemory %s\n", types.Version)
			return err
		},
	}
}
