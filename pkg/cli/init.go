package cli

import (
	"context"

	"github.com/m-mizutani/devmemory/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdInit(g *globals) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create the decision database and project configuration file",
		Action: func(ctx context.Context, c *cli.Command) error {
			p := g.printer(g.stdout)

			defaults := config.DefaultProjectFile()
			if c.IsSet("db") {
				defaults.Database = g.db.Path
			}
			if c.IsSet("repo") {
				defaults.Repository = g.repo.Path
			}

			created, err := g.project.Write(defaults)
			if err != nil {
				return err
			}
			if created {
				p.Info("Wrote %s", g.project.Path)
			} else {
				p.Notice("%s already exists, leaving it unchanged", g.project.Path)
			}

			repo, _, err := g.openStore(ctx, c)
			if err != nil {
				return err
			}
			defer closeStore(ctx, repo)

			p.Success("DevMemory initialized (database: %s)", g.db.Path)
			return nil
		},
	}
}
