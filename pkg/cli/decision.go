package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/devmemory/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdList(g *globals) *cli.Command {
	var decisionType string

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List stored decisions, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of decisions to show",
				Value:   types.DefaultListLimit,
			},
			&cli.StringFlag{
				Name:        "type",
				Aliases:     []string{"t"},
				Usage:       "Only show decisions of this type",
				Destination: &decisionType,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, file, err := g.openStore(ctx, c)
			if err != nil {
				return err
			}
			defer closeStore(ctx, repo)

			limit := intFlag(c, "limit", file.ListLimit)
			decisions, err := usecase.NewDecisions(repo).List(ctx, limit, types.DecisionType(decisionType))
			if err != nil {
				return err
			}

			g.printer(g.stdout).Decisions("DevMemory Decisions", decisions)
			return nil
		},
	}
}

func cmdSearch(g *globals) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search decisions by title, summary or files",
		ArgsUsage: "<query>",
		Action: func(ctx context.Context, c *cli.Command) error {
			query := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(query) == "" {
				return goerr.New("search requires a query", goerr.T(types.ErrTagInvalidArgument))
			}

			repo, _, err := g.openStore(ctx, c)
			if err != nil {
				return err
			}
			defer closeStore(ctx, repo)

			decisions, err := usecase.NewDecisions(repo).Search(ctx, query)
			if err != nil {
				return err
			}

			g.printer(g.stdout).SearchResults(query, decisions)
			return nil
		},
	}
}

func cmdShow(g *globals) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one decision in detail",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("show requires exactly one decision id",
					goerr.V("args", c.Args().Slice()),
					goerr.T(types.ErrTagInvalidArgument),
				)
			}
			id, err := strconv.ParseInt(c.Args().First(), 10, 64)
			if err != nil {
				return goerr.Wrap(err, "decision id must be a number",
					goerr.V("id", c.Args().First()),
					goerr.T(types.ErrTagInvalidArgument),
				)
			}

			repo, _, err := g.openStore(ctx, c)
			if err != nil {
				return err
			}
			defer closeStore(ctx, repo)

			decision, err := usecase.NewDecisions(repo).Get(ctx, id)
			if err != nil {
				return err
			}

			p := g.printer(g.stdout)
			if decision == nil {
				p.Notice("Decision #%d not found", id)
				return nil
			}
			p.Decision(decision)
			return nil
		},
	}
}
