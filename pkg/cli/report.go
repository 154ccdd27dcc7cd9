package cli

import (
	"context"

	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/devmemory/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdStats(g *globals) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show decision counts by type and author",
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, _, err := g.openStore(ctx, c)
			if err != nil {
				return err
			}
			defer closeStore(ctx, repo)

			stats, err := usecase.NewDecisions(repo).Statistics(ctx)
			if err != nil {
				return err
			}

			g.printer(g.stdout).Statistics(stats)
			return nil
		},
	}
}

func cmdRecent(g *globals) *cli.Command {
	return &cli.Command{
		Name:  "recent",
		Usage: "Show decisions from the last few days, newest first",
		Flags: []cli.Flag{daysFlag(types.DefaultRecentDays)},
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, _, err := g.openStore(ctx, c)
			if err != nil {
				return err
			}
			defer closeStore(ctx, repo)

			days := int(c.Int("days"))
			decisions, err := usecase.NewDecisions(repo).Recent(ctx, days)
			if err != nil {
				return err
			}

			p := g.printer(g.stdout)
			if len(decisions) == 0 {
				p.Notice("No decisions in the last %d days", days)
				return nil
			}
			p.Decisions("Recent Decisions", decisions)
			return nil
		},
	}
}

func cmdTimeline(g *globals) *cli.Command {
	return &cli.Command{
		Name:  "timeline",
		Usage: "Show decisions grouped by day, oldest first",
		Flags: []cli.Flag{daysFlag(types.DefaultTimelineDays)},
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, _, err := g.openStore(ctx, c)
			if err != nil {
				return err
			}
			defer closeStore(ctx, repo)

			days := int(c.Int("days"))
			decisions, err := usecase.NewDecisions(repo).Timeline(ctx, days)
			if err != nil {
				return err
			}

			g.printer(g.stdout).Timeline(days, decisions)
			return nil
		},
	}
}

func cmdSummary(g *globals) *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Show a project overview",
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, _, err := g.openStore(ctx, c)
			if err != nil {
				return err
			}
			defer closeStore(ctx, repo)

			summary, err := usecase.NewDecisions(repo).Summary(ctx)
			if err != nil {
				return err
			}

			g.printer(g.stdout).Summary(summary)
			return nil
		},
	}
}

func daysFlag(value int) cli.Flag {
	return &cli.IntFlag{
		Name:    "days",
		Aliases: []string{"d"},
		Usage:   "Number of days to look back",
		Value:   value,
	}
}
