package cli

import (
	"context"
	"io"

	"github.com/m-mizutani/devmemory/pkg/domain/interfaces"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/devmemory/pkg/usecase"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
)

func cmdAnalyze(g *globals) *cli.Command {
	var force bool

	return &cli.Command{
		Name:  "analyze",
		Usage: "Classify recent commits and store the decisions found",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "days",
				Aliases: []string{"d"},
				Usage:   "Number of days of history to analyze",
				Value:   types.DefaultDays,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "Re-analyze commits that were already processed",
				Destination: &force,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, file, err := g.openStore(ctx, c)
			if err != nil {
				return err
			}
			defer closeStore(ctx, repo)

			source, err := g.repo.Source()
			if err != nil {
				return err
			}

			days := intFlag(c, "days", file.DefaultDays)
			p := g.printer(g.stdout)
			p.Info("Analyzing commits from the last %d days...", days)

			bar := newProgress(g.stderr)
			result, err := usecase.NewAnalyze(source, repo).Analyze(ctx, interfaces.AnalyzeOptions{
				Days:     days,
				Force:    force,
				Progress: bar.report,
			})
			bar.finish()
			if err != nil {
				return err
			}

			p.AnalysisResult(result)
			return nil
		},
	}
}

// progress draws a progress bar once the commit count is known
type progress struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newProgress(w io.Writer) *progress {
	return &progress{w: w}
}

func (p *progress) report(done, total int) {
	if total == 0 {
		return
	}
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.w),
			progressbar.OptionSetDescription("Processing commits"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	_ = p.bar.Set(done)
}

func (p *progress) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
