package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/devmemory/pkg/cli/config"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/devmemory/pkg/presenter"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	g := &globals{stdout: stdout, stderr: stderr}
	var logger *slog.Logger

	flags := g.logger.Flags()
	flags = append(flags, g.db.Flags()...)
	flags = append(flags, g.repo.Flags()...)
	flags = append(flags, g.project.Flags()...)
	flags = append(flags, g.sentry.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "no-color",
		Usage:       "Disable colored output",
		Destination: &g.noColor,
		Sources:     cli.EnvVars("DEVMEMORY_NO_COLOR"),
	})

	app := &cli.Command{
		Name:      "devmemory",
		Usage:     "Remember the technical decisions hidden in your git history",
		Version:   types.Version,
		Flags:     flags,
		Writer:    stdout,
		ErrWriter: stderr,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = g.logger.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			if err := g.sentry.Configure(); err != nil {
				return nil, err
			}
			logger.Debug("Configured",
				"db", g.db.Path,
				"repo", g.repo.Path,
				"config", g.project.Path,
				"sentry", g.sentry,
			)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdInit(g),
			cmdAnalyze(g),
			cmdList(g),
			cmdSearch(g),
			cmdShow(g),
			cmdStats(g),
			cmdRecent(g),
			cmdTimeline(g),
			cmdSummary(g),
			cmdExport(g),
			cmdServe(g),
			cmdVersion(g),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Debug("CLI execution failed", slog.Any("error", err))
		g.sentry.Report(err)
		g.printer(stderr).Error("Error: %s", err.Error())
		return err
	}

	return nil
}

// globals carries the root flags shared by every command
type globals struct {
	logger  config.Logger
	db      config.Database
	repo    config.Repository
	project config.Project
	sentry  config.Sentry
	noColor bool

	stdout io.Writer
	stderr io.Writer
}

func (g *globals) printer(w io.Writer) *presenter.Printer {
	if g.noColor {
		return presenter.New(w, presenter.WithColor(false))
	}
	return presenter.New(w)
}
