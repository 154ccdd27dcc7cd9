package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/devmemory/pkg/cli/config"
	"github.com/m-mizutani/devmemory/pkg/domain/interfaces"
	"github.com/urfave/cli/v3"
)

// settings resolves the project file against flags. Values from .devmemory.toml apply only to flags
// that were not set on the command line or through the environment.
func (g *globals) settings(c *cli.Command) (*config.ProjectFile, error) {
	file, err := g.project.Load()
	if err != nil {
		return nil, err
	}

	if file.Database != "" && !c.IsSet("db") {
		g.db.Path = file.Database
	}
	if file.Repository != "" && !c.IsSet("repo") {
		g.repo.Path = file.Repository
	}
	return file, nil
}

// openStore opens the decision store for one command
func (g *globals) openStore(ctx context.Context, c *cli.Command) (interfaces.DecisionRepository, *config.ProjectFile, error) {
	file, err := g.settings(c)
	if err != nil {
		return nil, nil, err
	}

	ctxlog.From(ctx).Debug("Opening decision store", "path", g.db.Path)
	repo, err := g.db.Open(ctx)
	if err != nil {
		return nil, nil, err
	}
	return repo, file, nil
}

func closeStore(ctx context.Context, repo interfaces.DecisionRepository) {
	if err := repo.Close(); err != nil {
		ctxlog.From(ctx).Warn("Failed to close decision store", "error", err)
	}
}

// intFlag returns the flag value, or fallback when the flag was not set and fallback is positive
func intFlag(c *cli.Command, name string, fallback int) int {
	if !c.IsSet(name) && fallback > 0 {
		return fallback
	}
	return int(c.Int(name))
}
