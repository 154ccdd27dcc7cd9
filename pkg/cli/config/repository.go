package config

import (
	"github.com/m-mizutani/devmemory/pkg/domain/interfaces"
	"github.com/m-mizutani/devmemory/pkg/infra/git"
	"github.com/urfave/cli/v3"
)

// Repository holds the location of the git repository to analyze
type Repository struct {
	Path string
}

// Flags returns CLI flags for repository configuration
func (c *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Path inside the git repository to analyze",
			Value:       ".",
			Destination: &c.Path,
			Sources:     cli.EnvVars("DEVMEMORY_REPO"),
		},
	}
}

// Source opens the repository as a commit source
func (c *Repository) Source() (interfaces.CommitSource, error) {
	return git.NewSource(c.Path)
}
