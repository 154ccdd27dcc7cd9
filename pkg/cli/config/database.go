package config

import (
	"context"

	"github.com/m-mizutani/devmemory/pkg/domain/interfaces"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/devmemory/pkg/infra/db"
	"github.com/urfave/cli/v3"
)

// Database holds decision store configuration
type Database struct {
	Path string
}

// Flags returns CLI flags for database configuration
func (c *Database) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "db",
			Usage:       "Path to the SQLite decision database",
			Value:       types.DefaultDatabase,
			Destination: &c.Path,
			Sources:     cli.EnvVars("DEVMEMORY_DB"),
		},
	}
}

// Open opens the decision store, creating the database and schema if needed
func (c *Database) Open(ctx context.Context) (interfaces.DecisionRepository, error) {
	return db.New(ctx, c.Path)
}
