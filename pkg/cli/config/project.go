package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// ProjectFile is the content of .devmemory.toml. Zero values mean "not configured".
type ProjectFile struct {
	Database    string `toml:"database,omitempty"`
	Repository  string `toml:"repository,omitempty"`
	DefaultDays int    `toml:"default_days,omitempty"`
	ListLimit   int    `toml:"list_limit,omitempty"`
}

// DefaultProjectFile returns the settings init writes
func DefaultProjectFile() *ProjectFile {
	return &ProjectFile{
		Database:    types.DefaultDatabase,
		Repository:  ".",
		DefaultDays: types.DefaultDays,
		ListLimit:   types.DefaultListLimit,
	}
}

// Project holds the location of the project file
type Project struct {
	Path string
}

// Flags returns CLI flags for project file configuration
func (c *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to the project configuration file",
			Value:       types.DefaultConfigFile,
			Destination: &c.Path,
			Sources:     cli.EnvVars("DEVMEMORY_CONFIG"),
		},
	}
}

// Load reads the project file. A missing file yields empty settings.
func (c *Project) Load() (*ProjectFile, error) {
	raw, err := os.ReadFile(c.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ProjectFile{}, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read project file", goerr.V("path", c.Path))
	}

	var file ProjectFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse project file",
			goerr.V("path", c.Path),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}
	if file.DefaultDays < 0 || file.ListLimit < 0 {
		return nil, goerr.New("project file values must not be negative",
			goerr.V("path", c.Path),
			goerr.V("default_days", file.DefaultDays),
			goerr.V("list_limit", file.ListLimit),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}
	return &file, nil
}

// Write creates the project file. It returns false without touching anything when the file exists.
func (c *Project) Write(file *ProjectFile) (bool, error) {
	if _, err := os.Stat(c.Path); err == nil {
		return false, nil
	}

	raw, err := toml.Marshal(file)
	if err != nil {
		return false, goerr.Wrap(err, "failed to encode project file")
	}
	if err := os.WriteFile(c.Path, raw, 0o644); err != nil {
		return false, goerr.Wrap(err, "failed to write project file", goerr.V("path", c.Path))
	}
	return true, nil
}
