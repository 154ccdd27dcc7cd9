package config

import (
	controller "github.com/m-mizutani/devmemory/pkg/controller/http"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       controller.DefaultAddr,
			Destination: &c.Addr,
			Sources:     cli.EnvVars("DEVMEMORY_ADDR"),
		},
	}
}
