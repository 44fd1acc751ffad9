package config

import (
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr      string
	EnableRun bool
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("TECHFLOW_ADDR"),
			Destination: &s.Addr,
		},
		&cli.BoolFlag{
			Name:        "enable-run",
			Usage:       "Allow POST /api/reports to run the report on demand",
			Sources:     cli.EnvVars("TECHFLOW_ENABLE_RUN"),
			Destination: &s.EnableRun,
		},
	}
}
