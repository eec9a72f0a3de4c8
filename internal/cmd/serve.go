package cmd

import (
	"jtui/internal/server"
)

// ServeCmd serves the TUI over SSH
type ServeCmd struct {
	Host string `help:"Host to bind the SSH server to" default:"localhost"`
	Port string `help:"Port to bind the SSH server to" default:"2223"`
}

// Run starts the SSH server and blocks until shutdown
func (s *ServeCmd) Run(cli *CLI) error {
	srv, err := server.NewServer(s.Host, s.Port, cli.settings)
	if err != nil {
		return err
	}
	return srv.Start()
}
