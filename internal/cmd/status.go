package cmd

import (
	"context"
	"fmt"

	"jtui/internal/domain"
)

// StatusCmd checks jira-cli authentication without starting the TUI.
// Exits non-zero unless the CLI is installed, configured and authenticated.
type StatusCmd struct{}

// Run executes the status check
func (s *StatusCmd) Run(cli *CLI) error {
	status := cli.Container.Status.Check(context.Background())

	switch status.State {
	case domain.AuthReady:
		fmt.Printf("ready: authenticated as %s\n", status.Detail)
		return nil
	case domain.AuthNotConfigured:
		return fmt.Errorf("not configured: run '%s init' first", cli.Container.Binary)
	case domain.AuthNotInstalled:
		return fmt.Errorf("not installed: %s not found on PATH", cli.Container.Binary)
	default:
		return fmt.Errorf("check failed: %s", status.Detail)
	}
}
