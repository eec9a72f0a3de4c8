package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jtui/internal/config"
	"jtui/internal/logging"
	"jtui/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool `help:"Enable development mode (shows version info in headers)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	errorClearDelay := r.ErrorClearDelay
	var keysConfig config.KeyBindingsConfig

	if cli.settings != nil {
		if r.ErrorClearDelay == 10 && cli.settings.ErrorClearDelay != nil {
			errorClearDelay = *cli.settings.ErrorClearDelay
		}

		if err := cli.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings: %w", err)
		}
		keysConfig = cli.settings.Keys
	}

	logging.Logger.Info("Starting TUI",
		"binary", cli.Container.Binary,
		"timeout", cli.Container.Timeout.String())

	model := ui.NewModel(ui.ModelParams{
		Binary:          cli.Container.Binary,
		DevMode:         r.Dev,
		ErrorClearDelay: time.Duration(errorClearDelay) * time.Second,
		Host:            cli.Container.Host,
		Issues:          cli.Container.Issues,
		KeyMap:          ui.NewKeyMap(keysConfig),
		Status:          cli.Container.Status,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
