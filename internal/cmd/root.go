package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"jtui/internal/config"
	"jtui/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run    RunCmd    `cmd:"" help:"Start the jtui TUI (default)" default:"1"`
	Status StatusCmd `cmd:"status" help:"Check jira-cli authentication status"`
	Issues IssuesCmd `cmd:"issues" help:"List issues without the TUI"`
	Keys   KeysCmd   `cmd:"keys" help:"Manage keyboard shortcuts"`
	Serve  ServeCmd  `cmd:"serve" help:"Serve the TUI over SSH"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings.
// Precedence is CLI flags > env vars > settings.json > defaults: a setting
// only applies when the flag is still at its default and no env var is set.
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("JTUI_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("JTUI_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Export the debug settings so hosted subprocesses append to the same
	// log file as the parent.
	if c.Debug || c.DebugFile != "" {
		os.Setenv("JTUI_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("JTUI_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("JTUI_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}
