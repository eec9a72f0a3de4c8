package cmd

import (
	"time"

	"jtui/internal/adapters/jira"
	"jtui/internal/adapters/term"
	"jtui/internal/config"
	"jtui/internal/ports"
	"jtui/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Binary  string
	Host    ports.SessionHost
	Issues  *services.IssueService
	Runner  ports.CommandRunner
	Status  *services.StatusMonitor
	Timeout time.Duration
}

// NewContainer creates a Container with all dependencies wired from settings.
func NewContainer(settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	binary := settings.Binary
	if binary == "" {
		binary = config.DefaultBinary
	}

	timeoutSeconds := config.DefaultCommandTimeoutSeconds
	if settings.CommandTimeoutSeconds != nil && *settings.CommandTimeoutSeconds > 0 {
		timeoutSeconds = *settings.CommandTimeoutSeconds
	}
	timeout := time.Duration(timeoutSeconds) * time.Second

	limit := config.DefaultListLimit
	if settings.ListLimit != nil && *settings.ListLimit > 0 {
		limit = *settings.ListLimit
	}

	runner := jira.NewExecRunner(binary)

	return &Container{
		Binary:  binary,
		Host:    term.NewHost(),
		Issues:  services.NewIssueService(runner, timeout, limit),
		Runner:  runner,
		Status:  services.NewStatusMonitor(runner, timeout),
		Timeout: timeout,
	}, nil
}
