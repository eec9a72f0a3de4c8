package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"jtui/internal/adapters/jira"
	"jtui/internal/adapters/term"
	"jtui/internal/config"
	"jtui/internal/logging"
	"jtui/internal/services"
	"jtui/internal/ui"
)

// teaHandler creates a fresh Bubble Tea model for each SSH session.
// Every session gets its own runner, services and pty host, so two
// clients can never share a terminal session.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	settings := s.settings
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

	errorClearDelay := 10 * time.Second
	if settings.ErrorClearDelay != nil {
		errorClearDelay = time.Duration(*settings.ErrorClearDelay) * time.Second
	}

	runner := jira.NewExecRunner(binary)

	model := ui.NewModel(ui.ModelParams{
		Binary:          binary,
		ErrorClearDelay: errorClearDelay,
		Host:            term.NewHost(),
		Issues:          services.NewIssueService(runner, timeout, limit),
		KeyMap:          ui.NewKeyMap(settings.Keys),
		Status:          services.NewStatusMonitor(runner, timeout),
	})

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}
