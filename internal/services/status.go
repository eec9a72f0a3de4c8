package services

import (
	"context"
	"strings"
	"time"

	"jtui/internal/adapters/jira"
	"jtui/internal/domain"
	"jtui/internal/logging"
	"jtui/internal/ports"
)

// StatusMonitor checks external-tool availability and authentication with a
// single lightweight `jira me` invocation. It runs at startup and on
// explicit user request only; no other flow triggers it implicitly.
type StatusMonitor struct {
	runner  ports.CommandRunner
	timeout time.Duration
}

// NewStatusMonitor creates a StatusMonitor
func NewStatusMonitor(runner ports.CommandRunner, timeout time.Duration) *StatusMonitor {
	return &StatusMonitor{
		runner:  runner,
		timeout: timeout,
	}
}

// Check runs the identity query and classifies the outcome
func (m *StatusMonitor) Check(ctx context.Context) domain.AuthStatus {
	cmd := domain.NewExternalCommand("me").WithTimeout(m.timeout)

	result, err := m.runner.Run(ctx, cmd)
	status := Classify(result, err)

	logging.Logger.Info("Auth status checked", "state", status.State.String(), "detail", status.Detail)
	return status
}

// notConfiguredMarkers are stderr fragments jira-cli emits before `jira
// init` has been run
var notConfiguredMarkers = []string{
	"config file",
	"not configured",
	"jira init",
	"no configuration",
	"missing configuration",
}

// Classify maps a runner outcome onto an AuthStatus
func Classify(result domain.CommandResult, err error) domain.AuthStatus {
	now := time.Now()

	if err != nil {
		if domain.IsNotFound(err) {
			return domain.AuthStatus{State: domain.AuthNotInstalled, CheckedAt: now}
		}
		return domain.AuthStatus{State: domain.AuthError, Detail: err.Error(), CheckedAt: now}
	}

	if result.OK() {
		identity, perr := jira.ParseIdentity(result.Stdout)
		if perr != nil {
			return domain.AuthStatus{State: domain.AuthError, Detail: result.ErrorText(), CheckedAt: now}
		}
		return domain.AuthStatus{State: domain.AuthReady, Detail: identity, CheckedAt: now}
	}

	errText := result.ErrorText()
	lower := strings.ToLower(errText)
	for _, marker := range notConfiguredMarkers {
		if strings.Contains(lower, marker) {
			return domain.AuthStatus{State: domain.AuthNotConfigured, Detail: errText, CheckedAt: now}
		}
	}

	return domain.AuthStatus{State: domain.AuthError, Detail: errText, CheckedAt: now}
}
