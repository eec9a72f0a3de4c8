package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jtui/internal/domain"
)

// fakeRunner returns canned results and records the commands it receives
type fakeRunner struct {
	commands []domain.ExternalCommand
	result   domain.CommandResult
	err      error
}

func (f *fakeRunner) Run(_ context.Context, cmd domain.ExternalCommand) (domain.CommandResult, error) {
	f.commands = append(f.commands, cmd)
	return f.result, f.err
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		result     domain.CommandResult
		err        error
		wantState  domain.AuthState
		wantDetail string
	}{
		{
			name:       "zero exit with identity is ready",
			result:     domain.CommandResult{ExitCode: 0, Stdout: "alice@example.com\n"},
			wantState:  domain.AuthReady,
			wantDetail: "alice@example.com",
		},
		{
			name:      "missing binary is not installed",
			err:       &domain.ExecutionError{Kind: domain.ExecNotFound, Cmd: "me"},
			wantState: domain.AuthNotInstalled,
		},
		{
			name:      "config hint on stderr is not configured",
			result:    domain.CommandResult{ExitCode: 1, Stderr: "Config file not found, run 'jira init'\n"},
			wantState: domain.AuthNotConfigured,
		},
		{
			name:      "config hint detection is case insensitive",
			result:    domain.CommandResult{ExitCode: 1, Stderr: "NOT CONFIGURED\n"},
			wantState: domain.AuthNotConfigured,
		},
		{
			name:      "unexplained non-zero exit is an error state",
			result:    domain.CommandResult{ExitCode: 1, Stderr: "401 unauthorized\n"},
			wantState: domain.AuthError,
		},
		{
			name:      "config hint on stdout counts when stderr is empty",
			result:    domain.CommandResult{ExitCode: 1, Stdout: "please run jira init first\n"},
			wantState: domain.AuthNotConfigured,
		},
		{
			name:      "timeout is an error state",
			err:       &domain.ExecutionError{Kind: domain.ExecTimeout, Cmd: "me"},
			wantState: domain.AuthError,
		},
		{
			name:      "zero exit without identity is an error state",
			result:    domain.CommandResult{ExitCode: 0, Stdout: "unexpected banner text\n"},
			wantState: domain.AuthError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := Classify(tt.result, tt.err)

			assert.Equal(t, tt.wantState, status.State)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, status.Detail)
			}
			assert.False(t, status.CheckedAt.IsZero())
		})
	}
}

func TestStatusMonitorCheckRunsIdentityQuery(t *testing.T) {
	runner := &fakeRunner{
		result: domain.CommandResult{ExitCode: 0, Stdout: "alice@example.com\n"},
	}
	monitor := NewStatusMonitor(runner, 5*time.Second)

	status := monitor.Check(context.Background())

	require.Len(t, runner.commands, 1)
	assert.Equal(t, []string{"me"}, runner.commands[0].Args)
	assert.Equal(t, 5*time.Second, runner.commands[0].Timeout)

	assert.Equal(t, domain.AuthReady, status.State)
	assert.True(t, status.Usable())
}
