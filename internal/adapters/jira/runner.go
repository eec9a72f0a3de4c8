package jira

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"jtui/internal/domain"
	"jtui/internal/logging"
	"jtui/internal/ports"
)

// ExecRunner invokes the jira-cli binary via os/exec, capturing stdout,
// stderr and the exit code. Execution always happens on the caller's
// goroutine; the UI schedules calls off the event loop as tea.Cmds.
type ExecRunner struct {
	binary string
}

// Compile-time interface verification
var _ ports.CommandRunner = (*ExecRunner)(nil)

// NewExecRunner creates a runner for the given binary name. The binary is
// resolved through PATH at execution time, not at construction, so an
// install that happens while the app is running is picked up.
func NewExecRunner(binary string) *ExecRunner {
	return &ExecRunner{binary: binary}
}

// Binary returns the configured binary name
func (r *ExecRunner) Binary() string {
	return r.binary
}

// Run executes the command and captures its output. Non-zero exits are
// returned as results, not errors; see ports.CommandRunner.
func (r *ExecRunner) Run(ctx context.Context, c domain.ExternalCommand) (domain.CommandResult, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.binary, c.Args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Logger.Debug("Running jira command", "binary", r.binary, "args", c.Args)

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)

	result := domain.CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: elapsed,
	}

	if runErr != nil {
		// The deadline firing kills the child; report it as a timeout
		// regardless of how exec surfaced the death.
		if ctx.Err() == context.DeadlineExceeded {
			logging.Logger.Warn("Command timed out", "args", c.Args, "timeout", c.Timeout)
			return result, &domain.ExecutionError{Kind: domain.ExecTimeout, Cmd: c.String(), Err: runErr}
		}

		if errors.Is(runErr, exec.ErrNotFound) {
			logging.Logger.Warn("Binary not found", "binary", r.binary)
			return result, &domain.ExecutionError{Kind: domain.ExecNotFound, Cmd: c.String(), Err: runErr}
		}

		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			logging.Logger.Debug("Command exited non-zero",
				"args", c.Args, "exit_code", result.ExitCode, "duration", elapsed.String())
			return result, nil
		}

		return result, fmt.Errorf("failed to run %s: %w", c.String(), runErr)
	}

	result.ExitCode = cmd.ProcessState.ExitCode()
	logging.Logger.Debug("Command completed",
		"args", c.Args, "exit_code", result.ExitCode, "duration", elapsed.String())
	return result, nil
}
