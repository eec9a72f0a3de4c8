package domain

import (
	"strings"
	"time"
)

// ExternalCommand describes one non-interactive invocation of the external
// jira-cli binary. Immutable once constructed; the Dispatcher builds a fresh
// value per user action and discards it after execution.
type ExternalCommand struct {
	// Args is the argument vector, excluding the binary name itself.
	Args []string
	// Dir is the working directory; empty means inherit.
	Dir string
	// Timeout bounds execution; zero means no bound.
	Timeout time.Duration
}

// NewExternalCommand builds a command from an argument vector
func NewExternalCommand(args ...string) ExternalCommand {
	return ExternalCommand{Args: args}
}

// WithTimeout returns a copy of the command with the given timeout
func (c ExternalCommand) WithTimeout(d time.Duration) ExternalCommand {
	c.Timeout = d
	return c
}

// WithDir returns a copy of the command with the given working directory
func (c ExternalCommand) WithDir(dir string) ExternalCommand {
	c.Dir = dir
	return c
}

// String renders the argument vector for logging and error messages
func (c ExternalCommand) String() string {
	return strings.Join(c.Args, " ")
}

// CommandResult captures everything the subprocess produced. Owned solely by
// the caller that issued the command; never shared across invocations.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// OK reports whether the command exited zero
func (r CommandResult) OK() bool {
	return r.ExitCode == 0
}

// ErrorText returns the authoritative error source for a failed command:
// stderr, or stdout when stderr is empty.
func (r CommandResult) ErrorText() string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stdout)
}

// Err materializes a non-zero exit as an ExecutionError. Returns nil for a
// zero exit; the runner itself never treats a non-zero exit as a failure.
func (r CommandResult) Err(cmd ExternalCommand) error {
	if r.ExitCode == 0 {
		return nil
	}
	return &ExecutionError{
		Kind:   ExecNonZeroExit,
		Cmd:    cmd.String(),
		Detail: r.ErrorText(),
	}
}
