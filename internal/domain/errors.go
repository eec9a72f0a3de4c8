package domain

import (
	"errors"
	"fmt"
)

// ExecErrorKind distinguishes the ways a command invocation can fail
type ExecErrorKind int

const (
	// ExecNotFound means the external binary could not be located on PATH
	ExecNotFound ExecErrorKind = iota
	// ExecTimeout means the command exceeded its duration bound and was killed
	ExecTimeout
	// ExecNonZeroExit means the binary ran and reported failure
	ExecNonZeroExit
)

// ExecutionError is a typed failure from the command runner
type ExecutionError struct {
	Kind   ExecErrorKind
	Cmd    string
	Detail string
	Err    error
}

func (e *ExecutionError) Error() string {
	switch e.Kind {
	case ExecNotFound:
		return fmt.Sprintf("jira binary not found (command: %s)", e.Cmd)
	case ExecTimeout:
		return fmt.Sprintf("command timed out: %s", e.Cmd)
	default:
		if e.Detail != "" {
			return fmt.Sprintf("command failed: %s: %s", e.Cmd, e.Detail)
		}
		return fmt.Sprintf("command failed: %s", e.Cmd)
	}
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an ExecutionError with kind ExecNotFound
func IsNotFound(err error) bool {
	var execErr *ExecutionError
	return errors.As(err, &execErr) && execErr.Kind == ExecNotFound
}

// IsTimeout reports whether err is an ExecutionError with kind ExecTimeout
func IsTimeout(err error) bool {
	var execErr *ExecutionError
	return errors.As(err, &execErr) && execErr.Kind == ExecTimeout
}

// ParseErrorKind distinguishes parser failures
type ParseErrorKind int

const (
	// ParseEmptyOrUnrecognized means no well-formed record was found where
	// at least one was expected
	ParseEmptyOrUnrecognized ParseErrorKind = iota
)

// ParseError is a typed failure from the output parser
type ParseError struct {
	Kind ParseErrorKind
	Hint string
}

func (e *ParseError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("unrecognized or empty output: %s", e.Hint)
	}
	return "unrecognized or empty output"
}

// SessionErrorKind distinguishes session host failures
type SessionErrorKind int

const (
	// SessionAlreadyActive means a session exists and the one-at-a-time
	// policy rejected a new start
	SessionAlreadyActive SessionErrorKind = iota
	// SessionForceKilled means the child ignored the terminate signal and
	// was killed after the grace period
	SessionForceKilled
)

// SessionError is a typed failure from the session host
type SessionError struct {
	Kind SessionErrorKind
}

func (e *SessionError) Error() string {
	switch e.Kind {
	case SessionAlreadyActive:
		return "an interactive session is already active"
	case SessionForceKilled:
		return "session did not exit in time and was force killed"
	default:
		return "session error"
	}
}

// IsAlreadyActive reports whether err is a SessionError with kind SessionAlreadyActive
func IsAlreadyActive(err error) bool {
	var sessErr *SessionError
	return errors.As(err, &sessErr) && sessErr.Kind == SessionAlreadyActive
}
