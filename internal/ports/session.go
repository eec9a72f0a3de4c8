package ports

import "time"

// SessionState is the lifecycle state of the interactive session host
type SessionState int

const (
	// SessionIdle means no subprocess exists
	SessionIdle SessionState = iota
	// SessionStarting means launch was requested but the pty is not up yet
	SessionStarting
	// SessionAttached means I/O is streaming both directions
	SessionAttached
)

// String implements fmt.Stringer
func (s SessionState) String() string {
	switch s {
	case SessionStarting:
		return "starting"
	case SessionAttached:
		return "attached"
	default:
		return "idle"
	}
}

// SessionExit reports subprocess termination. Delivered exactly once per
// session. Any exit code is informational, not itself an error; ForceKilled
// is set when the terminate grace period expired and SIGKILL was used.
type SessionExit struct {
	Code        int
	ForceKilled bool
}

// SessionHost owns at most one interactive pty-backed subprocess at a time.
// Start while a session exists fails with SessionError{SessionAlreadyActive}
// and leaves the existing session untouched.
type SessionHost interface {
	// Start launches the given argv on a fresh pty. The args include the
	// binary name; dir is the working directory (empty inherits).
	Start(args []string, dir string) error

	// Output is the stream of raw subprocess output chunks. The channel is
	// closed when the subprocess exits. Chunks must be drained promptly;
	// the host never buffers a whole session before delivering.
	Output() <-chan []byte

	// Done delivers the exit report exactly once, then is closed.
	Done() <-chan SessionExit

	// Write forwards input bytes verbatim to the subprocess, control
	// characters included.
	Write(p []byte) error

	// Resize propagates terminal dimensions to the pty.
	Resize(cols, rows int) error

	// Terminate requests shutdown: SIGTERM, then SIGKILL after grace.
	// Safe to call when idle (no-op). Returns once the signal escalation
	// has been scheduled; completion is observed via Done.
	Terminate(grace time.Duration)

	// State returns the current lifecycle state.
	State() SessionState
}
