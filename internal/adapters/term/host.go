package term

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"

	"jtui/internal/domain"
	"jtui/internal/logging"
	"jtui/internal/ports"
)

// Host runs one interactive subprocess at a time on a pseudo-terminal and
// streams its output incrementally. Start while a session exists fails
// with SessionAlreadyActive and the existing session is untouched.
type Host struct {
	mu          sync.Mutex
	state       ports.SessionState
	cmd         *exec.Cmd
	ptmx        *os.File
	output      chan []byte
	done        chan ports.SessionExit
	forceKilled bool
	killTimer   *time.Timer
}

// Compile-time interface verification
var _ ports.SessionHost = (*Host)(nil)

// NewHost creates an idle session host
func NewHost() *Host {
	return &Host{
		output: make(chan []byte),
		done:   make(chan ports.SessionExit),
	}
}

// Start launches args on a fresh pty. See ports.SessionHost.
func (h *Host) Start(args []string, dir string) error {
	if len(args) == 0 {
		return errors.New("empty session command")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != ports.SessionIdle {
		return &domain.SessionError{Kind: domain.SessionAlreadyActive}
	}
	h.state = ports.SessionStarting

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir

	logging.Logger.Info("Starting interactive session", "args", args)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		h.state = ports.SessionIdle
		if errors.Is(err, exec.ErrNotFound) {
			return &domain.ExecutionError{Kind: domain.ExecNotFound, Cmd: args[0], Err: err}
		}
		return err
	}

	h.cmd = cmd
	h.ptmx = ptmx
	h.forceKilled = false
	h.output = make(chan []byte, 32)
	h.done = make(chan ports.SessionExit, 1)
	h.state = ports.SessionAttached

	go h.pump(cmd, ptmx, h.output, h.done)

	return nil
}

// pump copies subprocess output to the output channel until the child
// exits, then reaps it and delivers the exit report.
func (h *Host) pump(cmd *exec.Cmd, ptmx *os.File, output chan []byte, done chan ports.SessionExit) {
	var g errgroup.Group
	g.Go(func() error {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				output <- chunk
			}
			if err != nil {
				// EOF or EIO when the child side closes
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		}
	})
	_ = g.Wait()
	close(output)

	waitErr := cmd.Wait()
	code := cmd.ProcessState.ExitCode()
	if waitErr != nil && code == 0 {
		code = -1
	}

	h.mu.Lock()
	if h.killTimer != nil {
		h.killTimer.Stop()
		h.killTimer = nil
	}
	forceKilled := h.forceKilled
	h.ptmx = nil
	h.cmd = nil
	h.state = ports.SessionIdle
	h.mu.Unlock()

	ptmx.Close()

	logging.Logger.Info("Interactive session exited", "exit_code", code, "force_killed", forceKilled)
	done <- ports.SessionExit{Code: code, ForceKilled: forceKilled}
	close(done)
}

// Output returns the current session's output stream
func (h *Host) Output() <-chan []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.output
}

// Done returns the current session's exit channel
func (h *Host) Done() <-chan ports.SessionExit {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.done
}

// Write forwards input bytes verbatim to the subprocess
func (h *Host) Write(p []byte) error {
	h.mu.Lock()
	ptmx := h.ptmx
	h.mu.Unlock()

	if ptmx == nil {
		return errors.New("no active session")
	}
	_, err := ptmx.Write(p)
	return err
}

// Resize propagates terminal dimensions to the pty
func (h *Host) Resize(cols, rows int) error {
	h.mu.Lock()
	ptmx := h.ptmx
	h.mu.Unlock()

	if ptmx == nil {
		return nil
	}
	return pty.Setsize(ptmx, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
}

// Terminate requests shutdown: SIGTERM now, SIGKILL after the grace period
// if the child has not exited by then. Completion is observed via Done.
func (h *Host) Terminate(grace time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == ports.SessionIdle || h.cmd == nil || h.cmd.Process == nil {
		return
	}
	proc := h.cmd.Process

	logging.Logger.Info("Terminating interactive session", "pid", proc.Pid, "grace", grace.String())
	_ = proc.Signal(syscall.SIGTERM)

	if h.killTimer != nil {
		h.killTimer.Stop()
	}
	h.killTimer = time.AfterFunc(grace, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		// Only escalate when the same process is still running
		if h.cmd == nil || h.cmd.Process != proc {
			return
		}
		h.forceKilled = true
		logging.Logger.Warn("Session ignored terminate, force killing", "pid", proc.Pid)
		_ = proc.Kill()
	})
}

// State returns the current lifecycle state
func (h *Host) State() ports.SessionState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}
