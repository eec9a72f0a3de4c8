package term

import (
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jtui/internal/domain"
	"jtui/internal/ports"
)

func requirePOSIX(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("pty sessions require a POSIX platform")
	}
}

// drainOutput consumes the output stream in the background so the read
// pump never blocks, collecting everything seen.
func drainOutput(h *Host) <-chan string {
	collected := make(chan string, 1)
	go func() {
		var b strings.Builder
		for chunk := range h.Output() {
			b.Write(chunk)
		}
		collected <- b.String()
	}()
	return collected
}

func waitForExit(t *testing.T, h *Host) ports.SessionExit {
	t.Helper()
	select {
	case exit := <-h.Done():
		return exit
	case <-time.After(10 * time.Second):
		t.Fatal("session did not exit in time")
		return ports.SessionExit{}
	}
}

func TestHostStartRejectsSecondSession(t *testing.T) {
	requirePOSIX(t)

	h := NewHost()
	require.NoError(t, h.Start([]string{"sh", "-c", "sleep 5"}, ""))
	defer func() {
		h.Terminate(100 * time.Millisecond)
		waitForExit(t, h)
	}()
	collected := drainOutput(h)

	err := h.Start([]string{"sh", "-c", "true"}, "")
	require.Error(t, err)

	var sessErr *domain.SessionError
	require.ErrorAs(t, err, &sessErr)
	assert.Equal(t, domain.SessionAlreadyActive, sessErr.Kind)
	assert.Equal(t, ports.SessionAttached, h.State())

	_ = collected
}

func TestHostDeliversExitCode(t *testing.T) {
	requirePOSIX(t)

	h := NewHost()
	require.NoError(t, h.Start([]string{"sh", "-c", "exit 4"}, ""))
	drainOutput(h)

	exit := waitForExit(t, h)
	assert.Equal(t, 4, exit.Code)
	assert.False(t, exit.ForceKilled)
	assert.Equal(t, ports.SessionIdle, h.State())
}

func TestHostStreamsOutputAndForwardsInput(t *testing.T) {
	requirePOSIX(t)

	h := NewHost()
	require.NoError(t, h.Start([]string{"cat"}, ""))
	collected := drainOutput(h)

	require.NoError(t, h.Write([]byte("hello session\n")))

	// cat echoes the line back through the pty
	require.NoError(t, h.Write([]byte{0x04})) // EOF ends cat
	waitForExit(t, h)

	assert.Contains(t, <-collected, "hello session")
}

func TestHostTerminateEscalatesToKill(t *testing.T) {
	requirePOSIX(t)

	h := NewHost()
	// Child ignores SIGTERM so only the kill escalation can end it
	require.NoError(t, h.Start([]string{"sh", "-c", `trap "" TERM; sleep 30`}, ""))
	drainOutput(h)

	h.Terminate(200 * time.Millisecond)
	exit := waitForExit(t, h)

	assert.True(t, exit.ForceKilled)
	assert.Equal(t, ports.SessionIdle, h.State())
}

func TestHostTerminateGracefulChildIsNotForceKilled(t *testing.T) {
	requirePOSIX(t)

	h := NewHost()
	require.NoError(t, h.Start([]string{"sleep", "30"}, ""))
	drainOutput(h)

	h.Terminate(5 * time.Second)
	exit := waitForExit(t, h)

	assert.False(t, exit.ForceKilled)
}

func TestHostRestartAfterExit(t *testing.T) {
	requirePOSIX(t)

	h := NewHost()
	require.NoError(t, h.Start([]string{"sh", "-c", "exit 0"}, ""))
	drainOutput(h)
	waitForExit(t, h)

	// A finished session frees the slot for the next one
	require.NoError(t, h.Start([]string{"sh", "-c", "exit 0"}, ""))
	drainOutput(h)
	exit := waitForExit(t, h)
	assert.Equal(t, 0, exit.Code)
}

func TestHostWriteWithoutSession(t *testing.T) {
	h := NewHost()
	assert.Error(t, h.Write([]byte("x")))
	assert.NoError(t, h.Resize(80, 24)) // resize without a session is a no-op
	assert.Equal(t, ports.SessionIdle, h.State())
}
