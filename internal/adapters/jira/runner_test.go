package jira

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jtui/internal/domain"
)

// writeStub creates an executable shell script standing in for jira-cli
func writeStub(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts require a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "jira-stub")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755)
	require.NoError(t, err)
	return path
}

func TestExecRunnerCapturesOutputAndExitCode(t *testing.T) {
	stub := writeStub(t, `echo "stdout line"; echo "stderr line" >&2; exit 0`)
	runner := NewExecRunner(stub)

	result, err := runner.Run(context.Background(), domain.NewExternalCommand("me"))
	require.NoError(t, err)

	assert.True(t, result.OK())
	assert.Equal(t, "stdout line\n", result.Stdout)
	assert.Equal(t, "stderr line\n", result.Stderr)
	assert.Greater(t, result.Duration, time.Duration(0))
}

func TestExecRunnerPassesArgumentVectorVerbatim(t *testing.T) {
	stub := writeStub(t, `for a in "$@"; do echo "$a"; done`)
	runner := NewExecRunner(stub)

	cmd := domain.NewExternalCommand("issue", "list", "--jql", `project = PROJ AND status != Done`)
	result, err := runner.Run(context.Background(), cmd)
	require.NoError(t, err)

	// Arguments with spaces and quotes must arrive as single argv entries
	assert.Equal(t, "issue\nlist\n--jql\nproject = PROJ AND status != Done\n", result.Stdout)
}

func TestExecRunnerNonZeroExitIsAResultNotAnError(t *testing.T) {
	stub := writeStub(t, `echo "boom" >&2; exit 3`)
	runner := NewExecRunner(stub)

	result, err := runner.Run(context.Background(), domain.NewExternalCommand("me"))
	require.NoError(t, err)

	assert.False(t, result.OK())
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "boom", result.ErrorText())

	var execErr *domain.ExecutionError
	require.ErrorAs(t, result.Err(domain.NewExternalCommand("me")), &execErr)
	assert.Equal(t, domain.ExecNonZeroExit, execErr.Kind)
	assert.Equal(t, "boom", execErr.Detail)
}

func TestExecRunnerMissingBinary(t *testing.T) {
	runner := NewExecRunner("definitely-not-a-real-binary-4127")

	_, err := runner.Run(context.Background(), domain.NewExternalCommand("me"))
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestExecRunnerTimeout(t *testing.T) {
	stub := writeStub(t, `sleep 5`)
	runner := NewExecRunner(stub)

	cmd := domain.NewExternalCommand("me").WithTimeout(50 * time.Millisecond)

	start := time.Now()
	_, err := runner.Run(context.Background(), cmd)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, domain.IsTimeout(err))
	assert.Less(t, elapsed, 2*time.Second, "timeout should kill the child promptly")
}
