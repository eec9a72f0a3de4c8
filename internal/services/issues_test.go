package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jtui/internal/domain"
)

func newTestIssueService(runner *fakeRunner) *IssueService {
	return NewIssueService(runner, 10*time.Second, 25)
}

func TestMyIssuesCommand(t *testing.T) {
	svc := newTestIssueService(&fakeRunner{})
	cmd := svc.MyIssuesCommand()

	assert.Equal(t, []string{
		"issue", "list",
		"--assignee", "me",
		"--order-by", "updated",
		"--reverse",
		"--plain", "--no-headers",
		"--columns", "type,key,summary,status,assignee",
		"--paginate", "0:25",
	}, cmd.Args)
	assert.Equal(t, 10*time.Second, cmd.Timeout)
}

func TestSearchCommandPassesJQLAsSingleArgument(t *testing.T) {
	svc := newTestIssueService(&fakeRunner{})
	jql := `project = PROJ AND status != Done ORDER BY updated`

	cmd := svc.SearchCommand(jql)

	assert.Contains(t, cmd.Args, jql)
	assert.Equal(t, "--jql", cmd.Args[2])
	assert.Equal(t, jql, cmd.Args[3])
}

func TestListIssues(t *testing.T) {
	t.Run("parses rows", func(t *testing.T) {
		runner := &fakeRunner{
			result: domain.CommandResult{
				ExitCode: 0,
				Stdout:   "Bug\tPROJ-1\tA bug\tOpen\talice\n",
			},
		}
		svc := newTestIssueService(runner)

		issues, err := svc.ListIssues(context.Background(), svc.MyIssuesCommand())
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, "PROJ-1", issues[0].Key)
	})

	t.Run("empty output is an empty result set", func(t *testing.T) {
		runner := &fakeRunner{result: domain.CommandResult{ExitCode: 0}}
		svc := newTestIssueService(runner)

		issues, err := svc.ListIssues(context.Background(), svc.MyIssuesCommand())
		require.NoError(t, err)
		assert.Empty(t, issues)
	})

	t.Run("non-zero exit surfaces stderr", func(t *testing.T) {
		runner := &fakeRunner{
			result: domain.CommandResult{ExitCode: 1, Stderr: "401 unauthorized\n"},
		}
		svc := newTestIssueService(runner)

		_, err := svc.ListIssues(context.Background(), svc.MyIssuesCommand())

		var execErr *domain.ExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, domain.ExecNonZeroExit, execErr.Kind)
		assert.Equal(t, "401 unauthorized", execErr.Detail)
	})
}

func TestViewIssue(t *testing.T) {
	runner := &fakeRunner{
		result: domain.CommandResult{
			ExitCode: 0,
			Stdout:   "PROJ-9: A task\nStatus: Done\n",
		},
	}
	svc := newTestIssueService(runner)

	detail, err := svc.ViewIssue(context.Background(), "PROJ-9")
	require.NoError(t, err)

	assert.Equal(t, "PROJ-9", detail.Key)
	assert.Equal(t, "Done", detail.Status)

	require.Len(t, runner.commands, 1)
	assert.Equal(t, []string{"issue", "view", "PROJ-9", "--plain", "--comments", "5"}, runner.commands[0].Args)
}

func TestAddComment(t *testing.T) {
	runner := &fakeRunner{result: domain.CommandResult{ExitCode: 0}}
	svc := newTestIssueService(runner)

	err := svc.AddComment(context.Background(), "PROJ-9", "multi word\ncomment body")
	require.NoError(t, err)

	require.Len(t, runner.commands, 1)
	assert.Equal(t, []string{"issue", "comment", "add", "PROJ-9", "multi word\ncomment body"}, runner.commands[0].Args)
}

func TestTransitionIssue(t *testing.T) {
	t.Run("builds move command", func(t *testing.T) {
		runner := &fakeRunner{result: domain.CommandResult{ExitCode: 0}}
		svc := newTestIssueService(runner)

		err := svc.TransitionIssue(context.Background(), "PROJ-9", "In Progress")
		require.NoError(t, err)

		require.Len(t, runner.commands, 1)
		assert.Equal(t, []string{"issue", "move", "PROJ-9", "In Progress"}, runner.commands[0].Args)
	})

	t.Run("invalid transition surfaces the tool's message", func(t *testing.T) {
		runner := &fakeRunner{
			result: domain.CommandResult{ExitCode: 1, Stderr: "invalid transition 'Closed'\n"},
		}
		svc := newTestIssueService(runner)

		err := svc.TransitionIssue(context.Background(), "PROJ-9", "Closed")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid transition")
	})
}
