package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"jtui/internal/domain"
	"jtui/internal/ports"
	"jtui/internal/services"
)

// checkStatusCmd runs an authentication check off the event loop.
func checkStatusCmd(monitor *services.StatusMonitor, seq uint64) tea.Cmd {
	return func() tea.Msg {
		status := monitor.Check(context.Background())
		return authStatusMsg{seq: seq, status: status}
	}
}

// listIssuesCmd runs an issue list query off the event loop. The title is
// echoed back so the view can label the result set.
func listIssuesCmd(svc *services.IssueService, seq uint64, title string, cmd domain.ExternalCommand) tea.Cmd {
	return func() tea.Msg {
		issues, err := svc.ListIssues(context.Background(), cmd)
		return issueListMsg{seq: seq, title: title, issues: issues, err: err}
	}
}

// viewIssueCmd fetches one issue's detail off the event loop.
func viewIssueCmd(svc *services.IssueService, seq uint64, key string) tea.Cmd {
	return func() tea.Msg {
		detail, err := svc.ViewIssue(context.Background(), key)
		return issueDetailMsg{seq: seq, detail: detail, err: err}
	}
}

// addCommentCmd posts a comment to an issue.
func addCommentCmd(svc *services.IssueService, key, body string) tea.Cmd {
	return func() tea.Msg {
		err := svc.AddComment(context.Background(), key, body)
		return commentAddedMsg{key: key, err: err}
	}
}

// transitionIssueCmd moves an issue to a new workflow state.
func transitionIssueCmd(svc *services.IssueService, key, state string) tea.Cmd {
	return func() tea.Msg {
		err := svc.TransitionIssue(context.Background(), key, state)
		return transitionDoneMsg{key: key, state: state, err: err}
	}
}

// waitForSessionOutput blocks until the hosted process emits output.
// Returns nil once the output channel is closed; the exit message takes
// over from there. The channel is captured at creation so a waiter left
// over from a finished session never consumes a later session's stream.
func waitForSessionOutput(host ports.SessionHost) tea.Cmd {
	output := host.Output()
	return func() tea.Msg {
		chunk, ok := <-output
		if !ok {
			return nil
		}
		return sessionOutputMsg{chunk: chunk}
	}
}

// waitForSessionExit blocks until the hosted process finishes.
func waitForSessionExit(host ports.SessionHost) tea.Cmd {
	done := host.Done()
	return func() tea.Msg {
		exit, ok := <-done
		if !ok {
			return nil
		}
		return sessionExitMsg{exit: exit}
	}
}
