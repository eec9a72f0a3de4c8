package services

import (
	"context"
	"fmt"
	"time"

	"jtui/internal/adapters/jira"
	"jtui/internal/domain"
	"jtui/internal/logging"
	"jtui/internal/ports"
)

// listColumns is the column set requested from jira-cli so the parser sees
// a stable shape regardless of user-side configuration
const listColumns = "type,key,summary,status,assignee"

// IssueService builds jira-cli invocations for issue queries and mutations
// and parses their plain output into domain types. All methods are
// synchronous; the UI wraps them in tea.Cmds to keep the event loop free.
type IssueService struct {
	runner  ports.CommandRunner
	timeout time.Duration
	limit   int
}

// NewIssueService creates an IssueService. timeout bounds every invocation;
// limit caps list query sizes.
func NewIssueService(runner ports.CommandRunner, timeout time.Duration, limit int) *IssueService {
	return &IssueService{
		runner:  runner,
		timeout: timeout,
		limit:   limit,
	}
}

// MyIssuesCommand is the query behind the "my issues" action
func (s *IssueService) MyIssuesCommand() domain.ExternalCommand {
	return domain.NewExternalCommand(
		"issue", "list",
		"--assignee", "me",
		"--order-by", "updated",
		"--reverse",
		"--plain", "--no-headers",
		"--columns", listColumns,
		"--paginate", fmt.Sprintf("0:%d", s.limit),
	).WithTimeout(s.timeout)
}

// SearchCommand is the query behind the JQL search action
func (s *IssueService) SearchCommand(jql string) domain.ExternalCommand {
	return domain.NewExternalCommand(
		"issue", "list",
		"--jql", jql,
		"--plain", "--no-headers",
		"--columns", listColumns,
		"--paginate", fmt.Sprintf("0:%d", s.limit),
	).WithTimeout(s.timeout)
}

// ViewCommand is the query behind the issue detail action
func (s *IssueService) ViewCommand(key string) domain.ExternalCommand {
	return domain.NewExternalCommand(
		"issue", "view", key,
		"--plain",
		"--comments", "5",
	).WithTimeout(s.timeout)
}

// ListIssues runs a list query and parses the result
func (s *IssueService) ListIssues(ctx context.Context, cmd domain.ExternalCommand) ([]domain.IssueSummary, error) {
	result, err := s.runner.Run(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if !result.OK() {
		return nil, result.Err(cmd)
	}
	// An empty result set is valid: no issues matched
	if len(result.Stdout) == 0 {
		return nil, nil
	}

	issues, err := jira.ParseIssueList(result.Stdout)
	if err != nil {
		logging.Logger.Warn("Unparseable issue list output", "error", err)
		return nil, err
	}
	return issues, nil
}

// ViewIssue runs a detail query and parses the result
func (s *IssueService) ViewIssue(ctx context.Context, key string) (domain.IssueDetail, error) {
	cmd := s.ViewCommand(key)
	result, err := s.runner.Run(ctx, cmd)
	if err != nil {
		return domain.IssueDetail{}, err
	}
	if !result.OK() {
		return domain.IssueDetail{}, result.Err(cmd)
	}
	return jira.ParseIssueDetail(result.Stdout)
}

// AddComment posts a comment to an issue
func (s *IssueService) AddComment(ctx context.Context, key, body string) error {
	cmd := domain.NewExternalCommand(
		"issue", "comment", "add", key, body,
	).WithTimeout(s.timeout)

	result, err := s.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if !result.OK() {
		return result.Err(cmd)
	}
	logging.Logger.Info("Comment added", "key", key)
	return nil
}

// TransitionIssue moves an issue to the given workflow state. The state
// name is passed through verbatim; its validity is the external tool's
// business.
func (s *IssueService) TransitionIssue(ctx context.Context, key, state string) error {
	cmd := domain.NewExternalCommand(
		"issue", "move", key, state,
	).WithTimeout(s.timeout)

	result, err := s.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if !result.OK() {
		return result.Err(cmd)
	}
	logging.Logger.Info("Issue transitioned", "key", key, "state", state)
	return nil
}
