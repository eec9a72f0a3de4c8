package ports

import (
	"context"

	"jtui/internal/domain"
)

// CommandRunner executes one non-interactive invocation of the external
// jira-cli binary. A non-zero exit is a successful run whose result carries
// the code; the returned error is reserved for the binary being absent
// (ExecutionError{ExecNotFound}) or the timeout firing (ExecutionError{ExecTimeout}).
type CommandRunner interface {
	Run(ctx context.Context, cmd domain.ExternalCommand) (domain.CommandResult, error)
}
