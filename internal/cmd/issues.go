package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// IssuesCmd lists issues to stdout without starting the TUI.
type IssuesCmd struct {
	JQL string `help:"JQL query to run instead of listing my issues" short:"q"`
}

// Run executes the list query
func (i *IssuesCmd) Run(cli *CLI) error {
	svc := cli.Container.Issues

	cmd := svc.MyIssuesCommand()
	if i.JQL != "" {
		cmd = svc.SearchCommand(i.JQL)
	}

	issues, err := svc.ListIssues(context.Background(), cmd)
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		fmt.Println("no issues found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, issue := range issues {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			issue.Key, issue.Type, issue.Status, issue.Assignee, issue.Title)
	}
	return w.Flush()
}
