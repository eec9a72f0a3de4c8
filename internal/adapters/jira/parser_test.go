package jira

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jtui/internal/domain"
)

func TestParseIssueList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []domain.IssueSummary
		wantErr  bool
	}{
		{
			name: "parses tab separated rows in order",
			input: "Bug\tPROJ-2\tFix login\tIn Progress\talice\n" +
				"Task\tPROJ-10\tUpdate docs\tTo Do\tbob\n",
			expected: []domain.IssueSummary{
				{Type: "Bug", Key: "PROJ-2", Title: "Fix login", Status: "In Progress", Assignee: "alice"},
				{Type: "Task", Key: "PROJ-10", Title: "Update docs", Status: "To Do", Assignee: "bob"},
			},
		},
		{
			name:  "assignee column is optional",
			input: "Story\tAB1-7\tShip it\tDone\n",
			expected: []domain.IssueSummary{
				{Type: "Story", Key: "AB1-7", Title: "Ship it", Status: "Done"},
			},
		},
		{
			name: "skips header and malformed rows",
			input: "TYPE\tKEY\tSUMMARY\tSTATUS\tASSIGNEE\n" +
				"garbage line without tabs\n" +
				"Bug\tPROJ-3\tReal row\tOpen\tcarol\n",
			expected: []domain.IssueSummary{
				{Type: "Bug", Key: "PROJ-3", Title: "Real row", Status: "Open", Assignee: "carol"},
			},
		},
		{
			name: "tolerates blank lines and CRLF",
			input: "\nBug\tPROJ-4\tWindows output\tOpen\tdan\r\n\n",
			expected: []domain.IssueSummary{
				{Type: "Bug", Key: "PROJ-4", Title: "Windows output", Status: "Open", Assignee: "dan"},
			},
		},
		{
			name:    "all rows malformed is an error",
			input:   "TYPE\tKEY\tSUMMARY\tSTATUS\nnot\ta\tvalid\trow\n",
			wantErr: true,
		},
		{
			name:    "empty input is an error",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, err := ParseIssueList(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				var parseErr *domain.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, domain.ParseEmptyOrUnrecognized, parseErr.Kind)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, issues)
		})
	}
}

func TestParseIssueListIsIdempotent(t *testing.T) {
	input := "Bug\tPROJ-2\tFix login\tIn Progress\talice\n" +
		"Task\tPROJ-10\tUpdate docs\tTo Do\tbob\n"

	first, err := ParseIssueList(input)
	require.NoError(t, err)

	second, err := ParseIssueList(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseIssueDetail(t *testing.T) {
	t.Run("full detail with comments", func(t *testing.T) {
		input := `PROJ-42: Checkout breaks on empty cart
Type: Bug
Status: In Progress
Assignee: alice

Description:
Users with an empty cart see a stack trace
instead of a friendly message.

Comment by bob on 2025-11-02 10:15:
Reproduced on staging.
Stack trace attached.

Comment by alice on 2025-11-03 09:00:
Fix in review.
`

		detail, err := ParseIssueDetail(input)
		require.NoError(t, err)

		assert.Equal(t, "PROJ-42", detail.Key)
		assert.Equal(t, "Checkout breaks on empty cart", detail.Title)
		assert.Equal(t, "Bug", detail.Type)
		assert.Equal(t, "In Progress", detail.Status)
		assert.Equal(t, "alice", detail.Assignee)
		assert.Equal(t, "Users with an empty cart see a stack trace\ninstead of a friendly message.", detail.Description)

		require.Len(t, detail.Comments, 2)
		assert.Equal(t, "bob", detail.Comments[0].Author)
		assert.Equal(t, "2025-11-02 10:15", detail.Comments[0].Timestamp)
		assert.Equal(t, "Reproduced on staging.\nStack trace attached.", detail.Comments[0].Body)
		assert.Equal(t, "alice", detail.Comments[1].Author)
		assert.Equal(t, "Fix in review.", detail.Comments[1].Body)
	})

	t.Run("minimal detail without description or comments", func(t *testing.T) {
		detail, err := ParseIssueDetail("PROJ-1: Small task\nStatus: Done\n")
		require.NoError(t, err)

		assert.Equal(t, "PROJ-1", detail.Key)
		assert.Equal(t, "Small task", detail.Title)
		assert.Equal(t, "Done", detail.Status)
		assert.Empty(t, detail.Description)
		assert.Empty(t, detail.Comments)
	})

	t.Run("missing header is an error", func(t *testing.T) {
		_, err := ParseIssueDetail("Status: Done\nsome text\n")

		var parseErr *domain.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, domain.ParseEmptyOrUnrecognized, parseErr.Kind)
	})
}

func TestParseIdentity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "email address", input: "alice@example.com\n", expected: "alice@example.com"},
		{name: "skips leading blank lines", input: "\n\nalice@example.com\n", expected: "alice@example.com"},
		{name: "multi word lines are not identities", input: "some banner text here\n", wantErr: true},
		{name: "empty output", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := ParseIdentity(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, identity)
		})
	}
}
