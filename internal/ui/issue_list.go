package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"jtui/internal/domain"
	"jtui/internal/theme"
)

// issueItem adapts a domain.IssueSummary to the bubbles list.Item interface.
type issueItem struct {
	issue domain.IssueSummary
}

func (i issueItem) Title() string {
	return theme.IssueKeyStyle.Render(i.issue.Key) + " " + i.issue.Title
}

func (i issueItem) Description() string {
	parts := []string{i.issue.Type, i.issue.Status}
	if i.issue.Assignee != "" {
		parts = append(parts, i.issue.Assignee)
	}
	return theme.IssueStatusStyle.Render(strings.Join(parts, " · "))
}

func (i issueItem) FilterValue() string {
	return i.issue.Key + " " + i.issue.Title
}

// IssueList wraps the bubbles list for issue browsing.
type IssueList struct {
	list  list.Model
	title string
}

// NewIssueList creates an empty issue list.
func NewIssueList() *IssueList {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.ColorHighlight).
		BorderForeground(theme.ColorHighlight)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(theme.ColorSubtle).
		BorderForeground(theme.ColorHighlight)

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Issues"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = theme.PaneTitleStyle

	return &IssueList{list: l}
}

// SetIssues replaces the list contents, preserving source order.
func (il *IssueList) SetIssues(title string, issues []domain.IssueSummary) {
	items := make([]list.Item, 0, len(issues))
	for _, issue := range issues {
		items = append(items, issueItem{issue: issue})
	}
	il.list.SetItems(items)
	il.list.ResetSelected()
	il.title = title
	il.list.Title = fmt.Sprintf("%s (%d)", title, len(issues))
}

// Selected returns the currently highlighted issue, if any.
func (il *IssueList) Selected() (domain.IssueSummary, bool) {
	item, ok := il.list.SelectedItem().(issueItem)
	if !ok {
		return domain.IssueSummary{}, false
	}
	return item.issue, true
}

// SetSize resizes the underlying list.
func (il *IssueList) SetSize(width, height int) {
	il.list.SetSize(width, height)
}

// Update forwards a message to the underlying list.
func (il *IssueList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	il.list, cmd = il.list.Update(msg)
	return cmd
}

// View renders the list.
func (il *IssueList) View() string {
	return il.list.View()
}

// Filtering reports whether the list's filter input is active, so the model
// can route key presses to the filter instead of global shortcuts.
func (il *IssueList) Filtering() bool {
	return il.list.FilterState() == list.Filtering
}
