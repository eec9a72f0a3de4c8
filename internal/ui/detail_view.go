package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"jtui/internal/domain"
	"jtui/internal/theme"
)

// DetailView renders one issue with its comments in a scrollable viewport.
type DetailView struct {
	detail   domain.IssueDetail
	viewport viewport.Model
	width    int
}

// NewDetailView creates an empty detail view.
func NewDetailView() *DetailView {
	return &DetailView{
		viewport: viewport.New(0, 0),
	}
}

// SetDetail loads an issue into the view and scrolls to the top.
func (dv *DetailView) SetDetail(detail domain.IssueDetail) {
	dv.detail = detail
	dv.viewport.SetContent(renderIssueDetail(detail, dv.width))
	dv.viewport.GotoTop()
}

// Key returns the key of the issue currently loaded, or "".
func (dv *DetailView) Key() string {
	return dv.detail.Key
}

// SetSize resizes the viewport and re-wraps the content.
func (dv *DetailView) SetSize(width, height int) {
	dv.width = width
	dv.viewport.Width = width
	dv.viewport.Height = height
	if dv.detail.Key != "" {
		dv.viewport.SetContent(renderIssueDetail(dv.detail, width))
	}
}

// Update forwards scrolling keys to the viewport.
func (dv *DetailView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	dv.viewport, cmd = dv.viewport.Update(msg)
	return cmd
}

// View renders the viewport.
func (dv *DetailView) View() string {
	return dv.viewport.View()
}

// renderIssueDetail formats an issue and its comments as styled text.
func renderIssueDetail(d domain.IssueDetail, width int) string {
	var b strings.Builder

	b.WriteString(theme.IssueKeyStyle.Render(d.Key))
	b.WriteString(" ")
	b.WriteString(theme.TitleStyle.Render(d.Title))
	b.WriteString("\n\n")

	meta := []string{}
	if d.Type != "" {
		meta = append(meta, "Type: "+d.Type)
	}
	if d.Status != "" {
		meta = append(meta, "Status: "+d.Status)
	}
	if d.Assignee != "" {
		meta = append(meta, "Assignee: "+d.Assignee)
	}
	if len(meta) > 0 {
		b.WriteString(theme.MutedStyle.Render(strings.Join(meta, "   ")))
		b.WriteString("\n\n")
	}

	if d.Description != "" {
		b.WriteString(theme.NormalStyle.Width(width).Render(d.Description))
		b.WriteString("\n")
	}

	if len(d.Comments) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.PaneTitleStyle.Render(fmt.Sprintf("Comments (%d)", len(d.Comments))))
		b.WriteString("\n")
		for _, c := range d.Comments {
			header := c.Author
			if c.Timestamp != "" {
				header += " · " + c.Timestamp
			}
			b.WriteString("\n")
			b.WriteString(theme.CommentHeaderStyle.Render(header))
			b.WriteString("\n")
			b.WriteString(theme.NormalStyle.Width(width).Render(c.Body))
			b.WriteString("\n")
		}
	}

	return b.String()
}
