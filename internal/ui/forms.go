package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// promptKind identifies which action a completed prompt should trigger.
type promptKind int

const (
	promptNone promptKind = iota
	promptSearch
	promptComment
	promptTransition
)

// PromptResult carries the values collected by a prompt form.
type PromptResult struct {
	Body      string // comment body
	Cancelled bool
	Query     string // JQL query
	State     string // transition target
}

// PromptForm is a Bubble Tea component wrapping a huh form for the small
// text prompts (JQL search, comment, transition).
type PromptForm struct {
	Completed bool
	form      *huh.Form
	result    PromptResult
}

// NewSearchForm builds the JQL query prompt.
func NewSearchForm() *PromptForm {
	pf := &PromptForm{}
	pf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("JQL query").
				Placeholder(`project = PROJ AND status != Done`).
				Value(&pf.result.Query).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("query required")
					}
					return nil
				}),
		),
	)
	return pf
}

// NewCommentForm builds the comment prompt for an issue.
func NewCommentForm(issueKey string) *PromptForm {
	pf := &PromptForm{}
	pf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Comment").
				Description(fmt.Sprintf("Commenting on %s", issueKey)).
				Value(&pf.result.Body).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("comment required")
					}
					return nil
				}),
		),
	)
	return pf
}

// NewTransitionForm builds the workflow transition prompt for an issue.
func NewTransitionForm(issueKey string) *PromptForm {
	pf := &PromptForm{}
	pf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target state").
				Description(fmt.Sprintf("Transitioning %s", issueKey)).
				Placeholder("In Progress").
				Value(&pf.result.State).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("target state required")
					}
					return nil
				}),
		),
	)
	return pf
}

func (pf *PromptForm) Init() tea.Cmd {
	return pf.form.Init()
}

func (pf *PromptForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape or Ctrl+C cancels
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			pf.result.Cancelled = true
			pf.Completed = true
			return pf, nil
		}
	}

	form, cmd := pf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		pf.form = f
	}

	if pf.form.State == huh.StateCompleted {
		pf.Completed = true
		return pf, nil
	}

	return pf, cmd
}

func (pf *PromptForm) View() string {
	if pf.form != nil {
		return pf.form.View()
	}
	return ""
}

// Result returns the collected values.
func (pf *PromptForm) Result() PromptResult {
	return pf.result
}
