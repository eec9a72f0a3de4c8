package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"jtui/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	height      int
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
	width       int
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(keyText, description string) string {
	return theme.HelpKeyStyle.Render(keyText) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a shortcut line from a key binding's help text
func renderBinding(b key.Binding) string {
	return renderShortcut(b.Help().Key, b.Help().Desc)
}

// buildHelpContent builds the complete help text using the key bindings
func buildHelpContent(keys *KeyMap) string {
	var content string

	content += theme.HelpGroupStyle.Render("Issues") + "\n"
	content += renderBinding(keys.MyIssues)
	content += renderBinding(keys.Search)
	content += renderBinding(keys.View)
	content += renderBinding(keys.Comment)
	content += renderBinding(keys.Transition)
	content += renderBinding(keys.Create)

	content += "\n" + theme.HelpGroupStyle.Render("Navigation") + "\n"
	content += renderBinding(keys.Up)
	content += renderBinding(keys.Down)
	content += renderBinding(keys.Back)
	content += renderShortcut("/", "filter loaded issues (in list)")

	content += "\n" + theme.HelpGroupStyle.Render("Authentication") + "\n"
	content += renderBinding(keys.Setup)
	content += renderBinding(keys.RefreshStatus)

	content += "\n" + theme.HelpGroupStyle.Render("Terminal Sessions") + "\n"
	content += renderBinding(keys.Detach)
	content += renderShortcut("any other key", "sent to the running command")

	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += renderBinding(keys.Help)
	content += renderBinding(keys.Quit)
	content += renderBinding(keys.ForceQuit)

	content += "\n" + theme.HelpGroupStyle.Render("Status Indicators") + "\n"
	content += renderShortcut("●", "authenticated and ready")
	content += renderShortcut("◐", "installed but not configured")
	content += renderShortcut("✗", "jira binary not found")

	return content
}

// NewHelpScreen creates a help screen listing all shortcuts
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content: buildHelpContent(keys),
		keys:    keys,
	}
}

func (hs *HelpScreen) Init() tea.Cmd {
	return nil
}

func (hs *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		hs.width = msg.Width
		hs.height = msg.Height
		hs.resize()
		return hs, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "?", "enter":
			hs.Completed = true
			return hs, nil
		}
	}

	var cmd tea.Cmd
	hs.viewport, cmd = hs.viewport.Update(msg)
	return hs, cmd
}

func (hs *HelpScreen) View() string {
	if !hs.initialized {
		return hs.content
	}
	return hs.viewport.View() + "\n" + theme.HelpStyle.Render("esc to close · up/down to scroll")
}

// SetSize resizes the help viewport to the terminal dimensions
func (hs *HelpScreen) SetSize(width, height int) {
	hs.width = width
	hs.height = height
	hs.resize()
}

func (hs *HelpScreen) resize() {
	// Leave room for the dialog header and the footer hint
	contentHeight := hs.height - 8
	if contentHeight < 5 {
		contentHeight = 5
	}
	if !hs.initialized {
		hs.viewport = viewport.New(hs.width, contentHeight)
		hs.viewport.SetContent(hs.content)
		hs.initialized = true
		return
	}
	hs.viewport.Width = hs.width
	hs.viewport.Height = contentHeight
}
