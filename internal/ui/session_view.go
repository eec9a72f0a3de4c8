package ui

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"jtui/internal/theme"
)

// ansiEscapes matches CSI and OSC sequences in subprocess output. The
// viewport renders plain text, so terminal control sequences emitted by
// interactive prompts are stripped before display.
var ansiEscapes = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]|\x1b\][^\x07]*\x07|\x1b[()][0-9A-B]`)

// SessionView displays the output of a hosted terminal session and
// translates key presses into bytes for the subprocess.
type SessionView struct {
	buf      bytes.Buffer
	title    string
	viewport viewport.Model
}

// NewSessionView creates a session view for the named command.
func NewSessionView(title string) *SessionView {
	return &SessionView{
		title:    title,
		viewport: viewport.New(0, 0),
	}
}

// Title returns the command name shown in the session header.
func (sv *SessionView) Title() string {
	return sv.title
}

// Append adds a chunk of subprocess output and scrolls to the bottom.
func (sv *SessionView) Append(chunk []byte) {
	sv.buf.Write(chunk)
	sv.viewport.SetContent(sv.renderContent())
	sv.viewport.GotoBottom()
}

// SetSize resizes the viewport.
func (sv *SessionView) SetSize(width, height int) {
	sv.viewport.Width = width
	sv.viewport.Height = height
	sv.viewport.SetContent(sv.renderContent())
	sv.viewport.GotoBottom()
}

// View renders the accumulated output.
func (sv *SessionView) View() string {
	return sv.viewport.View()
}

func (sv *SessionView) renderContent() string {
	text := ansiEscapes.ReplaceAllString(sv.buf.String(), "")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	// A bare carriage return means "redraw this line": keep only the last
	// rewrite of each line.
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if idx := strings.LastIndex(line, "\r"); idx >= 0 {
			line = line[idx+1:]
		}
		lines = append(lines, line)
	}
	return theme.NormalStyle.Render(strings.Join(lines, "\n"))
}

// keyMsgToBytes translates a key press into the byte sequence a terminal
// would send for it. Returns nil for keys with no terminal encoding.
func keyMsgToBytes(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyRunes:
		b := []byte(string(msg.Runes))
		if msg.Alt {
			return append([]byte{0x1b}, b...)
		}
		return b
	case tea.KeySpace:
		return []byte(" ")
	case tea.KeyEnter:
		return []byte("\r")
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte("\t")
	case tea.KeyShiftTab:
		return []byte("\x1b[Z")
	case tea.KeyEsc:
		return []byte{0x1b}
	case tea.KeyUp:
		return []byte("\x1b[A")
	case tea.KeyDown:
		return []byte("\x1b[B")
	case tea.KeyRight:
		return []byte("\x1b[C")
	case tea.KeyLeft:
		return []byte("\x1b[D")
	case tea.KeyHome:
		return []byte("\x1b[H")
	case tea.KeyEnd:
		return []byte("\x1b[F")
	case tea.KeyPgUp:
		return []byte("\x1b[5~")
	case tea.KeyPgDown:
		return []byte("\x1b[6~")
	case tea.KeyDelete:
		return []byte("\x1b[3~")
	}

	// Remaining control characters map directly to their ASCII byte.
	if msg.Type > 0 && msg.Type < 32 {
		return []byte{byte(msg.Type)}
	}
	return nil
}
