package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyMsgToBytes(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected []byte
	}{
		{name: "plain runes", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")}, expected: []byte("abc")},
		{name: "alt runes get escape prefix", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, expected: []byte{0x1b, 'x'}},
		{name: "enter sends carriage return", msg: tea.KeyMsg{Type: tea.KeyEnter}, expected: []byte("\r")},
		{name: "backspace sends DEL", msg: tea.KeyMsg{Type: tea.KeyBackspace}, expected: []byte{0x7f}},
		{name: "tab", msg: tea.KeyMsg{Type: tea.KeyTab}, expected: []byte("\t")},
		{name: "escape", msg: tea.KeyMsg{Type: tea.KeyEsc}, expected: []byte{0x1b}},
		{name: "up arrow", msg: tea.KeyMsg{Type: tea.KeyUp}, expected: []byte("\x1b[A")},
		{name: "down arrow", msg: tea.KeyMsg{Type: tea.KeyDown}, expected: []byte("\x1b[B")},
		{name: "ctrl+c passes through", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, expected: []byte{0x03}},
		{name: "ctrl+d passes through", msg: tea.KeyMsg{Type: tea.KeyCtrlD}, expected: []byte{0x04}},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, expected: []byte(" ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, keyMsgToBytes(tt.msg))
		})
	}
}

func TestSessionViewStripsControlSequences(t *testing.T) {
	sv := NewSessionView("jira init")
	sv.SetSize(80, 24)

	sv.Append([]byte("\x1b[1;32mInstallation\x1b[0m type:\r\n"))
	sv.Append([]byte("? Cloud\n"))

	view := sv.View()
	assert.Contains(t, view, "Installation type:")
	assert.Contains(t, view, "? Cloud")
	assert.NotContains(t, view, "[1;32m")
}

func TestSessionViewCarriageReturnRedraw(t *testing.T) {
	sv := NewSessionView("jira issue create")
	sv.SetSize(80, 24)

	// Progress-style output rewrites the line in place
	sv.Append([]byte("progress 10%\rprogress 50%\rprogress 100%\n"))

	view := sv.View()
	assert.Contains(t, view, "progress 100%")
	assert.NotContains(t, view, "progress 10%")
}
