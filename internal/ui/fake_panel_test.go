package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// fakePanel records every call made to it.
type fakePanel struct {
	title    string
	visible  bool
	consumes bool // HandleEvent result
	content  string
	focused  bool

	handled  []tea.Msg
	rendered []Region
	toggles  int
}

func newFake(title string, visible bool) *fakePanel {
	return &fakePanel{title: title, visible: visible, content: title}
}

func (f *fakePanel) Title() string { return f.title }

func (f *fakePanel) Render(r Region) string {
	f.rendered = append(f.rendered, r)
	return f.content
}

func (f *fakePanel) HandleEvent(msg tea.Msg) bool {
	f.handled = append(f.handled, msg)
	return f.consumes
}

func (f *fakePanel) Visible() bool { return f.visible }

func (f *fakePanel) ToggleVisibility() {
	f.visible = !f.visible
	f.toggles++
}

func (f *fakePanel) Focus() { f.focused = true }
func (f *fakePanel) Blur()  { f.focused = false }

// keyMsg creates a tea.KeyMsg whose String() is s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+e":
		return tea.KeyMsg{Type: tea.KeyCtrlE}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
