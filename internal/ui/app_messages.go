package ui

import tea "github.com/charmbracelet/bubbletea"

// TogglePanelMsg flips the visibility of a registered panel.
type TogglePanelMsg struct {
	ID string
}

// FocusNextMsg makes the next visible panel active.
type FocusNextMsg struct{}

// FocusPrevMsg makes the previous visible panel active.
type FocusPrevMsg struct{}

// TerminalOutputMsg carries output lines for a panel that accepts appended
// lines (see LineAppender). Next, when set, is run to wait for more output.
type TerminalOutputMsg struct {
	PanelID string
	Lines   []string
	Next    tea.Cmd
}

// TerminalClosedMsg reports that an output feed ended. Err is nil on clean EOF.
type TerminalClosedMsg struct {
	PanelID string
	Err     error
}

// LineAppender is implemented by panels that accept streamed output.
type LineAppender interface {
	AppendLines(lines ...string)
}
