package ui

import tea "github.com/charmbracelet/bubbletea"

// Panel is an independently rendering, independently input-handling region.
// The PanelManager owns every Panel; nothing else should hold one.
type Panel interface {
	// Title is constant for the lifetime of the panel.
	Title() string
	// Render returns the panel's content sized to r. It may adjust the panel's
	// own display state (scroll, selection) but nothing else.
	Render(r Region) string
	// HandleEvent returns true iff the panel consumed msg.
	HandleEvent(msg tea.Msg) bool
	Visible() bool
	ToggleVisibility()
}

// Focusable is implemented by panels that draw differently while active.
// The PanelManager calls Focus/Blur as the active panel changes.
type Focusable interface {
	Focus()
	Blur()
}
