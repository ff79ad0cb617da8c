package panels

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the navigation keys shared by list-backed panels.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

// DefaultKeyMap returns arrow and vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", "right", "l"),
			key.WithHelp("enter/→", "expand/collapse"),
		),
	}
}

// base carries the visibility and focus state every panel has.
type base struct {
	visible bool
	focused bool
}

// Visible implements ui.Panel.
func (b *base) Visible() bool { return b.visible }

// ToggleVisibility implements ui.Panel.
func (b *base) ToggleVisibility() { b.visible = !b.visible }

// Focus implements ui.Focusable.
func (b *base) Focus() { b.focused = true }

// Blur implements ui.Focusable.
func (b *base) Blur() { b.focused = false }

// Focused reports whether the panel is the active one.
func (b *base) Focused() bool { return b.focused }
