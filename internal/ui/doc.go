// Package ui provides the panel composition core of the dashboard and its
// Bubble Tea host.
//
// Core abstractions:
//   - Panel: an independently rendering, input-handling region with its own visibility
//   - Position / Region: the four layout slots and the rectangles they are given
//   - PanelLayout: the id -> position table
//   - PanelManager: owns panels, allocates regions per frame, routes input
//   - Canvas: the per-frame render target panels are drawn into
//   - KeybindRegistry / KeyHandler: global and leader (SPC) key bindings
//   - AppModel: tea.Model that hosts a PanelManager
//
// Input routing: the active panel gets first refusal, then every other visible
// panel in registration order; unconsumed keys fall through to the global bindings.
package ui
