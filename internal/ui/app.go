package ui

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PanelShortcut binds keys that toggle one panel.
type PanelShortcut struct {
	PanelID string
	Key     string // direct key, e.g. "ctrl+e"; empty for none
	Leader  string // key after "SPC p", e.g. "f"; empty for none
	Desc    string
}

// AppModel is the root model. It owns the PanelManager and routes every
// message: panels get first refusal on keys, then the global keybindings.
type AppModel struct {
	Panels     *PanelManager
	KeyHandler *KeyHandler
	Width      int
	Height     int

	startup []tea.Cmd
	watches []*regionWatch
}

// regionWatch follows the content size of one panel.
type regionWatch struct {
	panelID string
	fn      func(width, height int)
	w, h    int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model around mgr with the global bindings:
// q/ctrl+c quit, tab/shift+tab cycle focus, and one toggle per shortcut.
func NewAppModel(mgr *PanelManager, shortcuts []PanelShortcut) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("tab", focusNext, "Next panel")
	reg.BindWithDesc("shift+tab", focusPrev, "Previous panel")
	reg.BindWithDesc("SPC f n", focusNext, "Next panel")
	reg.BindWithDesc("SPC f p", focusPrev, "Previous panel")
	for _, s := range shortcuts {
		cmd := togglePanel(s.PanelID)
		desc := s.Desc
		if desc == "" {
			desc = "Toggle " + s.PanelID
		}
		if s.Key != "" {
			reg.BindWithDesc(s.Key, cmd, desc)
		}
		if s.Leader != "" {
			reg.BindWithDesc("SPC p "+s.Leader, cmd, desc)
		}
	}
	return &AppModel{
		Panels:     mgr,
		KeyHandler: NewKeyHandler(reg),
	}
}

func focusNext() tea.Msg { return FocusNextMsg{} }
func focusPrev() tea.Msg { return FocusPrevMsg{} }

func togglePanel(id string) tea.Cmd {
	return func() tea.Msg { return TogglePanelMsg{ID: id} }
}

// OnStart queues commands to run from Init (e.g. output feeds).
func (m *AppModel) OnStart(cmds ...tea.Cmd) {
	m.startup = append(m.startup, cmds...)
}

// WatchRegion calls fn with the content size of panel id (its region less the
// frame and title) whenever a resize or toggle changes it. Hidden panels are
// not reported.
func (m *AppModel) WatchRegion(id string, fn func(width, height int)) {
	m.watches = append(m.watches, &regionWatch{panelID: id, fn: fn})
}

func (m *AppModel) notifyWatches() {
	total := Region{Width: m.Width, Height: m.Height}
	for _, w := range m.watches {
		r, ok := m.Panels.RegionOf(w.panelID, total)
		if !ok {
			continue
		}
		cw, ch := ContentSize(r)
		if cw == w.w && ch == w.h {
			continue
		}
		w.w, w.h = cw, ch
		w.fn(cw, ch)
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if len(a.startup) == 0 {
		return nil
	}
	return tea.Batch(a.startup...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
		a.notifyWatches()
		return a, nil
	case TogglePanelMsg:
		a.togglePanel(msg.ID)
		a.notifyWatches()
		return a, nil
	case FocusNextMsg:
		a.Panels.FocusNext()
		return a, nil
	case FocusPrevMsg:
		a.Panels.FocusPrev()
		return a, nil
	case TerminalOutputMsg:
		a.appendOutput(msg)
		return a, msg.Next
	case TerminalClosedMsg:
		if msg.Err != nil {
			log.Printf("output feed for %q closed: %v", msg.PanelID, msg.Err)
		}
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}
	a.Panels.Dispatch(msg)
	return a, nil
}

// handleKey gives a pending leader sequence priority, then the panels, then
// the global bindings.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		_, cmd := a.KeyHandler.Handle(msg)
		return cmd
	}
	if a.Panels.Dispatch(msg) {
		return nil
	}
	if a.KeyHandler != nil {
		if _, cmd := a.KeyHandler.Handle(msg); cmd != nil {
			return cmd
		}
	}
	return nil
}

// togglePanel flips a panel. A panel being shown becomes active; hiding the
// active panel moves focus to the next visible one.
func (a *AppModel) togglePanel(id string) {
	if err := a.Panels.Toggle(id); err != nil {
		log.Printf("toggle: %v", err)
		return
	}
	p, _ := a.Panels.Panel(id)
	if p.Visible() {
		_ = a.Panels.SetActive(id)
		return
	}
	if active, ok := a.Panels.Active(); ok && active == id {
		if a.Panels.FocusNext() == "" {
			a.Panels.ClearActive()
		}
	}
}

func (a *AppModel) appendOutput(msg TerminalOutputMsg) {
	p, err := a.Panels.Panel(msg.PanelID)
	if err != nil {
		log.Printf("terminal output: %v", err)
		return
	}
	la, ok := p.(LineAppender)
	if !ok {
		log.Printf("terminal output: panel %q does not accept lines", msg.PanelID)
		return
	}
	la.AppendLines(msg.Lines...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Width <= 0 || a.Height <= 0 {
		return ""
	}
	footer := ""
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		footer = RenderKeybindHelp(a.KeyHandler)
	}
	h := a.Height - lipgloss.Height(footer)
	if footer == "" {
		h = a.Height
	}
	c := NewCanvas(a.Width, max(0, h))
	a.Panels.Render(c)
	if footer == "" {
		return c.String()
	}
	return strings.Join([]string{c.String(), footer}, "\n")
}
