package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// appenderPanel records lines appended by TerminalOutputMsg.
type appenderPanel struct {
	*fakePanel
	lines []string
}

func (a *appenderPanel) AppendLines(lines ...string) {
	a.lines = append(a.lines, lines...)
}

func newTestApp(t *testing.T) (*appModelAdapter, *fakePanel, *fakePanel, *appenderPanel) {
	t.Helper()
	m := NewPanelManager(WithLeftWidth(30), WithBottomHeight(10))
	tree := newFake("Files", true)
	diag := newFake("Diagnostics", false)
	term := &appenderPanel{fakePanel: newFake("Terminal", false)}
	m.Register("filetree", tree, PositionLeft)
	m.Register("diagnostics", diag, PositionBottom)
	m.Register("terminal", term, PositionBottom)
	require.NoError(t, m.SetActive("filetree"))

	app := NewAppModel(m, []PanelShortcut{
		{PanelID: "filetree", Key: "ctrl+e", Leader: "f"},
		{PanelID: "diagnostics", Key: "ctrl+d", Leader: "d"},
		{PanelID: "terminal", Key: "ctrl+t", Leader: "t"},
	})
	adapter := app.AsTeaModel().(*appModelAdapter)
	adapter.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return adapter, tree, diag, term
}

// runCmd executes cmd and feeds its message back, as the tea runtime would.
func runCmd(a *appModelAdapter, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		_, next := a.Update(msg)
		runCmd(a, next)
	}
}

func TestApp_PanelConsumesBeforeGlobalBindings(t *testing.T) {
	a, tree, _, _ := newTestApp(t)
	tree.consumes = true

	_, cmd := a.Update(keyMsg("q"))
	assert.Nil(t, cmd, "a consuming panel swallows q")
	assert.Len(t, tree.handled, 1)
}

func TestApp_UnconsumedKeyFallsThrough(t *testing.T) {
	a, tree, _, _ := newTestApp(t)

	_, cmd := a.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Len(t, tree.handled, 1, "the panel was offered q first")
}

func TestApp_ControlShortcutTogglesAndFocuses(t *testing.T) {
	a, _, diag, _ := newTestApp(t)

	_, cmd := a.Update(keyMsg("ctrl+d"))
	runCmd(a, cmd)

	assert.True(t, diag.Visible())
	id, _ := a.Panels.Active()
	assert.Equal(t, "diagnostics", id)
	assert.True(t, diag.focused)

	// Hiding the active panel moves focus to what is still visible.
	_, cmd = a.Update(keyMsg("ctrl+d"))
	runCmd(a, cmd)
	assert.False(t, diag.Visible())
	id, _ = a.Panels.Active()
	assert.Equal(t, "filetree", id)
}

func TestApp_HidingLastPanelClearsActive(t *testing.T) {
	a, _, _, _ := newTestApp(t)

	runCmd(a, func() tea.Msg { return TogglePanelMsg{ID: "filetree"} })
	_, ok := a.Panels.Active()
	assert.False(t, ok)
}

func TestApp_ToggleUnknownPanelIsLoggedNotFatal(t *testing.T) {
	a, tree, _, _ := newTestApp(t)
	_, cmd := a.Update(TogglePanelMsg{ID: "missing"})
	assert.Nil(t, cmd)
	assert.True(t, tree.Visible())
}

func TestApp_LeaderSequenceBypassesPanels(t *testing.T) {
	a, tree, _, term := newTestApp(t)

	_, cmd := a.Update(keyMsg(" "))
	assert.Nil(t, cmd)
	require.True(t, a.KeyHandler.LeaderWaiting)
	handledBefore := len(tree.handled)

	tree.consumes = true
	_, cmd = a.Update(keyMsg("p"))
	assert.Nil(t, cmd)
	_, cmd = a.Update(keyMsg("t"))
	runCmd(a, cmd)

	assert.Equal(t, handledBefore, len(tree.handled), "panels see nothing while a leader sequence is pending")
	assert.True(t, term.Visible())
}

func TestApp_TabCyclesFocus(t *testing.T) {
	a, _, _, _ := newTestApp(t)
	runCmd(a, func() tea.Msg { return TogglePanelMsg{ID: "terminal"} })

	_, cmd := a.Update(keyMsg("tab"))
	runCmd(a, cmd)
	id, _ := a.Panels.Active()
	assert.Equal(t, "filetree", id)

	_, cmd = a.Update(keyMsg("shift+tab"))
	runCmd(a, cmd)
	id, _ = a.Panels.Active()
	assert.Equal(t, "terminal", id)
}

func TestApp_TerminalOutputAppends(t *testing.T) {
	a, _, _, term := newTestApp(t)

	next := func() tea.Msg { return nil }
	_, cmd := a.Update(TerminalOutputMsg{PanelID: "terminal", Lines: []string{"one", "two"}, Next: next})
	assert.Equal(t, []string{"one", "two"}, term.lines)
	assert.NotNil(t, cmd, "the feed continuation is scheduled")

	// Panels that cannot take lines are ignored.
	_, cmd = a.Update(TerminalOutputMsg{PanelID: "filetree", Lines: []string{"x"}})
	assert.Nil(t, cmd)
}

func TestApp_ViewComposesFrame(t *testing.T) {
	a, _, _, _ := newTestApp(t)

	rows := splitLines(a.View())
	require.Len(t, rows, 24)
	assert.Equal(t, "Files", rows[0][:5])
	for _, r := range rows {
		assert.Len(t, r, 80)
	}
}

func TestApp_ViewBeforeSizeIsEmpty(t *testing.T) {
	app := NewAppModel(NewPanelManager(), nil)
	assert.Equal(t, "", app.AsTeaModel().View())
}

func TestApp_ViewShowsLeaderHelp(t *testing.T) {
	a, _, _, _ := newTestApp(t)
	a.Update(keyMsg(" "))

	out := a.View()
	assert.Contains(t, out, "Panels")
	assert.Contains(t, out, "Quit")
}

func TestApp_InitRunsStartupCommands(t *testing.T) {
	app := NewAppModel(NewPanelManager(), nil)
	assert.Nil(t, app.AsTeaModel().Init())

	app.OnStart(func() tea.Msg { return FocusNextMsg{} })
	assert.NotNil(t, app.AsTeaModel().Init())
}

func TestApp_WatchRegionFollowsResizeAndToggle(t *testing.T) {
	a, _, _, _ := newTestApp(t)
	var sizes [][2]int
	a.WatchRegion("terminal", func(w, h int) {
		sizes = append(sizes, [2]int{w, h})
	})

	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Empty(t, sizes, "hidden panels are not reported")

	_, cmd := a.Update(keyMsg("ctrl+t"))
	runCmd(a, cmd)
	// Bottom region 50x10 less border (2x2) and title (1).
	require.Equal(t, [][2]int{{48, 7}}, sizes)

	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Len(t, sizes, 1, "unchanged size is not reported again")

	a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, [][2]int{{48, 7}, {68, 7}}, sizes)
}
