package panels

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devdash/internal/ui"
)

func selectedName(t *testing.T, p *FileTreePanel) string {
	t.Helper()
	it, ok := p.Selected()
	require.True(t, ok)
	return it.Name
}

func TestFileTree_VerticalMovementClamps(t *testing.T) {
	p := NewFileTreePanel(true)
	rows := len(p.rows())
	require.Equal(t, 8, rows, "ui/ and config/ start collapsed")

	assert.True(t, p.HandleEvent(keyMsg("up")))
	assert.Equal(t, 0, p.Cursor(), "up at top stays at top")

	for i := 0; i < rows+3; i++ {
		assert.True(t, p.HandleEvent(keyMsg("j")))
	}
	assert.Equal(t, rows-1, p.Cursor(), "down never wraps")
	assert.Equal(t, "README.md", selectedName(t, p))

	assert.True(t, p.HandleEvent(keyMsg("k")))
	assert.Equal(t, "go.mod", selectedName(t, p))
}

func TestFileTree_EnterTogglesDirectory(t *testing.T) {
	p := NewFileTreePanel(true)
	for i := 0; i < 4; i++ {
		p.HandleEvent(keyMsg("down"))
	}
	require.Equal(t, "ui", selectedName(t, p))

	assert.True(t, p.HandleEvent(keyMsg("enter")))
	it, _ := p.Selected()
	assert.True(t, it.Expanded)
	assert.Len(t, p.rows(), 10, "children of ui/ are shown")

	p.HandleEvent(keyMsg("down"))
	assert.Equal(t, "manager.go", selectedName(t, p))

	p.HandleEvent(keyMsg("up"))
	assert.True(t, p.HandleEvent(keyMsg("right")), "right also toggles")
	it, _ = p.Selected()
	assert.False(t, it.Expanded)
	assert.Len(t, p.rows(), 8)
}

func TestFileTree_EnterOnLeafIsNoop(t *testing.T) {
	p := NewFileTreePanel(true)
	p.HandleEvent(keyMsg("down"))
	p.HandleEvent(keyMsg("down"))
	require.Equal(t, "main.go", selectedName(t, p))
	before := append([]FileTreeItem(nil), p.Items()...)

	assert.False(t, p.HandleEvent(keyMsg("enter")))
	assert.Equal(t, before, p.Items())
	assert.Equal(t, 2, p.Cursor())
}

func TestFileTree_CollapseHidesDescendants(t *testing.T) {
	p := NewFileTreePanel(true)
	require.Equal(t, "cmd", selectedName(t, p))

	p.HandleEvent(keyMsg("enter"))

	var names []string
	for _, i := range p.rows() {
		names = append(names, p.items[i].Name)
	}
	assert.Equal(t, []string{"cmd", "internal", "ui", "config", "go.mod", "README.md"}, names)
}

func TestFileTree_SetItemsClampsSelection(t *testing.T) {
	p := NewFileTreePanel(true)
	for i := 0; i < 7; i++ {
		p.HandleEvent(keyMsg("down"))
	}
	require.Equal(t, 7, p.Cursor())

	p.SetItems([]FileTreeItem{{Name: "a"}, {Name: "b"}})
	assert.Equal(t, 1, p.Cursor())

	p.SetItems(nil)
	assert.Equal(t, 0, p.Cursor())
	_, ok := p.Selected()
	assert.False(t, ok)
	assert.True(t, p.HandleEvent(keyMsg("down")))
	assert.Equal(t, 0, p.Cursor())
	assert.False(t, p.HandleEvent(keyMsg("enter")))
}

func TestFileTree_IgnoresOtherInput(t *testing.T) {
	p := NewFileTreePanel(true)
	assert.False(t, p.HandleEvent(keyMsg("x")))
	assert.False(t, p.HandleEvent("not a key"))
}

func TestFileTree_RenderFillsRegion(t *testing.T) {
	p := NewFileTreePanel(true)
	r := ui.Region{Width: 30, Height: 12}

	out := p.Render(r)
	lines := plainLines(out)
	require.Len(t, lines, 12)
	for _, l := range lines {
		assert.Equal(t, 30, lipgloss.Width(l))
	}
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "Files (11)")
	assert.Contains(t, joined, "▾ cmd/")
	assert.Contains(t, joined, "▸ ui/")
	assert.Contains(t, joined, "main.go")
	assert.NotContains(t, joined, "manager.go", "collapsed children are not drawn")
}

func TestFileTree_RenderScrollsToSelection(t *testing.T) {
	p := NewFileTreePanel(true)
	for i := 0; i < 7; i++ {
		p.HandleEvent(keyMsg("down"))
	}
	// 6 rows - border (2) - title (1) = 3 body rows.
	out := strings.Join(plainLines(p.Render(ui.Region{Width: 24, Height: 6})), "\n")
	assert.Contains(t, out, "README.md")
	assert.NotContains(t, out, "cmd/")
}

func TestFileTree_ToggleVisibilityParity(t *testing.T) {
	p := NewFileTreePanel(false)
	for i := 1; i <= 5; i++ {
		p.ToggleVisibility()
		assert.Equal(t, i%2 == 1, p.Visible())
	}
	assert.Equal(t, "Files", p.Title())
}

func TestFileTree_FocusFollowsManager(t *testing.T) {
	p := NewFileTreePanel(true)
	m := ui.NewPanelManager()
	m.Register("filetree", p, ui.PositionLeft)
	assert.False(t, p.Focused())

	require.NoError(t, m.SetActive("filetree"))
	assert.True(t, p.Focused())

	m.ClearActive()
	assert.False(t, p.Focused())
}
