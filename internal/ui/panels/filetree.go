package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"devdash/internal/ui"
	"devdash/internal/ui/textutil"
)

// FileTreeItem is one row of the tree. Depth is the nesting level; children
// directly follow their directory with a greater Depth.
type FileTreeItem struct {
	Name        string
	Path        string
	IsDirectory bool
	Depth       int
	Expanded    bool
}

// FileTreePanel shows a collapsible file tree with a single selection.
type FileTreePanel struct {
	base
	items []FileTreeItem
	sel   selection
	keys  KeyMap
}

var _ ui.Panel = (*FileTreePanel)(nil)

// NewFileTreePanel creates a file tree over the sample project layout.
func NewFileTreePanel(visible bool) *FileTreePanel {
	return &FileTreePanel{
		base:  base{visible: visible},
		items: sampleFileTree(),
		keys:  DefaultKeyMap(),
	}
}

func sampleFileTree() []FileTreeItem {
	return []FileTreeItem{
		{Name: "cmd", Path: "cmd", IsDirectory: true, Depth: 0, Expanded: true},
		{Name: "devdash", Path: "cmd/devdash", IsDirectory: true, Depth: 1, Expanded: true},
		{Name: "main.go", Path: "cmd/devdash/main.go", Depth: 2},
		{Name: "internal", Path: "internal", IsDirectory: true, Depth: 0, Expanded: true},
		{Name: "ui", Path: "internal/ui", IsDirectory: true, Depth: 1, Expanded: false},
		{Name: "manager.go", Path: "internal/ui/manager.go", Depth: 2},
		{Name: "panel.go", Path: "internal/ui/panel.go", Depth: 2},
		{Name: "config", Path: "internal/config", IsDirectory: true, Depth: 1, Expanded: false},
		{Name: "config.go", Path: "internal/config/config.go", Depth: 2},
		{Name: "go.mod", Path: "go.mod", Depth: 0},
		{Name: "README.md", Path: "README.md", Depth: 0},
	}
}

// Title implements ui.Panel.
func (p *FileTreePanel) Title() string { return "Files" }

// SetItems replaces the tree. The selection is clamped to the new rows.
func (p *FileTreePanel) SetItems(items []FileTreeItem) {
	p.items = items
	p.sel.clamp(len(p.rows()))
}

// Items returns the full tree, including rows hidden under collapsed directories.
func (p *FileTreePanel) Items() []FileTreeItem {
	return p.items
}

// Cursor returns the selection index into the shown rows.
func (p *FileTreePanel) Cursor() int {
	return p.sel.cursor
}

// Selected returns the selected item, false when the tree is empty.
func (p *FileTreePanel) Selected() (FileTreeItem, bool) {
	rows := p.rows()
	if len(rows) == 0 {
		return FileTreeItem{}, false
	}
	return p.items[rows[p.sel.cursor]], true
}

// rows returns indexes into items that are shown: every item not nested under
// a collapsed directory.
func (p *FileTreePanel) rows() []int {
	rows := make([]int, 0, len(p.items))
	hideBelow := -1 // depth of the collapsed ancestor, -1 when none
	for i, it := range p.items {
		if hideBelow >= 0 {
			if it.Depth > hideBelow {
				continue
			}
			hideBelow = -1
		}
		rows = append(rows, i)
		if it.IsDirectory && !it.Expanded {
			hideBelow = it.Depth
		}
	}
	return rows
}

// HandleEvent implements ui.Panel. Up/down move the selection; enter/right
// expand or collapse the selected directory.
func (p *FileTreePanel) HandleEvent(msg tea.Msg) bool {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	rows := p.rows()
	switch {
	case key.Matches(km, p.keys.Up):
		p.sel.move(-1, len(rows))
		return true
	case key.Matches(km, p.keys.Down):
		p.sel.move(1, len(rows))
		return true
	case key.Matches(km, p.keys.Toggle):
		if len(rows) == 0 {
			return false
		}
		it := &p.items[rows[p.sel.cursor]]
		if !it.IsDirectory {
			return false
		}
		it.Expanded = !it.Expanded
		p.sel.clamp(len(p.rows()))
		return true
	}
	return false
}

// Render implements ui.Panel.
func (p *FileTreePanel) Render(r ui.Region) string {
	w, h := innerSize(r)
	rows := p.rows()
	if len(rows) == 0 {
		return ui.Framed(p.Title(), ui.Styles.Empty.Render("(empty)"), r, p.focused)
	}
	start, end := p.sel.window(h, len(rows))
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		it := p.items[rows[i]]
		marker := "  "
		if it.IsDirectory {
			marker = "▸ "
			if it.Expanded {
				marker = "▾ "
			}
		}
		name := it.Name
		if it.IsDirectory {
			name += "/"
		}
		line := textutil.Truncate(textutil.Indent(it.Depth)+marker+name, w)
		if i == p.sel.cursor {
			line = ui.Styles.Selected.Render(line)
		} else if it.IsDirectory {
			line = ui.Styles.Info.Render(line)
		} else {
			line = ui.Styles.Normal.Render(line)
		}
		lines = append(lines, line)
	}
	title := fmt.Sprintf("%s (%d)", p.Title(), len(p.items))
	return ui.Framed(title, strings.Join(lines, "\n"), r, p.focused)
}

func innerSize(r ui.Region) (w, h int) {
	return ui.ContentSize(r)
}
