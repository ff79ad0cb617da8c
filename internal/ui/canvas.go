package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Canvas is a per-frame render target. Panels' rendered blocks are placed into
// regions and composed into a single frame string by String.
// A Canvas is only valid for one frame; create a new one per View call.
type Canvas struct {
	width  int
	height int
	rows   [][]segment
}

type segment struct {
	x    int
	text string
}

// NewCanvas creates a blank canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		width:  width,
		height: height,
		rows:   make([][]segment, height),
	}
}

// Bounds returns the full canvas region anchored at the origin.
func (c *Canvas) Bounds() Region {
	return Region{Width: c.width, Height: c.height}
}

// Draw places content into r. Lines are truncated or padded to r.Width and
// the block is cut or padded to r.Height. Parts of r outside the canvas are
// clipped.
func (c *Canvas) Draw(r Region, content string) {
	r = clip(r, c.Bounds())
	if r.Empty() {
		return
	}
	lines := strings.Split(content, "\n")
	for i := 0; i < r.Height; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		row := r.Y + i
		c.rows[row] = append(c.rows[row], segment{x: r.X, text: fitWidth(line, r.Width)})
	}
}

// String composes the frame. Where two drawn blocks overlap on a row, the one
// starting further left keeps the shared cells.
func (c *Canvas) String() string {
	out := make([]string, c.height)
	for y, segs := range c.rows {
		sort.SliceStable(segs, func(i, j int) bool { return segs[i].x < segs[j].x })
		var b strings.Builder
		cursor := 0
		for _, s := range segs {
			text := s.text
			if s.x < cursor {
				text = ansi.TruncateLeft(text, cursor-s.x, "")
			} else if s.x > cursor {
				b.WriteString(strings.Repeat(" ", s.x-cursor))
				cursor = s.x
			}
			b.WriteString(text)
			cursor += lipgloss.Width(text)
		}
		if cursor < c.width {
			b.WriteString(strings.Repeat(" ", c.width-cursor))
		}
		out[y] = b.String()
	}
	return strings.Join(out, "\n")
}

// fitWidth truncates or right-pads s to exactly w cells, ANSI-aware.
func fitWidth(s string, w int) string {
	if lipgloss.Width(s) > w {
		s = ansi.Truncate(s, w, "")
	}
	if pad := w - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func clip(r, bounds Region) Region {
	x0 := max(r.X, bounds.X)
	y0 := max(r.Y, bounds.Y)
	x1 := min(r.X+r.Width, bounds.X+bounds.Width)
	y1 := min(r.Y+r.Height, bounds.Y+bounds.Height)
	if x1 <= x0 || y1 <= y0 {
		return Region{}
	}
	return Region{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
