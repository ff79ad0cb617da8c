package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"devdash/internal/ui"
)

// DefaultScrollback is the number of lines a TerminalPanel keeps.
const DefaultScrollback = 1000

// TerminalPanel displays process output. It never consumes input.
type TerminalPanel struct {
	base
	lines      []string
	scrollback int
}

var _ ui.Panel = (*TerminalPanel)(nil)

// NewTerminalPanel creates a terminal view over a sample session transcript.
func NewTerminalPanel(visible bool) *TerminalPanel {
	return &TerminalPanel{
		base: base{visible: visible},
		lines: []string{
			"$ go build ./...",
			"$ go test ./internal/...",
			"ok  \tdevdash/internal/ui\t0.012s",
			"ok  \tdevdash/internal/ui/panels\t0.009s",
			"$ ",
		},
		scrollback: DefaultScrollback,
	}
}

// Title implements ui.Panel.
func (p *TerminalPanel) Title() string { return "Terminal" }

// SetScrollback bounds the number of retained lines. n <= 0 means unbounded.
func (p *TerminalPanel) SetScrollback(n int) {
	p.scrollback = n
	p.trim()
}

// AppendLines adds output lines, dropping the oldest beyond the scrollback.
func (p *TerminalPanel) AppendLines(lines ...string) {
	p.lines = append(p.lines, lines...)
	p.trim()
}

// Clear drops all output.
func (p *TerminalPanel) Clear() {
	p.lines = nil
}

// Lines returns the retained output.
func (p *TerminalPanel) Lines() []string {
	return p.lines
}

func (p *TerminalPanel) trim() {
	if p.scrollback > 0 && len(p.lines) > p.scrollback {
		p.lines = append([]string(nil), p.lines[len(p.lines)-p.scrollback:]...)
	}
}

// HandleEvent implements ui.Panel. The terminal is display-only.
func (p *TerminalPanel) HandleEvent(tea.Msg) bool {
	return false
}

// Render implements ui.Panel. Output is shown as one joined block; when it is
// taller than the region the newest lines win.
func (p *TerminalPanel) Render(r ui.Region) string {
	_, h := innerSize(r)
	lines := p.lines
	if len(lines) > h {
		lines = lines[len(lines)-h:]
	}
	return ui.Framed(p.Title(), ui.Styles.Normal.Render(strings.Join(lines, "\n")), r, p.focused)
}
