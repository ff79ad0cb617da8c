package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"devdash/internal/ui"
	"devdash/internal/ui/textutil"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Icon returns the glyph shown before a diagnostic of this severity.
func (s Severity) Icon() string {
	switch s {
	case SeverityError:
		return "✖"
	case SeverityWarning:
		return "⚠"
	default:
		return "ℹ"
	}
}

// Style returns the color class for this severity.
func (s Severity) Style() lipgloss.Style {
	switch s {
	case SeverityError:
		return ui.Styles.Error
	case SeverityWarning:
		return ui.Styles.Warning
	default:
		return ui.Styles.Info
	}
}

// Diagnostic is one finding reported against a source location.
type Diagnostic struct {
	Message  string
	File     string
	Line     int
	Severity Severity
}

// Location formats File:Line.
func (d Diagnostic) Location() string {
	return fmt.Sprintf("%s:%d", d.File, d.Line)
}

// DiagnosticsPanel lists diagnostics with a single selection.
type DiagnosticsPanel struct {
	base
	diags []Diagnostic
	sel   selection
	keys  KeyMap
}

var _ ui.Panel = (*DiagnosticsPanel)(nil)

// NewDiagnosticsPanel creates a diagnostics list over sample findings.
func NewDiagnosticsPanel(visible bool) *DiagnosticsPanel {
	return &DiagnosticsPanel{
		base:  base{visible: visible},
		diags: sampleDiagnostics(),
		keys:  DefaultKeyMap(),
	}
}

func sampleDiagnostics() []Diagnostic {
	return []Diagnostic{
		{Message: "undefined: renderFrame", File: "internal/ui/app.go", Line: 42, Severity: SeverityError},
		{Message: "result of fmt.Sprintf call not used", File: "internal/ui/panels/terminal.go", Line: 17, Severity: SeverityWarning},
		{Message: "exported function NewCanvas should have comment", File: "internal/ui/canvas.go", Line: 23, Severity: SeverityInfo},
		{Message: "ineffectual assignment to err", File: "internal/config/config.go", Line: 88, Severity: SeverityWarning},
	}
}

// Title implements ui.Panel.
func (p *DiagnosticsPanel) Title() string { return "Diagnostics" }

// SetDiagnostics replaces the list. The selection is clamped to the new length.
func (p *DiagnosticsPanel) SetDiagnostics(diags []Diagnostic) {
	p.diags = diags
	p.sel.clamp(len(p.diags))
}

// Diagnostics returns the current list.
func (p *DiagnosticsPanel) Diagnostics() []Diagnostic {
	return p.diags
}

// Cursor returns the selection index.
func (p *DiagnosticsPanel) Cursor() int {
	return p.sel.cursor
}

// Counts returns how many diagnostics there are per severity.
func (p *DiagnosticsPanel) Counts() map[Severity]int {
	out := make(map[Severity]int, 3)
	for _, d := range p.diags {
		out[d.Severity]++
	}
	return out
}

// HandleEvent implements ui.Panel. Only vertical movement is handled.
func (p *DiagnosticsPanel) HandleEvent(msg tea.Msg) bool {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	switch {
	case key.Matches(km, p.keys.Up):
		p.sel.move(-1, len(p.diags))
		return true
	case key.Matches(km, p.keys.Down):
		p.sel.move(1, len(p.diags))
		return true
	}
	return false
}

// Render implements ui.Panel.
func (p *DiagnosticsPanel) Render(r ui.Region) string {
	c := p.Counts()
	title := fmt.Sprintf("%s  %s %d  %s %d  %s %d", p.Title(),
		SeverityError.Icon(), c[SeverityError],
		SeverityWarning.Icon(), c[SeverityWarning],
		SeverityInfo.Icon(), c[SeverityInfo])
	if len(p.diags) == 0 {
		return ui.Framed(title, ui.Styles.Empty.Render("No problems"), r, p.focused)
	}

	w, h := innerSize(r)
	start, end := p.sel.window(h, len(p.diags))
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		d := p.diags[i]
		icon := d.Severity.Style().Render(d.Severity.Icon())
		text := textutil.Truncate(d.Location()+"  "+d.Message, max(0, w-2))
		if i == p.sel.cursor {
			text = ui.Styles.Selected.Render(text)
		} else {
			text = ui.Styles.Normal.Render(text)
		}
		lines = append(lines, icon+" "+text)
	}
	return ui.Framed(title, strings.Join(lines, "\n"), r, p.focused)
}
