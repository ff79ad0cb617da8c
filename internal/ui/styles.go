package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, info
	ColorHighlight = "205" // Magenta - selection, active borders
	ColorDanger    = "196" // Red - errors
	ColorWarning   = "208" // Orange - warnings
	ColorMuted     = "241" // Gray - hints, inactive borders
	ColorText      = "252" // Light gray - normal text
)

// Styles contains shared style definitions used by the host and the panels.
var Styles = struct {
	Title       lipgloss.Style // Panel title
	TitleActive lipgloss.Style // Title of the active panel

	Frame       lipgloss.Style // Border around an inactive panel
	FrameActive lipgloss.Style // Border around the active panel

	Selected lipgloss.Style // Selected list row
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Empty    lipgloss.Style // Empty-state text

	Error   lipgloss.Style // Diagnostic severity classes
	Warning lipgloss.Style
	Info    lipgloss.Style

	HelpBar lipgloss.Style // Leader hint bar
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorMuted)),
	TitleActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Frame: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	FrameActive: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Warning: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Info: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	HelpBar: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
}

// Framed wraps body in a bordered box exactly r.Width x r.Height cells, with
// title on the first inner line. Panels use it to fill their region.
func Framed(title, body string, r Region, active bool) string {
	frame, titleStyle := Styles.Frame, Styles.Title
	if active {
		frame, titleStyle = Styles.FrameActive, Styles.TitleActive
	}
	innerW := r.Width - frame.GetHorizontalFrameSize()
	innerH := r.Height - frame.GetVerticalFrameSize()
	if innerW <= 0 || innerH <= 0 {
		return fitWidth(titleStyle.Render(title), max(r.Width, 0))
	}
	lines := strings.Split(FitToHeight(titleStyle.Render(title)+"\n"+body, innerH), "\n")
	for i, l := range lines {
		lines[i] = fitWidth(l, innerW)
	}
	return frame.Render(strings.Join(lines, "\n"))
}

// ContentSize is the body area Framed leaves inside r once the border and the
// title line are taken.
func ContentSize(r Region) (w, h int) {
	return max(0, r.Width-Styles.Frame.GetHorizontalFrameSize()),
		max(0, r.Height-Styles.Frame.GetVerticalFrameSize()-1)
}

// FitToHeight truncates or pads content to exactly h lines.
func FitToHeight(content string, h int) string {
	if h <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
