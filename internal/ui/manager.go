package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ErrPanelNotFound is returned by every lookup by an unregistered panel ID.
var ErrPanelNotFound = errors.New("panel not found")

// Default extents in character cells.
const (
	DefaultLeftWidth    = 30
	DefaultRightWidth   = 30
	DefaultBottomHeight = 10
)

// PanelManager owns every registered panel, the position table and the active
// panel ID. It allocates screen regions per frame and routes input.
//
// All methods must be called from a single goroutine (the Bubble Tea Update/View
// loop); none of them block.
type PanelManager struct {
	panels map[string]Panel
	order  []string // registration order; drives render and dispatch order
	layout *PanelLayout

	active    string
	hasActive bool

	LeftWidth    int
	RightWidth   int
	BottomHeight int

	tracer oteltrace.Tracer
}

// ManagerOption configures a PanelManager.
type ManagerOption func(*PanelManager)

// WithLeftWidth sets the width of the Left column.
func WithLeftWidth(w int) ManagerOption {
	return func(m *PanelManager) { m.LeftWidth = w }
}

// WithRightWidth sets the width of the Right column.
func WithRightWidth(w int) ManagerOption {
	return func(m *PanelManager) { m.RightWidth = w }
}

// WithBottomHeight sets the height of the Bottom row.
func WithBottomHeight(h int) ManagerOption {
	return func(m *PanelManager) { m.BottomHeight = h }
}

// WithTracer records a span per Dispatch and Render call.
func WithTracer(t oteltrace.Tracer) ManagerOption {
	return func(m *PanelManager) {
		if t != nil {
			m.tracer = t
		}
	}
}

// NewPanelManager creates an empty manager with default extents.
func NewPanelManager(opts ...ManagerOption) *PanelManager {
	m := &PanelManager{
		panels:       make(map[string]Panel),
		layout:       NewPanelLayout(),
		LeftWidth:    DefaultLeftWidth,
		RightWidth:   DefaultRightWidth,
		BottomHeight: DefaultBottomHeight,
		tracer:       noop.NewTracerProvider().Tracer("devdash/ui"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register stores p under id at pos. Re-registering an id replaces the previous
// instance, which is discarded; the id keeps its original slot in the order.
// A visible panel takes over its position: any other visible panel there is hidden.
func (m *PanelManager) Register(id string, p Panel, pos Position) {
	if _, exists := m.panels[id]; exists {
		log.Printf("panel %q re-registered at %s; previous instance discarded", id, pos)
	} else {
		m.order = append(m.order, id)
	}
	m.panels[id] = p
	m.layout.Set(id, pos)
	if m.hasActive && m.active == id {
		focus(p)
	}
	if p.Visible() {
		m.hideSiblings(id, pos)
	}
}

// SetActive records id as the panel with first refusal on input. The id is kept
// even when it is not registered (it is resolved at dispatch time), but an
// unregistered id is reported with ErrPanelNotFound.
func (m *PanelManager) SetActive(id string) error {
	if m.hasActive && m.active != id {
		blur(m.panels[m.active])
	}
	m.active = id
	m.hasActive = true
	focus(m.panels[id])
	if _, ok := m.panels[id]; !ok {
		return fmt.Errorf("set active %q: %w", id, ErrPanelNotFound)
	}
	return nil
}

// ClearActive removes the active panel.
func (m *PanelManager) ClearActive() {
	if m.hasActive {
		blur(m.panels[m.active])
	}
	m.active = ""
	m.hasActive = false
}

// Active returns the active panel ID, if one is set.
func (m *PanelManager) Active() (string, bool) {
	return m.active, m.hasActive
}

// Toggle flips the visibility of the panel at id. Showing a panel hides any other
// visible panel at the same position.
func (m *PanelManager) Toggle(id string) error {
	p, ok := m.panels[id]
	if !ok {
		return fmt.Errorf("toggle %q: %w", id, ErrPanelNotFound)
	}
	p.ToggleVisibility()
	if p.Visible() {
		pos, _ := m.layout.Get(id)
		m.hideSiblings(id, pos)
	}
	return nil
}

func focus(p Panel) {
	if f, ok := p.(Focusable); ok {
		f.Focus()
	}
}

func blur(p Panel) {
	if f, ok := p.(Focusable); ok {
		f.Blur()
	}
}

// hideSiblings enforces at most one visible panel per position.
func (m *PanelManager) hideSiblings(id string, pos Position) {
	for _, other := range m.order {
		if other == id {
			continue
		}
		if p, _ := m.layout.Get(other); p != pos {
			continue
		}
		if op := m.panels[other]; op.Visible() {
			op.ToggleVisibility()
			log.Printf("panel %q hidden: %q now occupies %s", other, id, pos)
		}
	}
}

// Panel returns the panel registered at id.
func (m *PanelManager) Panel(id string) (Panel, error) {
	p, ok := m.panels[id]
	if !ok {
		return nil, fmt.Errorf("panel %q: %w", id, ErrPanelNotFound)
	}
	return p, nil
}

// Position returns the position id was registered at.
func (m *PanelManager) Position(id string) (Position, error) {
	pos, ok := m.layout.Get(id)
	if !ok {
		return 0, fmt.Errorf("position of %q: %w", id, ErrPanelNotFound)
	}
	return pos, nil
}

// IDs returns registered panel IDs in registration order.
func (m *PanelManager) IDs() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// VisibleIDs returns visible panel IDs in registration order.
func (m *PanelManager) VisibleIDs() []string {
	var out []string
	for _, id := range m.order {
		if m.panels[id].Visible() {
			out = append(out, id)
		}
	}
	return out
}

// Len returns the number of registered panels.
func (m *PanelManager) Len() int {
	return len(m.order)
}

func (m *PanelManager) isVisible(id string) bool {
	p, ok := m.panels[id]
	return ok && p.Visible()
}

// ComputeLayout splits total into per-position regions. Carving order is fixed:
// Left column, Right column from what remains, Bottom row from what remains
// (so it spans the reduced width), and the rest is Floating. Positions with no
// visible panel take no space. Floating is always present.
func (m *PanelManager) ComputeLayout(total Region) map[Position]Region {
	out := make(map[Position]Region, len(Positions))
	rest := total

	if m.layout.HasVisible(PositionLeft, m.isVisible) {
		w := clampExtent(m.LeftWidth, rest.Width)
		out[PositionLeft] = Region{X: rest.X, Y: rest.Y, Width: w, Height: rest.Height}
		rest.X += w
		rest.Width -= w
	}
	if m.layout.HasVisible(PositionRight, m.isVisible) {
		w := clampExtent(m.RightWidth, rest.Width)
		out[PositionRight] = Region{X: rest.X + rest.Width - w, Y: rest.Y, Width: w, Height: rest.Height}
		rest.Width -= w
	}
	if m.layout.HasVisible(PositionBottom, m.isVisible) {
		h := clampExtent(m.BottomHeight, rest.Height)
		out[PositionBottom] = Region{X: rest.X, Y: rest.Y + rest.Height - h, Width: rest.Width, Height: h}
		rest.Height -= h
	}
	out[PositionFloating] = rest
	return out
}

// RegionOf returns the region id would be drawn into within total. It reports
// false when id is unknown, hidden, or its region is empty.
func (m *PanelManager) RegionOf(id string, total Region) (Region, bool) {
	if !m.isVisible(id) {
		return Region{}, false
	}
	pos, _ := m.layout.Get(id)
	r, ok := m.ComputeLayout(total)[pos]
	if !ok || r.Empty() {
		return Region{}, false
	}
	return r, true
}

func clampExtent(want, avail int) int {
	if avail < 0 {
		return 0
	}
	return max(0, min(want, avail))
}

// Render lays out c's full area and draws every visible panel into the region
// for its position, in registration order.
func (m *PanelManager) Render(c *Canvas) {
	_, span := m.tracer.Start(context.Background(), "panels.render")
	defer span.End()

	regions := m.ComputeLayout(c.Bounds())
	drawn := 0
	for _, id := range m.order {
		p := m.panels[id]
		if !p.Visible() {
			continue
		}
		pos, _ := m.layout.Get(id)
		r, ok := regions[pos]
		if !ok || r.Empty() {
			continue
		}
		c.Draw(r, p.Render(r))
		drawn++
	}
	span.SetAttributes(
		attribute.Int("canvas.width", c.width),
		attribute.Int("canvas.height", c.height),
		attribute.Int("panels.drawn", drawn),
	)
}

// Dispatch offers msg to the active panel first (if set and registered, visible
// or not), then to every other visible panel in registration order. It returns
// true as soon as one consumes msg, false if none do.
func (m *PanelManager) Dispatch(msg tea.Msg) bool {
	_, span := m.tracer.Start(context.Background(), "panels.dispatch")
	defer span.End()

	consumer, ok := m.dispatch(msg)
	span.SetAttributes(attribute.Bool("panels.consumed", ok))
	if ok {
		span.SetAttributes(attribute.String("panels.consumer", consumer))
	}
	return ok
}

func (m *PanelManager) dispatch(msg tea.Msg) (string, bool) {
	if m.hasActive {
		if p, ok := m.panels[m.active]; ok && p.HandleEvent(msg) {
			return m.active, true
		}
	}
	for _, id := range m.order {
		if m.hasActive && id == m.active {
			continue
		}
		p := m.panels[id]
		if p.Visible() && p.HandleEvent(msg) {
			return id, true
		}
	}
	return "", false
}
