package ui

// PanelLayout maps panel IDs to the position they were registered at.
type PanelLayout struct {
	positions map[string]Position
}

// NewPanelLayout creates an empty layout table.
func NewPanelLayout() *PanelLayout {
	return &PanelLayout{positions: make(map[string]Position)}
}

// Set records the position for id, replacing any previous entry.
func (l *PanelLayout) Set(id string, pos Position) {
	l.positions[id] = pos
}

// Get returns the position for id.
func (l *PanelLayout) Get(id string) (Position, bool) {
	pos, ok := l.positions[id]
	return pos, ok
}

// HasVisible reports whether at least one id at pos is visible.
// ComputeLayout only carves space for positions where this holds.
func (l *PanelLayout) HasVisible(pos Position, visible func(id string) bool) bool {
	for id, p := range l.positions {
		if p == pos && visible(id) {
			return true
		}
	}
	return false
}
