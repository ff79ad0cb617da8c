package ui

// FocusNext makes the next visible panel (in registration order) active and
// returns its ID. With no visible panels the active panel is left unchanged
// and "" is returned.
func (m *PanelManager) FocusNext() string {
	return m.cycleFocus(1)
}

// FocusPrev is FocusNext in reverse.
func (m *PanelManager) FocusPrev() string {
	return m.cycleFocus(-1)
}

func (m *PanelManager) cycleFocus(step int) string {
	order := m.VisibleIDs()
	if len(order) == 0 {
		return ""
	}
	idx := -1
	if m.hasActive {
		for i, id := range order {
			if id == m.active {
				idx = i
				break
			}
		}
	}
	var next int
	switch {
	case idx < 0 && step < 0:
		next = len(order) - 1
	case idx < 0:
		next = 0
	default:
		next = (idx + step + len(order)) % len(order)
	}
	// order only holds registered IDs, so SetActive cannot fail here.
	_ = m.SetActive(order[next])
	return order[next]
}
