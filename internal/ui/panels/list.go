package panels

// selection is a cursor over n rows with a scroll offset.
// After every method call, cursor is in [0, n-1] (0 when n == 0) and offset
// keeps the cursor inside a window of the last rendered height.
type selection struct {
	cursor int
	offset int
}

// move shifts the cursor by delta, clamped to [0, n-1]. Never wraps.
// Returns true if the cursor changed.
func (s *selection) move(delta, n int) bool {
	prev := s.cursor
	s.cursor += delta
	s.clamp(n)
	return s.cursor != prev
}

// clamp restores the cursor invariant for a list of n rows.
func (s *selection) clamp(n int) {
	if n <= 0 {
		s.cursor = 0
		s.offset = 0
		return
	}
	s.cursor = max(0, min(s.cursor, n-1))
	s.offset = max(0, min(s.offset, n-1))
}

// window returns the [start, end) row range to draw for a viewport of h rows,
// scrolling just enough to keep the cursor visible.
func (s *selection) window(h, n int) (int, int) {
	s.clamp(n)
	if h <= 0 || n == 0 {
		return 0, 0
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+h {
		s.offset = s.cursor - h + 1
	}
	if s.offset+h > n {
		s.offset = max(0, n-h)
	}
	return s.offset, min(n, s.offset+h)
}
