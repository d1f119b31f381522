package components

// HScroll is a horizontal scroll offset. It satisfies tabs.ScrollTarget and
// is shared by pointer so that event targets can be compared by identity.
type HScroll struct {
	x     int
	limit int // 0 means unbounded
}

// NewHScroll creates an offset clamped to [0, limit]; limit 0 means unbounded.
func NewHScroll(limit int) *HScroll {
	return &HScroll{limit: limit}
}

// ScrollLeft returns the current offset.
func (s *HScroll) ScrollLeft() int {
	return s.x
}

// SetScrollLeft sets the offset, clamped to the valid range.
func (s *HScroll) SetScrollLeft(x int) {
	if x < 0 {
		x = 0
	}
	if s.limit > 0 && x > s.limit {
		x = s.limit
	}
	s.x = x
}

// ScrollBy moves the offset by dx.
func (s *HScroll) ScrollBy(dx int) {
	s.SetScrollLeft(s.x + dx)
}

// SetMax changes the upper bound and re-clamps the offset.
func (s *HScroll) SetMax(limit int) {
	s.limit = limit
	s.SetScrollLeft(s.x)
}
