package tabs

// KeyEvent is a raw key press delivered by the bar collaborator.
type KeyEvent struct {
	Key       string // key name, e.g. "right" or "ctrl+c"
	prevented bool
}

// NewKeyEvent wraps a key name in a KeyEvent.
func NewKeyEvent(key string) *KeyEvent {
	return &KeyEvent{Key: key}
}

// PreventDefault marks the event as consumed.
func (e *KeyEvent) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether a handler consumed the event.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.prevented
}

// ScrollTarget is anything with a horizontal scroll offset.
type ScrollTarget interface {
	ScrollLeft() int
	SetScrollLeft(x int)
}

// ScrollEvent is a scroll notification. Target is the element that scrolled;
// CurrentTarget is the element whose handler is running (the outer container).
type ScrollEvent struct {
	Target        ScrollTarget
	CurrentTarget ScrollTarget
}
