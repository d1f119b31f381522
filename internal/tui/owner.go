package tui

// SelectionOwner holds the authoritative active key when the deck runs in
// controlled mode. The tab group only reads it and forwards change requests.
type SelectionOwner interface {
	// ActiveKey returns the owner's current selection.
	ActiveKey() (string, bool)

	// Request records a change request from the tab group. It reports
	// whether the owner will apply it; applying happens in a later turn via
	// Accept.
	Request(key string) bool

	// Accept applies a previously requested key.
	Accept(key string)

	// Locked reports whether the owner rejects every request.
	Locked() bool
}

// owner is the deck's built-in SelectionOwner. A locked owner rejects every
// request, so the selection never moves.
type owner struct {
	key    string
	ok     bool
	locked bool
}

// NewOwner returns the built-in SelectionOwner seeded with initial. An empty
// initial key means nothing is selected.
func NewOwner(initial string, locked bool) SelectionOwner {
	return &owner{key: initial, ok: initial != "", locked: locked}
}

func (o *owner) ActiveKey() (string, bool) {
	return o.key, o.ok
}

func (o *owner) Request(string) bool {
	return !o.locked
}

func (o *owner) Accept(key string) {
	o.key = key
	o.ok = true
}

func (o *owner) Locked() bool {
	return o.locked
}
