package tabs

// Mode identifies who owns the active key.
type Mode int

const (
	ModeUncontrolled Mode = iota // the controller owns the key
	ModeControlled               // an external owner supplies the key
)

// String returns the human-readable name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeUncontrolled:
		return "uncontrolled"
	case ModeControlled:
		return "controlled"
	default:
		return "unknown"
	}
}

// ValueFunc reports the externally owned active key. ok is false when the
// owner has no selection.
type ValueFunc func() (key string, ok bool)

// Fixed returns a ValueFunc that always reports key.
func Fixed(key string) ValueFunc {
	return func() (string, bool) { return key, true }
}

// Selection holds the active key. Its mode is fixed at construction.
type Selection interface {
	Mode() Mode
	// Read returns the current active key.
	Read() (key string, ok bool)
	// Write requests key as the new active key and calls the change callback
	// exactly once.
	Write(key string)
}

type controlled struct {
	value    ValueFunc
	onChange func(string)
}

// Controlled returns a Selection whose value always comes from value. Write
// never stores anything; it only forwards the request to onChange.
func Controlled(value ValueFunc, onChange func(string)) Selection {
	return &controlled{value: value, onChange: onChange}
}

func (c *controlled) Mode() Mode { return ModeControlled }

func (c *controlled) Read() (string, bool) {
	return c.value()
}

func (c *controlled) Write(key string) {
	if c.onChange != nil {
		c.onChange(key)
	}
}

type uncontrolled struct {
	key      string
	ok       bool
	onChange func(string)
}

// Uncontrolled returns a Selection that stores the key itself, seeded with
// initial (absent when ok is false).
func Uncontrolled(initial string, ok bool, onChange func(string)) Selection {
	return &uncontrolled{key: initial, ok: ok, onChange: onChange}
}

func (u *uncontrolled) Mode() Mode { return ModeUncontrolled }

func (u *uncontrolled) Read() (string, bool) {
	return u.key, u.ok
}

func (u *uncontrolled) Write(key string) {
	u.key = key
	u.ok = true
	if u.onChange != nil {
		u.onChange(key)
	}
}
