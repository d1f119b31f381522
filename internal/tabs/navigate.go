package tabs

// Step is a keyboard navigation direction.
type Step int

const (
	StepForward  Step = iota // right / down
	StepBackward             // left / up
)

// String returns the human-readable name of the step.
func (s Step) String() string {
	switch s {
	case StepForward:
		return "forward"
	case StepBackward:
		return "backward"
	default:
		return "unknown"
	}
}

// StepForKey maps a key name (as produced by tea.KeyMsg.String) to a
// navigation step. The mapping is the same for ltr and rtl layouts.
func StepForKey(name string) (Step, bool) {
	switch name {
	case "right", "down":
		return StepForward, true
	case "left", "up":
		return StepBackward, true
	}
	return 0, false
}

// enabledKeys returns the keys of non-disabled panes in order. When a key
// appears more than once only its first occurrence counts, so a key whose
// first pane is disabled is left out entirely.
func enabledKeys(panes []Pane) []string {
	keys := make([]string, 0, len(panes))
	seen := make(map[string]bool, len(panes))
	for _, p := range panes {
		if seen[p.Key] {
			continue
		}
		seen[p.Key] = true
		if p.Disabled {
			continue
		}
		keys = append(keys, p.Key)
	}
	return keys
}

// NextActiveKey returns the enabled key after (or before) current, wrapping
// around. Disabled panes are skipped. If current is not an enabled key the
// first enabled key is returned. ok is false when no pane is enabled.
func NextActiveKey(panes []Pane, current string, step Step) (key string, ok bool) {
	keys := enabledKeys(panes)
	n := len(keys)
	if n == 0 {
		return "", false
	}
	for i, k := range keys {
		if k != current {
			continue
		}
		if step == StepForward {
			return keys[(i+1)%n], true
		}
		return keys[(i-1+n)%n], true
	}
	return keys[0], true
}
