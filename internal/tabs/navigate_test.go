package tabs

import "testing"

func panes(defs ...string) []Pane {
	// "A" enabled, "-B" disabled
	out := make([]Pane, 0, len(defs))
	for _, s := range defs {
		p := Pane{Key: s}
		if len(s) > 0 && s[0] == '-' {
			p = Pane{Key: s[1:], Disabled: true}
		}
		out = append(out, p)
	}
	return out
}

func TestNextActiveKey(t *testing.T) {
	tests := []struct {
		name    string
		panes   []Pane
		current string
		step    Step
		want    string
		wantOK  bool
	}{
		{"forward", panes("A", "B", "C"), "A", StepForward, "B", true},
		{"backward", panes("A", "B", "C"), "B", StepBackward, "A", true},
		{"forward wraps", panes("A", "B", "C"), "C", StepForward, "A", true},
		{"backward wraps", panes("A", "B", "C"), "A", StepBackward, "C", true},
		{"skips disabled", panes("A", "-B", "C"), "A", StepForward, "C", true},
		{"skips disabled backward", panes("A", "-B", "C"), "C", StepBackward, "A", true},
		{"wrap past disabled", panes("-X", "A", "B", "-Y"), "B", StepForward, "A", true},
		{"current disabled falls back", panes("A", "-B", "C"), "B", StepForward, "A", true},
		{"current unknown falls back", panes("-A", "B", "C"), "gone", StepBackward, "B", true},
		{"single enabled stays", panes("-A", "B", "-C"), "B", StepForward, "B", true},
		{"all disabled", panes("-A", "-B"), "A", StepForward, "", false},
		{"empty", nil, "A", StepForward, "", false},
		{"duplicate first wins", panes("A", "B", "A", "C"), "B", StepForward, "C", true},
		{"duplicate disabled first", panes("-A", "B", "A"), "B", StepForward, "B", true},
		{"duplicate disabled first from stale", panes("-A", "B", "A", "C"), "A", StepBackward, "B", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextActiveKey(tt.panes, tt.current, tt.step)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("NextActiveKey(%q, %v) = (%q, %v), want (%q, %v)",
					tt.current, tt.step, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNextActiveKey_NeverLandsOnDisabled(t *testing.T) {
	arrangements := [][]Pane{
		panes("-A", "B", "-C", "D", "-E"),
		panes("A", "-B", "-C", "-D", "E"),
		panes("-A", "-B", "C"),
		panes("A", "-B"),
	}
	for _, ps := range arrangements {
		disabled := map[string]bool{}
		for _, p := range ps {
			disabled[p.Key] = p.Disabled
		}
		for _, step := range []Step{StepForward, StepBackward} {
			cur := ps[0].Key
			for i := 0; i < 2*len(ps); i++ {
				next, ok := NextActiveKey(ps, cur, step)
				if !ok {
					t.Fatalf("unexpected no-op for %v", ps)
				}
				if disabled[next] {
					t.Fatalf("navigation from %q (%v) landed on disabled %q", cur, step, next)
				}
				cur = next
			}
		}
	}
}

func TestStepForKey(t *testing.T) {
	tests := []struct {
		key    string
		want   Step
		wantOK bool
	}{
		{"right", StepForward, true},
		{"down", StepForward, true},
		{"left", StepBackward, true},
		{"up", StepBackward, true},
		{"enter", 0, false},
		{"tab", 0, false},
		{"j", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := StepForKey(tt.key)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("StepForKey(%q) = (%v, %v), want (%v, %v)", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStep_String(t *testing.T) {
	tests := []struct {
		input Step
		want  string
	}{
		{StepForward, "forward"},
		{StepBackward, "backward"},
		{Step(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.input.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
