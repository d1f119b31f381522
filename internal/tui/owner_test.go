package tui

import "testing"

func TestOwner(t *testing.T) {
	tests := []struct {
		name        string
		initial     string
		locked      bool
		wantRequest bool
		wantKey     string
		wantOK      bool
	}{
		{name: "unlocked", initial: "a", wantRequest: true, wantKey: "a", wantOK: true},
		{name: "locked", initial: "a", locked: true, wantKey: "a", wantOK: true},
		{name: "empty seed", wantRequest: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOwner(tt.initial, tt.locked)
			if o.Locked() != tt.locked {
				t.Errorf("Locked() = %v, want %v", o.Locked(), tt.locked)
			}
			if got := o.Request("b"); got != tt.wantRequest {
				t.Errorf("Request(b) = %v, want %v", got, tt.wantRequest)
			}
			if k, ok := o.ActiveKey(); k != tt.wantKey || ok != tt.wantOK {
				t.Errorf("ActiveKey() = %q, %v, want %q, %v", k, ok, tt.wantKey, tt.wantOK)
			}
		})
	}
}

func TestOwner_Accept(t *testing.T) {
	o := NewOwner("", false)
	o.Accept("c")
	if k, ok := o.ActiveKey(); !ok || k != "c" {
		t.Errorf("after Accept ActiveKey() = %q, %v, want c, true", k, ok)
	}
}

var _ SelectionOwner = (*owner)(nil)
