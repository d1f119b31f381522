package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// swapLogger replaces L with a buffer-backed logger for the test.
func swapLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	t.Cleanup(func() { L = prev })
	return &buf
}

func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	buf := swapLogger(t)

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q; got: %s", want, out)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    clog.Level
		wantErr bool
	}{
		{"debug", clog.DebugLevel, false},
		{"info", clog.InfoLevel, false},
		{"warn", clog.WarnLevel, false},
		{"error", clog.ErrorLevel, false},
		{"loud", clog.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestSetup_File(t *testing.T) {
	prev := L
	t.Cleanup(func() { L = prev })

	path := filepath.Join(t.TempDir(), "tabdeck.log")
	closeFn, err := Setup("debug", path)
	if err != nil {
		t.Fatal(err)
	}
	Debugf("active key %s", "b")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "active key b") {
		t.Errorf("log file missing message; got %q", data)
	}
}

func TestSetup_NoFile(t *testing.T) {
	prev := L
	t.Cleanup(func() { L = prev })

	closeFn, err := Setup("warn", "")
	if err != nil {
		t.Fatal(err)
	}
	if closeFn == nil || closeFn() != nil {
		t.Error("close func should be a non-nil no-op")
	}
	if L.GetLevel() != clog.WarnLevel {
		t.Errorf("level: got %v, want warn", L.GetLevel())
	}
}

func TestSetup_BadLevel(t *testing.T) {
	if _, err := Setup("loud", ""); err == nil {
		t.Error("expected error for unknown level")
	}
}
