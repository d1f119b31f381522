package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeDeck(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"tabs.controlled", cfg.Tabs.Controlled, false},
		{"tabs.bar_position", cfg.Tabs.BarPosition, "top"},
		{"tabs.direction", cfg.Tabs.Direction, "ltr"},
		{"tabs.destroy_inactive", cfg.Tabs.DestroyInactive, false},
		{"tabs.allow_delete", cfg.Tabs.AllowDelete, false},
		{"tui.accent_color", cfg.TUI.AccentColor, DefaultAccentColor},
		{"tui.alt_screen", cfg.TUI.AltScreen, true},
		{"tui.mouse", cfg.TUI.Mouse, true},
		{"log.level", cfg.Log.Level, "info"},
		{"log.file", cfg.Log.File, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults() should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDeck(t, dir, `
[deck]
name = "Ops"

[tabs]
controlled = true
locked = true
active_key = "b"
destroy_inactive = true
bar_position = "bottom"
direction = "rtl"
allow_delete = true
class_name = "wide"

[tui]
accent_color = "#FF0000"
mouse = false

[log]
level = "debug"
file = "tabdeck.log"

[[pane]]
key = "a"
title = "Alpha"

[[pane]]
title = "Beta"
disabled = true
text = "beta body"
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}

		tests := []struct {
			name string
			got  any
			want any
		}{
			{"deck.name", cfg.Deck.Name, "Ops"},
			{"tabs.controlled", cfg.Tabs.Controlled, true},
			{"tabs.locked", cfg.Tabs.Locked, true},
			{"tabs.active_key", cfg.Tabs.ActiveKey, "b"},
			{"tabs.destroy_inactive", cfg.Tabs.DestroyInactive, true},
			{"tabs.bar_position", cfg.Tabs.BarPosition, "bottom"},
			{"tabs.direction", cfg.Tabs.Direction, "rtl"},
			{"tabs.allow_delete", cfg.Tabs.AllowDelete, true},
			{"tabs.class_name", cfg.Tabs.ClassName, "wide"},
			{"tui.accent_color", cfg.TUI.AccentColor, "#FF0000"},
			{"tui.mouse", cfg.TUI.Mouse, false},
			{"tui.alt_screen (default)", cfg.TUI.AltScreen, true},
			{"log.level", cfg.Log.Level, "debug"},
			{"log.file", cfg.Log.File, "tabdeck.log"},
			{"len(panes)", len(cfg.Panes), 2},
			{"pane[0].key", cfg.Panes[0].Key, "a"},
			{"pane[1].disabled", cfg.Panes[1].Disabled, true},
			{"pane[1].text", cfg.Panes[1].Text, "beta body"},
			{"dir", cfg.Dir(), dir},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if tt.got != tt.want {
					t.Errorf("got %v, want %v", tt.got, tt.want)
				}
			})
		}
	})

	t.Run("partial config uses defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDeck(t, dir, `
[deck]
name = "Partial"
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Tabs.BarPosition != "top" {
			t.Errorf("tabs.bar_position: got %q, want %q (default)", cfg.Tabs.BarPosition, "top")
		}
		if len(cfg.Panes) != 0 {
			t.Errorf("panes: got %d, want 0", len(cfg.Panes))
		}
	})

	t.Run("empty name falls back to directory", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDeck(t, dir, "")
		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Deck.Name != filepath.Base(dir) {
			t.Errorf("deck.name: got %q, want %q", cfg.Deck.Name, filepath.Base(dir))
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		if _, err := Load("/nonexistent/tabdeck.toml"); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("invalid toml returns error", func(t *testing.T) {
		path := writeDeck(t, t.TempDir(), "not valid [[[ toml")
		if _, err := Load(path); err == nil {
			t.Error("expected error for invalid TOML")
		}
	})

	t.Run("unknown keys return error", func(t *testing.T) {
		path := writeDeck(t, t.TempDir(), "[tabs]\nbar_postion = \"top\"\n")
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), "tabs.bar_postion") {
			t.Errorf("expected unknown key error, got %v", err)
		}
	})

	t.Run("invalid values return error", func(t *testing.T) {
		path := writeDeck(t, t.TempDir(), "[tabs]\nbar_position = \"middle\"\n")
		if _, err := Load(path); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"bad position", func(c *Config) { c.Tabs.BarPosition = "middle" }, "tabs.bar_position"},
		{"bad direction", func(c *Config) { c.Tabs.Direction = "ttb" }, "tabs.direction"},
		{"locked without controlled", func(c *Config) { c.Tabs.Locked = true }, "tabs.locked"},
		{"active key without controlled", func(c *Config) { c.Tabs.ActiveKey = "a" }, "tabs.active_key"},
		{"bad accent", func(c *Config) { c.TUI.AccentColor = "purple" }, "tui.accent_color"},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"text and file", func(c *Config) {
			c.Panes = []PaneConfig{{Text: "x", File: "y"}}
		}, "pane[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_CollectsAllIssues(t *testing.T) {
	cfg := Defaults()
	cfg.Tabs.BarPosition = "middle"
	cfg.Log.Level = "trace"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"tabs.bar_position", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestDuplicateKeys(t *testing.T) {
	cfg := Defaults()
	cfg.Panes = []PaneConfig{{Key: "a"}, {Key: "b"}, {}, {Key: "a"}, {}, {Key: "a"}, {Key: "b"}}
	got := cfg.DuplicateKeys()
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("DuplicateKeys() = %v, want [a b]", got)
	}
}

func TestLoadAutoDiscovery(t *testing.T) {
	t.Run("finds tabdeck.toml in parent directory", func(t *testing.T) {
		root := t.TempDir()
		child := filepath.Join(root, "sub", "dir")
		if err := os.MkdirAll(child, 0755); err != nil {
			t.Fatal(err)
		}
		writeDeck(t, root, "[deck]\nname = \"FoundIt\"\n")

		origDir, _ := os.Getwd()
		t.Cleanup(func() { os.Chdir(origDir) })
		if err := os.Chdir(child); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Deck.Name != "FoundIt" {
			t.Errorf("deck.name: got %q, want %q", cfg.Deck.Name, "FoundIt")
		}
	})

	t.Run("returns error when tabdeck.toml not found anywhere", func(t *testing.T) {
		dir := t.TempDir()
		origDir, _ := os.Getwd()
		t.Cleanup(func() { os.Chdir(origDir) })
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}

		if _, err := Load(""); err == nil {
			t.Error("expected error when tabdeck.toml not found")
		}
	})
}

func TestInitFile(t *testing.T) {
	t.Run("creates tabdeck.toml", func(t *testing.T) {
		dir := t.TempDir()
		path, err := InitFile(dir)
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(path) != FileName {
			t.Errorf("expected %s, got %s", FileName, filepath.Base(path))
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("generated file is not valid: %v", err)
		}
		if len(cfg.Panes) != 3 {
			t.Errorf("panes: got %d, want 3", len(cfg.Panes))
		}
		if !cfg.Panes[2].Disabled {
			t.Error("third template pane should be disabled")
		}
	})

	t.Run("refuses to overwrite existing", func(t *testing.T) {
		dir := t.TempDir()
		writeDeck(t, dir, "existing")
		if _, err := InitFile(dir); err == nil {
			t.Error("expected error when tabdeck.toml already exists")
		}
	})
}
