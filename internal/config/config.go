// Package config parses tabdeck.toml deck configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the deck file looked up when no path is given.
const FileName = "tabdeck.toml"

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level tabdeck.toml configuration.
type Config struct {
	Deck  DeckConfig   `toml:"deck"`
	Tabs  TabsConfig   `toml:"tabs"`
	TUI   TUIConfig    `toml:"tui"`
	Log   LogConfig    `toml:"log"`
	Panes []PaneConfig `toml:"pane"`

	// dir is the directory the deck file was loaded from; pane files are
	// resolved against it.
	dir string
}

// DeckConfig identifies the deck.
type DeckConfig struct {
	Name string `toml:"name"`
}

// TabsConfig controls selection behaviour and collaborator options.
type TabsConfig struct {
	Controlled       bool   `toml:"controlled"` // selection owned outside the tab group
	Locked           bool   `toml:"locked"`     // controlled owner rejects every change
	ActiveKey        string `toml:"active_key"`
	DefaultActiveKey string `toml:"default_active_key"`
	DestroyInactive  bool   `toml:"destroy_inactive"`
	BarPosition      string `toml:"bar_position"` // top, bottom, left, right
	Direction        string `toml:"direction"`    // ltr, rtl
	AllowDelete      bool   `toml:"allow_delete"`
	ClassName        string `toml:"class_name"`
}

// TUIConfig controls the terminal UI appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
	AltScreen   bool   `toml:"alt_screen"`
	Mouse       bool   `toml:"mouse"`
}

// LogConfig controls the debug log. The TUI owns the terminal, so logs go
// to a file; an empty file disables logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// PaneConfig describes one pane. Text and File are mutually exclusive.
type PaneConfig struct {
	Key      string `toml:"key"`
	Title    string `toml:"title"`
	Disabled bool   `toml:"disabled"`
	Text     string `toml:"text"`
	File     string `toml:"file"`
}

var (
	validPositions  = []string{"top", "bottom", "left", "right"}
	validDirections = []string{"ltr", "rtl"}
	validLevels     = []string{"debug", "info", "warn", "error"}
)

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// Validate checks the configuration for issues that would cause confusing
// runtime behaviour. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if !oneOf(c.Tabs.BarPosition, validPositions) {
		errs = append(errs, fmt.Errorf("tabs.bar_position must be one of %s", strings.Join(validPositions, ", ")))
	}
	if !oneOf(c.Tabs.Direction, validDirections) {
		errs = append(errs, fmt.Errorf("tabs.direction must be ltr or rtl"))
	}
	if c.Tabs.Locked && !c.Tabs.Controlled {
		errs = append(errs, fmt.Errorf("tabs.locked requires tabs.controlled = true"))
	}
	if !c.Tabs.Controlled && c.Tabs.ActiveKey != "" {
		errs = append(errs, fmt.Errorf("tabs.active_key is only used when tabs.controlled = true (use default_active_key)"))
	}

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}
	if !oneOf(c.Log.Level, validLevels) {
		errs = append(errs, fmt.Errorf("log.level must be one of %s", strings.Join(validLevels, ", ")))
	}

	for i, p := range c.Panes {
		if p.Text != "" && p.File != "" {
			errs = append(errs, fmt.Errorf("pane[%d]: text and file are mutually exclusive", i))
		}
	}

	return errors.Join(errs...)
}

// DuplicateKeys returns explicit pane keys that appear more than once, in
// order of their second occurrence. Duplicates are allowed; the first pane
// with a key wins during navigation.
func (c *Config) DuplicateKeys() []string {
	seen := make(map[string]int, len(c.Panes))
	var dups []string
	for _, p := range c.Panes {
		if p.Key == "" {
			continue
		}
		seen[p.Key]++
		if seen[p.Key] == 2 {
			dups = append(dups, p.Key)
		}
	}
	return dups
}

// Dir returns the directory the deck was loaded from.
func (c *Config) Dir() string {
	return c.dir
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Tabs: TabsConfig{
			BarPosition: "top",
			Direction:   "ltr",
		},
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
			AltScreen:   true,
			Mouse:       true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads tabdeck.toml from the given path. If path is empty, it walks up
// from the current working directory looking for tabdeck.toml. Returns an
// error if the file contains unknown keys (likely typos) or fails Validate.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, joinKeys(keys))
	}

	cfg.dir = filepath.Dir(path)
	if cfg.Deck.Name == "" {
		cfg.Deck.Name = DetectDeckName(cfg.dir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// joinKeys formats a slice of key names for display.
func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

// findConfig walks up from the current directory looking for tabdeck.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config: %s not found (searched up from %s)", FileName, dir)
		}
		dir = parent
	}
}

// InitFile writes a default tabdeck.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	content := `# tabdeck.toml — tab deck configuration

[deck]
name = ""

[tabs]
controlled = false          # true: selection is owned outside the tab group
locked = false              # controlled only: reject every change request
active_key = ""             # controlled only: initial owner value
default_active_key = ""     # uncontrolled only: empty = first enabled pane
destroy_inactive = false    # drop content state of panes that are not shown
bar_position = "top"        # top, bottom, left, right
direction = "ltr"           # ltr, rtl
allow_delete = false        # x / delete removes the active pane

[tui]
accent_color = "#7D56F4"
alt_screen = true
mouse = true

[log]
level = "info"              # debug, info, warn, error
file = ""                   # empty = no log

[[pane]]
key = "welcome"
title = "Welcome"
file = "panes/welcome.md"

[[pane]]
key = "keys"
title = "Keys"
text = """
left/up     previous pane
right/down  next pane
1-9         jump to pane
q           quit
"""

[[pane]]
title = "Disabled"
disabled = true
text = "You should never land here with the arrow keys."
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
