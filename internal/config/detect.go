package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DetectDeckName names a deck that has no [deck].name after its directory.
func DetectDeckName(dir string) string {
	return filepath.Base(dir)
}

// PaneText returns the body of pane p. File paths are resolved against the
// deck directory. Trailing newlines are trimmed.
func (c *Config) PaneText(p PaneConfig) (string, error) {
	if p.File == "" {
		return strings.TrimRight(p.Text, "\n"), nil
	}
	path := p.File
	if !filepath.IsAbs(path) && c.dir != "" {
		path = filepath.Join(c.dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("config: read pane %q: %w", p.File, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
