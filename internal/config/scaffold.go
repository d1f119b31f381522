package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ScaffoldDeck creates a sample deck in the given directory: tabdeck.toml
// and the panes/ directory with the welcome pane referenced by the template.
// Files that already exist are left untouched. Returns the list of created
// paths.
func ScaffoldDeck(dir string) ([]string, error) {
	var created []string

	// tabdeck.toml
	tomlPath := filepath.Join(dir, FileName)
	if _, err := os.Stat(tomlPath); os.IsNotExist(err) {
		if _, initErr := InitFile(dir); initErr != nil {
			return created, initErr
		}
		created = append(created, tomlPath)
	}

	// panes/ directory
	panesDir := filepath.Join(dir, "panes")
	if _, err := os.Stat(panesDir); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(panesDir, 0755); mkErr != nil {
			return created, fmt.Errorf("scaffold: create %s: %w", panesDir, mkErr)
		}
		created = append(created, panesDir)
	}

	// panes/welcome.md
	welcomePath := filepath.Join(panesDir, "welcome.md")
	if _, err := os.Stat(welcomePath); os.IsNotExist(err) {
		if writeErr := os.WriteFile(welcomePath, []byte(welcomeTemplate), 0644); writeErr != nil {
			return created, fmt.Errorf("scaffold: write %s: %w", welcomePath, writeErr)
		}
		created = append(created, welcomePath)
	}

	return created, nil
}

const welcomeTemplate = `Welcome to tabdeck.

Each [[pane]] in tabdeck.toml becomes a tab. Panes without a key get a
positional one. Disabled panes are skipped by the arrow keys and never
chosen as the default.

Edit tabdeck.toml and run ` + "`tabdeck show`" + ` again to see the changes.
`
