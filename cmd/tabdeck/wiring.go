package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.TabDeck/internal/config"
	"github.com/LISSConsulting/LISSTech.TabDeck/internal/logging"
	"github.com/LISSConsulting/LISSTech.TabDeck/internal/tabs"
	"github.com/LISSConsulting/LISSTech.TabDeck/internal/tui"
)

// loadConfig loads the deck named by --config, or searches for one.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// applyShowFlags overrides cfg with the flags that were set on the show
// command, then re-validates it.
func applyShowFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("controlled") {
		cfg.Tabs.Controlled, _ = f.GetBool("controlled")
	}
	if f.Changed("locked") {
		cfg.Tabs.Locked, _ = f.GetBool("locked")
	}
	if f.Changed("active") {
		active, _ := f.GetString("active")
		if cfg.Tabs.Controlled {
			cfg.Tabs.ActiveKey = active
		} else {
			cfg.Tabs.DefaultActiveKey = active
		}
	}
	if f.Changed("position") {
		cfg.Tabs.BarPosition, _ = f.GetString("position")
	}
	if f.Changed("rtl") {
		if rtl, _ := f.GetBool("rtl"); rtl {
			cfg.Tabs.Direction = string(tabs.RTL)
		} else {
			cfg.Tabs.Direction = string(tabs.LTR)
		}
	}
	if f.Changed("log-level") {
		cfg.Log.Level, _ = f.GetString("log-level")
	}
	if f.Changed("log-file") {
		cfg.Log.File, _ = f.GetString("log-file")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// buildElements turns the configured panes into tab group elements, reading
// pane files as needed.
func buildElements(cfg *config.Config) ([]*tabs.Element, error) {
	elems := make([]*tabs.Element, 0, len(cfg.Panes))
	for _, p := range cfg.Panes {
		text, err := cfg.PaneText(p)
		if err != nil {
			return nil, err
		}
		elems = append(elems, &tabs.Element{
			Key:      p.Key,
			Title:    p.Title,
			Disabled: p.Disabled,
			Content:  text,
		})
	}
	return elems, nil
}

// deckOptions maps the configuration onto TUI options.
func deckOptions(cfg *config.Config, elems []*tabs.Element) tui.Options {
	opts := tui.Options{
		Title:           cfg.Deck.Name,
		Elements:        elems,
		Controlled:      cfg.Tabs.Controlled,
		Locked:          cfg.Tabs.Locked,
		ActiveKey:       cfg.Tabs.ActiveKey,
		DestroyInactive: cfg.Tabs.DestroyInactive,
		BarPosition:     tabs.BarPosition(cfg.Tabs.BarPosition),
		Direction:       tabs.Direction(cfg.Tabs.Direction),
		AllowDelete:     cfg.Tabs.AllowDelete,
		ClassName:       cfg.Tabs.ClassName,
		AccentColor:     cfg.TUI.AccentColor,
	}
	if !cfg.Tabs.Controlled && cfg.Tabs.DefaultActiveKey != "" {
		def := cfg.Tabs.DefaultActiveKey
		opts.DefaultActiveKey = &def
	}
	return opts
}

// programOptions returns the bubbletea options for cfg.
func programOptions(cfg *config.Config) []tea.ProgramOption {
	var opts []tea.ProgramOption
	if cfg.TUI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.TUI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

// executeDeck sets up logging, builds the deck and runs it until the user
// quits.
func executeDeck(cfg *config.Config) error {
	closeLog, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	elems, err := buildElements(cfg)
	if err != nil {
		return err
	}
	for _, k := range cfg.DuplicateKeys() {
		logging.Warnf("duplicate pane key %q: the first pane with this key wins", k)
	}
	logging.Infof("opening deck %q from %s (%d panes)", cfg.Deck.Name, cfg.Dir(), len(elems))

	program := tea.NewProgram(tui.New(deckOptions(cfg, elems)), programOptions(cfg)...)
	registerQuitHandler(program)
	if _, err := program.Run(); err != nil {
		logging.Errorf("tui: %v", err)
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// formatPanes writes a table of the resolved panes.
func formatPanes(w io.Writer, panes []tabs.Pane, def string, hasDefault bool) {
	if len(panes) == 0 {
		fmt.Fprintln(w, "No panes configured")
		return
	}

	fmt.Fprintln(w, "Panes")
	fmt.Fprintln(w, "─────")
	for _, p := range panes {
		mark := " "
		switch {
		case p.Disabled:
			mark = "✗"
		case hasDefault && p.Key == def:
			mark = "▸"
		}
		fmt.Fprintf(w, "  %s  %-24s  %s\n", mark, p.Key, p.Title)
	}
	if hasDefault {
		fmt.Fprintf(w, "\nDefault active key: %s\n", def)
	} else {
		fmt.Fprintln(w, "\nNo enabled pane; nothing is active by default")
	}
}
