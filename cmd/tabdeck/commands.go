package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.TabDeck/internal/config"
	"github.com/LISSConsulting/LISSTech.TabDeck/internal/tabs"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Open the deck in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := applyShowFlags(cmd, cfg); err != nil {
				return err
			}
			return executeDeck(cfg)
		},
	}
	cmd.Flags().String("active", "", "initial active key (owner value when controlled)")
	cmd.Flags().Bool("controlled", false, "hand the selection to an external owner")
	cmd.Flags().Bool("locked", false, "controlled owner rejects every change")
	cmd.Flags().String("position", "", "tab bar position: top, bottom, left, right")
	cmd.Flags().Bool("rtl", false, "right-to-left layout")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().String("log-file", "", "write logs to this file")
	return cmd
}

func panesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "panes",
		Short: "List the resolved panes and the default active key",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			elems, err := buildElements(cfg)
			if err != nil {
				return err
			}
			panes := tabs.ResolvePanes(elems)
			def, ok := tabs.DefaultActiveKey(panes)
			formatPanes(cmd.OutOrStdout(), panes, def, ok)
			return nil
		},
	}
}

func nextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Print the pane an arrow key would select",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			elems, err := buildElements(cfg)
			if err != nil {
				return err
			}
			from, _ := cmd.Flags().GetString("from")
			back, _ := cmd.Flags().GetBool("back")

			step := tabs.StepForward
			if back {
				step = tabs.StepBackward
			}
			key, ok := tabs.NextActiveKey(tabs.ResolvePanes(elems), from, step)
			if !ok {
				return fmt.Errorf("no enabled panes")
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
	cmd.Flags().String("from", "", "current active key")
	cmd.Flags().Bool("back", false, "step backwards (left/up) instead of forwards")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Scaffold a deck (tabdeck.toml and panes/) in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			created, err := config.ScaffoldDeck(dir)
			if err != nil {
				return err
			}
			if len(created) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "All files already exist, nothing to create.")
				return nil
			}
			for _, path := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			}
			return nil
		},
	}
}
