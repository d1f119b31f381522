// Package main is the entry point for the tabdeck CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tabdeck",
		Short:        "tabdeck: a keyboard-driven tab deck for the terminal",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringP("config", "c", "", "path to tabdeck.toml (default: search up from the working directory)")

	root.AddCommand(
		showCmd(),
		panesCmd(),
		nextCmd(),
		initCmd(),
	)

	return root
}
