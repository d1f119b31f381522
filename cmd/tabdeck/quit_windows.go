//go:build windows

package main

import tea "github.com/charmbracelet/bubbletea"

// registerQuitHandler is a no-op: Windows has no SIGQUIT.
func registerQuitHandler(*tea.Program) {}
