//go:build !windows

package main

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.TabDeck/internal/logging"
)

// registerQuitHandler kills the program on SIGQUIT without waiting for the
// current update to finish.
func registerQuitHandler(p *tea.Program) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGQUIT)
	go func() {
		<-sigs
		logging.Warnf("SIGQUIT, stopping immediately")
		p.Kill()
	}()
}
