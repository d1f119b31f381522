// Package logging wraps a package-level charmbracelet/log logger. The TUI
// owns the terminal, so output is discarded unless Setup points it at a file.
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger.
var L = clog.NewWithOptions(io.Discard, clog.Options{Prefix: "tabdeck"})

// ParseLevel converts a config level name into a log level.
func ParseLevel(name string) (clog.Level, error) {
	lvl, err := clog.ParseLevel(name)
	if err != nil {
		return clog.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

// Setup points L at file (appending) with the given level. An empty file
// keeps logging disabled. The returned close func is never nil.
func Setup(level, file string) (func() error, error) {
	noop := func() error { return nil }
	lvl, err := ParseLevel(level)
	if err != nil {
		return noop, err
	}
	if file == "" {
		L.SetLevel(lvl)
		return noop, nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return noop, fmt.Errorf("logging: open %s: %w", file, err)
	}
	L = clog.NewWithOptions(f, clog.Options{
		Prefix:          "tabdeck",
		Level:           lvl,
		ReportTimestamp: true,
	})
	return f.Close, nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
