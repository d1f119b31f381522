package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Title     string
	ActiveKey string // empty when nothing is selected
	Mode      string // "controlled", "uncontrolled"
	Locked    bool
	Hints     string // keybinding hints for the current focus
	Status    string // last event, e.g. "requested b"
}

// RenderFooter renders the footer bar.
// Left side: deck title, active key and mode. Right side: status, focus
// hints and the global help/quit hints.
func RenderFooter(props FooterProps, width int, style lipgloss.Style) string {
	active := props.ActiveKey
	if active == "" {
		active = "—"
	}
	mode := props.Mode
	if props.Locked {
		mode += " (locked)"
	}
	left := fmt.Sprintf("%s  ▸ %s  [%s]", props.Title, active, mode)

	right := "?:help  q:quit"
	if props.Hints != "" {
		right = props.Hints + "  " + right
	}
	if props.Status != "" {
		right = props.Status + "  " + right
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}

	return style.Width(width).MaxHeight(1).Render(left + strings.Repeat(" ", gap) + right)
}
