// Package tui provides the bubbletea + lipgloss deck that hosts a tab group.
package tui

import "github.com/charmbracelet/lipgloss"

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = "#7D56F4"

var colorGray = lipgloss.Color("#888888")

// Theme holds accent-color-derived styles for the deck.
type Theme struct {
	accent          string
	accentStyle     lipgloss.Style // status labels
	borderFocused   lipgloss.Style // focused panel border
	borderUnfocused lipgloss.Style // unfocused panel border
	footerStyle     lipgloss.Style
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		accent: color,
		accentStyle: lipgloss.NewStyle().
			Foreground(c).
			Bold(true),
		borderFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c),
		borderUnfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray),
		footerStyle: lipgloss.NewStyle().
			Foreground(colorGray),
	}
}

// Accent returns the hex accent color.
func (t Theme) Accent() string {
	return t.accent
}

// AccentStyle returns the bold accent style.
func (t Theme) AccentStyle() lipgloss.Style {
	return t.accentStyle
}

// FooterStyle returns the dimmed footer style.
func (t Theme) FooterStyle() lipgloss.Style {
	return t.footerStyle
}

// PanelBorderStyle returns the appropriate border style for a panel based on
// whether it currently holds keyboard focus.
func (t Theme) PanelBorderStyle(focused bool) lipgloss.Style {
	if focused {
		return t.borderFocused
	}
	return t.borderUnfocused
}
