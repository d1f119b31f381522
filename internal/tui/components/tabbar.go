// Package components provides the tab bar and pane content collaborators
// driven by a tabs.Controller.
package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.TabDeck/internal/tabs"
)

// DefaultAccent is the accent used when none is configured.
const DefaultAccent = "#7D56F4"

// tabSeparator sits between tabs in a horizontal bar.
const tabSeparator = "  │  "

// deleteMarker follows the label of deletable tabs.
const deleteMarker = " ×"

// tabInactiveStyle renders inactive tabs in a dimmed style.
var tabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// tabDisabledStyle renders disabled tabs struck through.
var tabDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")).Strikethrough(true)

// TabBar is a stateless tab bar. It renders the props it was given and
// forwards input to the controller callbacks inside them.
type TabBar struct {
	props  tabs.BarProps
	active lipgloss.Style
	width  int
}

// NewTabBar creates a TabBar for props with the default accent.
func NewTabBar(props tabs.BarProps) TabBar {
	return TabBar{props: props}.SetAccent(DefaultAccent)
}

// SetProps returns a TabBar rendering props.
func (t TabBar) SetProps(props tabs.BarProps) TabBar {
	t.props = props
	return t
}

// SetAccent returns a TabBar whose active tab uses the hex color accent.
func (t TabBar) SetAccent(accent string) TabBar {
	if accent == "" {
		accent = DefaultAccent
	}
	t.active = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent))
	return t
}

// SetWidth returns a TabBar configured for the given render width.
func (t TabBar) SetWidth(w int) TabBar {
	t.width = w
	return t
}

// Props returns the props currently rendered.
func (t TabBar) Props() tabs.BarProps {
	return t.props
}

// label returns the plain text shown for pane i.
func (t TabBar) label(i int) string {
	p := t.props.Panes[i]
	title := p.Title
	if title == "" {
		title = p.Key
	}
	if i < 9 {
		title = strconv.Itoa(i+1) + " " + title
	}
	if t.props.OnDelete != nil && !p.Disabled {
		title += deleteMarker
	}
	return title
}

func (t TabBar) isActive(p tabs.Pane) bool {
	return t.props.HasActive && p.Key == t.props.ActiveKey
}

func (t TabBar) render(i int) string {
	p := t.props.Panes[i]
	label := t.label(i)
	switch {
	case t.isActive(p):
		return t.active.Render(label)
	case p.Disabled:
		return tabDisabledStyle.Render(label)
	default:
		return tabInactiveStyle.Render(label)
	}
}

// lineWidth returns the rendered width of a horizontal bar.
func (t TabBar) lineWidth() int {
	w := 0
	for i := range t.props.Panes {
		if i > 0 {
			w += lipgloss.Width(tabSeparator)
		}
		w += lipgloss.Width(t.label(i))
	}
	return w
}

// Width returns the natural width of the bar: the widest label for a
// vertical bar, the full line for a horizontal one.
func (t TabBar) Width() int {
	if !t.props.TabBarPosition.Vertical() {
		return t.lineWidth()
	}
	w := 0
	for i := range t.props.Panes {
		if lw := lipgloss.Width(t.label(i)); lw > w {
			w = lw
		}
	}
	return w
}

// indent returns the left padding applied in rtl layouts.
func (t TabBar) indent() int {
	if t.props.Direction != tabs.RTL || t.props.TabBarPosition.Vertical() {
		return 0
	}
	if pad := t.width - t.lineWidth(); pad > 0 {
		return pad
	}
	return 0
}

// View renders the bar. Horizontal bars are a single line with tabs
// separated by " │ "; vertical bars put one tab per line. The active tab is
// bold and accent-colored, disabled tabs are struck through.
func (t TabBar) View() string {
	if len(t.props.Panes) == 0 {
		return ""
	}

	parts := make([]string, len(t.props.Panes))
	for i := range t.props.Panes {
		parts[i] = t.render(i)
	}

	if t.props.TabBarPosition.Vertical() {
		col := strings.Join(parts, "\n")
		if t.props.Direction == tabs.RTL && t.width > 0 {
			return lipgloss.NewStyle().Width(t.width).Align(lipgloss.Right).Render(col)
		}
		return col
	}

	return strings.Repeat(" ", t.indent()) + strings.Join(parts, tabSeparator)
}

// HitTest maps a position relative to the bar's top-left corner to the key
// of the tab under it.
func (t TabBar) HitTest(x, y int) (string, bool) {
	if t.props.TabBarPosition.Vertical() {
		if y < 0 || y >= len(t.props.Panes) {
			return "", false
		}
		return t.props.Panes[y].Key, true
	}
	if y != 0 {
		return "", false
	}
	pos := t.indent()
	for i, p := range t.props.Panes {
		if i > 0 {
			pos += lipgloss.Width(tabSeparator)
		}
		w := lipgloss.Width(t.label(i))
		if x >= pos && x < pos+w {
			return p.Key, true
		}
		pos += w
	}
	return "", false
}

// pane returns the pane with key. The first pane with a key wins.
func (t TabBar) pane(key string) (tabs.Pane, bool) {
	for _, p := range t.props.Panes {
		if p.Key == key {
			return p, true
		}
	}
	return tabs.Pane{}, false
}

// Click forwards a click on key to the controller. Clicks on disabled or
// unknown tabs are swallowed. It reports whether the click was forwarded.
func (t TabBar) Click(key string) bool {
	p, ok := t.pane(key)
	if !ok || p.Disabled || t.props.OnTabClick == nil {
		return false
	}
	t.props.OnTabClick(p.Key)
	return true
}

// ClickIndex clicks the n-th tab (0-based).
func (t TabBar) ClickIndex(n int) bool {
	if n < 0 || n >= len(t.props.Panes) {
		return false
	}
	return t.Click(t.props.Panes[n].Key)
}

// KeyDown forwards a key press to the controller and reports whether it
// was consumed.
func (t TabBar) KeyDown(name string) bool {
	if t.props.OnKeyDown == nil {
		return false
	}
	e := tabs.NewKeyEvent(name)
	t.props.OnKeyDown(e)
	return e.DefaultPrevented()
}

// DeleteActive asks the controller to delete the active pane. It reports
// whether a delete was requested.
func (t TabBar) DeleteActive() bool {
	if t.props.OnDelete == nil || !t.props.HasActive {
		return false
	}
	p, ok := t.pane(t.props.ActiveKey)
	if !ok || p.Disabled {
		return false
	}
	t.props.OnDelete(p.Key)
	return true
}
