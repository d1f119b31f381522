package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/LISSConsulting/LISSTech.TabDeck/internal/tabs"
)

var emptyPaneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// PaneView is the content collaborator: it shows the active pane in a
// scrollable viewport. Each visited pane keeps its own viewport (and so its
// vertical position) unless DestroyInactiveTabPane is set, in which case
// only the active pane's viewport survives.
type PaneView struct {
	props  tabs.ContentProps
	views  map[string]viewport.Model
	scroll *HScroll
	width  int
	height int
}

// NewPaneView creates a PaneView with the given dimensions.
func NewPaneView(w, h int) PaneView {
	return PaneView{
		views:  map[string]viewport.Model{},
		scroll: NewHScroll(0),
		width:  w,
		height: h,
	}
}

// contentText renders opaque pane content as text.
func contentText(p tabs.Pane) string {
	if p.Element == nil || p.Element.Content == nil {
		return ""
	}
	switch c := p.Element.Content.(type) {
	case string:
		return c
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}

// activePane returns the pane matching the active key.
func (v PaneView) activePane() (tabs.Pane, bool) {
	if !v.props.HasActive {
		return tabs.Pane{}, false
	}
	for _, p := range v.props.Panes {
		if p.Key == v.props.ActiveKey {
			return p, true
		}
	}
	return tabs.Pane{}, false
}

// shift drops the first x cells of every line.
func shift(text string, x int) string {
	if x <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = ansi.TruncateLeft(line, x, "")
	}
	return strings.Join(lines, "\n")
}

// widest returns the cell width of the longest line.
func widest(text string) int {
	w := 0
	for _, line := range strings.Split(text, "\n") {
		if n := ansi.StringWidth(line); n > w {
			w = n
		}
	}
	return w
}

// SetProps returns a PaneView showing props. Viewports of panes that no
// longer exist are dropped; with DestroyInactiveTabPane every inactive
// viewport is dropped.
func (v PaneView) SetProps(props tabs.ContentProps) PaneView {
	v.props = props
	active, ok := v.activePane()

	views := make(map[string]viewport.Model, len(v.views)+1)
	live := make(map[string]bool, len(props.Panes))
	for _, p := range props.Panes {
		live[p.Key] = true
	}
	for key, vp := range v.views {
		if !live[key] || (props.DestroyInactiveTabPane && (!ok || key != active.Key)) {
			continue
		}
		views[key] = vp
	}
	v.views = views

	if ok {
		v = v.refresh(active)
	}
	return v
}

// refresh (re)renders the viewport for p at the current horizontal offset.
func (v PaneView) refresh(p tabs.Pane) PaneView {
	text := contentText(p)
	limit := widest(text) - v.width
	if limit < 0 {
		limit = 0
	}
	v.scroll.SetMax(limit)
	if limit == 0 {
		v.scroll.SetScrollLeft(0)
	}

	vp, exists := v.views[p.Key]
	if !exists {
		vp = viewport.New(v.width, v.height)
	}
	vp.Width = v.width
	vp.Height = v.height
	vp.SetContent(shift(text, v.scroll.ScrollLeft()))
	v.views[p.Key] = vp
	return v
}

// Scroll returns the horizontal scroll target of the content area.
func (v PaneView) Scroll() *HScroll {
	return v.scroll
}

// ScrollBy scrolls the content horizontally by dx cells.
func (v PaneView) ScrollBy(dx int) PaneView {
	v.scroll.ScrollBy(dx)
	if p, ok := v.activePane(); ok {
		v = v.refresh(p)
	}
	return v
}

// Mounted returns the keys of panes that currently hold a viewport, in
// pane order.
func (v PaneView) Mounted() []string {
	var keys []string
	for _, p := range v.props.Panes {
		if _, ok := v.views[p.Key]; ok {
			keys = append(keys, p.Key)
		}
	}
	return keys
}

// SetSize resizes the view.
func (v PaneView) SetSize(w, h int) PaneView {
	v.width = w
	v.height = h
	if p, ok := v.activePane(); ok {
		v = v.refresh(p)
	}
	return v
}

// Update forwards scroll keys and mouse events to the active viewport.
func (v PaneView) Update(msg tea.Msg) (PaneView, tea.Cmd) {
	p, ok := v.activePane()
	if !ok {
		return v, nil
	}
	vp, exists := v.views[p.Key]
	if !exists {
		return v, nil
	}
	var cmd tea.Cmd
	vp, cmd = vp.Update(msg)
	v.views[p.Key] = vp
	return v, cmd
}

// View renders the active pane, or a placeholder when nothing is selected.
func (v PaneView) View() string {
	p, ok := v.activePane()
	if !ok {
		return emptyPaneStyle.
			Width(v.width).Height(v.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No pane selected")
	}
	return v.views[p.Key].View()
}
