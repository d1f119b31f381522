package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.TabDeck/internal/logging"
	"github.com/LISSConsulting/LISSTech.TabDeck/internal/tabs"
	"github.com/LISSConsulting/LISSTech.TabDeck/internal/tui/components"
)

// scrollStep is the number of cells moved per horizontal scroll event.
const scrollStep = 4

// Options configures the deck.
type Options struct {
	Title    string
	Elements []*tabs.Element

	// Controlled hands the selection to Owner. Without an Owner the
	// built-in one is used, seeded with ActiveKey; Locked makes it reject
	// every change.
	Controlled bool
	Owner      SelectionOwner
	Locked     bool
	ActiveKey  string

	DefaultActiveKey *string
	DestroyInactive  bool
	BarPosition      tabs.BarPosition
	Direction        tabs.Direction
	AllowDelete      bool
	ClassName        string
	AccentColor      string
}

// session is state shared by every copy of the Model.
type session struct {
	status  string
	changes []string // every change request, in order
	pending []string // requests the owner agreed to apply
	deleted []string
}

// Model is the root bubbletea model hosting one tab group.
type Model struct {
	ctrl    *tabs.Controller
	owner   SelectionOwner // nil in uncontrolled mode
	sess    *session
	bar     components.TabBar
	content components.PaneView
	frame   *components.HScroll // the outer container

	keys     keyMap
	help     help.Model
	showHelp bool

	layout Layout
	focus  FocusTarget
	theme  Theme
	width  int
	height int
	title  string
}

// New creates the deck model. The selection mode is fixed here.
func New(opts Options) Model {
	sess := &session{}
	m := Model{
		sess:    sess,
		frame:   components.NewHScroll(0),
		content: components.NewPaneView(1, 1),
		help:    help.New(),
		focus:   FocusBar,
		theme:   NewTheme(opts.AccentColor),
		width:   80,
		height:  24,
		title:   opts.Title,
	}

	topts := tabs.Options{
		DefaultActiveKey:       opts.DefaultActiveKey,
		DestroyInactiveTabPane: opts.DestroyInactive,
		TabBarPosition:         opts.BarPosition,
		Direction:              opts.Direction,
		ClassName:              opts.ClassName,
	}
	if opts.Controlled {
		m.owner = opts.Owner
		if m.owner == nil {
			m.owner = NewOwner(opts.ActiveKey, opts.Locked)
		}
		topts.ActiveKey = m.owner.ActiveKey
	}

	own := m.owner
	topts.OnChange = func(key string) {
		sess.changes = append(sess.changes, key)
		switch {
		case own == nil:
			sess.status = "active " + key
		case own.Request(key):
			sess.pending = append(sess.pending, key)
			sess.status = "requested " + key
		default:
			sess.status = "locked, ignored " + key
		}
		logging.Debugf("selection change requested: %s (%s)", key, sess.status)
	}

	var ctrl *tabs.Controller
	if opts.AllowDelete {
		topts.HandlePaneDelete = func(key string) {
			ctrl.SetPanes(withoutPane(ctrl.Elements(), ctrl.Panes(), key))
			sess.deleted = append(sess.deleted, key)
			sess.status = "closed " + key
			logging.Infof("pane deleted: %s", key)
		}
	}
	ctrl = tabs.New(opts.Elements, topts)
	m.ctrl = ctrl
	m.keys = newKeyMap(ctrl.CanDelete())
	m.help.Styles.ShortKey = m.theme.AccentStyle()
	m.help.Styles.FullKey = m.theme.AccentStyle()
	m.bar = components.NewTabBar(ctrl.BarProps()).SetAccent(m.theme.Accent())

	logging.Debugf("deck %q: %d panes, %s, classes %q", opts.Title, len(ctrl.Panes()), ctrl.Mode(), ctrl.ClassNames())
	return m.refresh()
}

// withoutPane blanks the element behind the first pane with key. The slot is
// kept as nil so positional keys of later panes do not shift.
func withoutPane(elems []*tabs.Element, panes []tabs.Pane, key string) []*tabs.Element {
	var target *tabs.Element
	for _, p := range panes {
		if p.Key == key {
			target = p.Element
			break
		}
	}
	out := make([]*tabs.Element, len(elems))
	for i, el := range elems {
		if el != nil && el != target {
			out[i] = el
		}
	}
	return out
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller returns the tab group controller.
func (m Model) Controller() *tabs.Controller {
	return m.ctrl
}

// ActiveKey returns the active key as currently observable.
func (m Model) ActiveKey() (string, bool) {
	return m.ctrl.ActiveKey()
}

// Changes returns every change request made so far, in order.
func (m Model) Changes() []string {
	return append([]string(nil), m.sess.changes...)
}

// Deleted returns the keys of deleted panes, in order.
func (m Model) Deleted() []string {
	return append([]string(nil), m.sess.deleted...)
}

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m, cmd = m.handleMouse(msg)
	case activeKeyMsg:
		if m.owner != nil {
			m.owner.Accept(msg.key)
			logging.Debugf("owner accepted %s", msg.key)
		}
	default:
		m.content, cmd = m.content.Update(msg)
	}
	m = m.refresh()

	if oc := m.ownerCmd(); oc != nil {
		return m, tea.Batch(cmd, oc)
	}
	return m, cmd
}

// ownerCmd turns accepted owner requests into activeKeyMsg commands,
// applied in order on later turns.
func (m Model) ownerCmd() tea.Cmd {
	if m.owner == nil || len(m.sess.pending) == 0 {
		return nil
	}
	pending := m.sess.pending
	m.sess.pending = nil
	cmds := make([]tea.Cmd, len(pending))
	for i, k := range pending {
		cmds[i] = func() tea.Msg { return activeKeyMsg{key: k} }
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.focus = m.focus.Next()
		return m, nil
	case key.Matches(msg, m.keys.FocusBack):
		m.focus = m.focus.Prev()
		return m, nil
	case key.Matches(msg, m.keys.Jump):
		m.bar.ClickIndex(int(msg.String()[0] - '1'))
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		m.bar.DeleteActive()
		return m, nil
	case key.Matches(msg, m.keys.ScrollLeft):
		return m.scrollContent(-scrollStep), nil
	case key.Matches(msg, m.keys.ScrollRight):
		return m.scrollContent(scrollStep), nil
	}

	if m.focus == FocusBar && m.bar.KeyDown(msg.String()) {
		return m, nil
	}
	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	inContent := m.layout.Content.Contains(msg.X, msg.Y)

	switch msg.Button {
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		if m.layout.Bar.Contains(msg.X, msg.Y) {
			m.focus = FocusBar
			if k, ok := m.bar.HitTest(msg.X-m.layout.Bar.X, msg.Y-m.layout.Bar.Y); ok {
				m.bar.Click(k)
			}
		} else if inContent {
			m.focus = FocusContent
		}
		return m, nil

	case tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		dx := scrollStep
		if msg.Button == tea.MouseButtonWheelLeft {
			dx = -scrollStep
		}
		if inContent {
			return m.scrollContent(dx), nil
		}
		m.frame.ScrollBy(dx)
		m.dispatchScroll(m.frame)
		return m, nil
	}

	if !inContent {
		return m, nil
	}
	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

// scrollContent pans the content horizontally and lets the scroll event
// bubble up to the container.
func (m Model) scrollContent(dx int) Model {
	m.content = m.content.ScrollBy(dx)
	m.dispatchScroll(m.content.Scroll())
	return m
}

// dispatchScroll delivers a scroll event from target to the container.
func (m Model) dispatchScroll(target tabs.ScrollTarget) {
	if m.ctrl.OnScroll(tabs.ScrollEvent{Target: target, CurrentTarget: m.frame}) {
		logging.Debugf("container scroll reset to 0")
	}
}

// refresh pushes the controller's current props into the collaborators and
// recomputes the layout.
func (m Model) refresh() Model {
	m.bar = m.bar.SetProps(m.ctrl.BarProps())
	m.content = m.content.SetProps(m.ctrl.ContentProps())

	m.layout = Calculate(m.width, m.height, m.ctrl.TabBarPosition(), m.bar.Width())
	if !m.layout.TooSmall {
		cw, ch := innerDims(m.layout.Content)
		m.content = m.content.SetSize(cw, ch)
		m.bar = m.bar.SetWidth(m.layout.Bar.Width)
		m.help.Width = m.width
	}
	return m
}

// View renders the deck: tab bar, bordered content and footer.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least %dx%d.", m.width, m.height, minWidth, minHeight)
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(msg)
	}

	cw, ch := innerDims(m.layout.Content)
	contentView := m.theme.PanelBorderStyle(m.focus == FocusContent).
		Width(cw).Height(ch).
		Render(m.content.View())

	barStyle := lipgloss.NewStyle().MaxWidth(m.layout.Bar.Width)
	if m.ctrl.TabBarPosition().Vertical() {
		barStyle = barStyle.Width(m.layout.Bar.Width).Height(m.layout.Bar.Height)
	}
	barView := barStyle.Render(m.bar.View())

	var body string
	switch m.ctrl.TabBarPosition() {
	case tabs.BarLeft:
		body = lipgloss.JoinHorizontal(lipgloss.Top, barView, contentView)
	case tabs.BarRight:
		body = lipgloss.JoinHorizontal(lipgloss.Top, contentView, barView)
	default:
		parts := make([]string, 0, 2)
		for _, p := range m.ctrl.RenderOrder() {
			if p == tabs.PartBar {
				parts = append(parts, barView)
			} else {
				parts = append(parts, contentView)
			}
		}
		body = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	var footer string
	if m.showHelp {
		footer = m.theme.FooterStyle().Width(m.width).MaxHeight(1).Render(m.help.View(m.keys))
	} else {
		active, _ := m.ctrl.ActiveKey()
		footer = RenderFooter(FooterProps{
			Title:     m.title,
			ActiveKey: active,
			Mode:      m.ctrl.Mode().String(),
			Locked:    m.owner != nil && m.owner.Locked(),
			Hints:     m.keys.FocusHints(m.focus),
			Status:    m.sess.status,
		}, m.layout.Footer.Width, m.theme.FooterStyle())
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
