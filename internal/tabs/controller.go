package tabs

import (
	"fmt"
	"strings"
)

// BarPosition places the tab bar relative to the content.
type BarPosition string

const (
	BarTop    BarPosition = "top"
	BarBottom BarPosition = "bottom"
	BarLeft   BarPosition = "left"
	BarRight  BarPosition = "right"
)

// Valid reports whether p is a known position.
func (p BarPosition) Valid() bool {
	switch p {
	case BarTop, BarBottom, BarLeft, BarRight:
		return true
	}
	return false
}

// Vertical reports whether the bar is laid out as a column.
func (p BarPosition) Vertical() bool {
	return p == BarLeft || p == BarRight
}

// Direction is the layout direction. It only affects presentation.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Part is one of the two collaborators in render order.
type Part int

const (
	PartBar Part = iota
	PartContent
)

// ClassPrefix is the base class name emitted for collaborators.
const ClassPrefix = "tabdeck"

// Options configures a Controller.
type Options struct {
	// ActiveKey, when non-nil, puts the controller in controlled mode.
	ActiveKey ValueFunc
	// DefaultActiveKey seeds uncontrolled mode, overriding the computed default.
	DefaultActiveKey *string
	// OnChange is called on every selection change request.
	OnChange func(key string)

	DestroyInactiveTabPane bool
	TabBarPosition         BarPosition
	Direction              Direction
	// HandlePaneDelete is forwarded to the bar; nil disables deletion.
	HandlePaneDelete func(key string)
	ClassName        string
}

// BarProps is what the tab bar collaborator receives.
type BarProps struct {
	Panes          []Pane
	ActiveKey      string
	HasActive      bool
	OnTabClick     func(key string)
	OnKeyDown      func(e *KeyEvent)
	Direction      Direction
	TabBarPosition BarPosition
	OnDelete       func(key string) // nil when deletion is disabled
}

// ContentProps is what the content collaborator receives.
type ContentProps struct {
	Panes                  []Pane
	ActiveKey              string
	HasActive              bool
	OnChange               func(key string)
	DestroyInactiveTabPane bool
	Direction              Direction
	TabBarPosition         BarPosition
}

// Controller composes pane resolution, default-key computation, selection
// state and keyboard navigation.
type Controller struct {
	resolver  *Resolver
	selection Selection
	opts      Options

	// default computed from the initial panes; never recomputed
	frozenDefault    string
	hasFrozenDefault bool
}

// DefaultActiveKey returns the key of the first enabled pane. Duplicate
// keys follow the first-occurrence rule of NextActiveKey.
func DefaultActiveKey(panes []Pane) (string, bool) {
	if keys := enabledKeys(panes); len(keys) > 0 {
		return keys[0], true
	}
	return "", false
}

// New creates a Controller for elems. The mode is chosen here and cannot
// change afterwards.
func New(elems []*Element, opts Options) *Controller {
	if opts.TabBarPosition == "" {
		opts.TabBarPosition = BarTop
	}
	if opts.Direction == "" {
		opts.Direction = LTR
	}
	c := &Controller{
		resolver: NewResolver(elems),
		opts:     opts,
	}
	c.frozenDefault, c.hasFrozenDefault = DefaultActiveKey(c.resolver.Panes())

	if opts.ActiveKey != nil {
		c.selection = Controlled(opts.ActiveKey, opts.OnChange)
		return c
	}
	initial, ok := c.frozenDefault, c.hasFrozenDefault
	if opts.DefaultActiveKey != nil {
		initial, ok = *opts.DefaultActiveKey, true
	}
	c.selection = Uncontrolled(initial, ok, opts.OnChange)
	return c
}

// Mode reports whether the controller is controlled or uncontrolled.
func (c *Controller) Mode() Mode {
	return c.selection.Mode()
}

// Panes returns the resolved panes of the current collection.
func (c *Controller) Panes() []Pane {
	return c.resolver.Panes()
}

// Elements returns the current raw collection.
func (c *Controller) Elements() []*Element {
	return c.resolver.Elements()
}

// SetPanes supplies a new pane collection. The active key and the frozen
// default are left alone.
func (c *Controller) SetPanes(elems []*Element) {
	c.resolver.Set(elems)
}

// FrozenDefault returns the default key computed at construction.
func (c *Controller) FrozenDefault() (string, bool) {
	return c.frozenDefault, c.hasFrozenDefault
}

// ActiveKey returns the current active key.
func (c *Controller) ActiveKey() (string, bool) {
	return c.selection.Read()
}

// SetActiveKey requests key as the active key. Unknown keys are accepted.
func (c *Controller) SetActiveKey(key string) {
	c.selection.Write(key)
}

// OnTabClick activates key. Disabled panes are not blocked here; the bar
// is expected to suppress clicks on them.
func (c *Controller) OnTabClick(key string) {
	c.SetActiveKey(key)
}

// OnNavKeyDown moves the selection for arrow keys and marks them consumed.
// Other keys are left untouched. Nothing happens without an active key.
func (c *Controller) OnNavKeyDown(e *KeyEvent) {
	current, ok := c.ActiveKey()
	if !ok {
		return
	}
	step, ok := StepForKey(e.Key)
	if !ok {
		return
	}
	e.PreventDefault()
	if next, ok := NextActiveKey(c.Panes(), current, step); ok {
		c.SetActiveKey(next)
	}
}

// OnScroll resets a horizontal scroll of the container itself back to zero.
// It reports whether a correction was applied.
func (c *Controller) OnScroll(e ScrollEvent) bool {
	if e.Target == nil || e.Target != e.CurrentTarget {
		return false
	}
	if e.Target.ScrollLeft() > 0 {
		e.Target.SetScrollLeft(0)
		return true
	}
	return false
}

// CanDelete reports whether a delete handler was configured.
func (c *Controller) CanDelete() bool {
	return c.opts.HandlePaneDelete != nil
}

// DeletePane forwards key to the delete handler. The selection is not
// changed, even when key is the active pane.
func (c *Controller) DeletePane(key string) {
	if c.opts.HandlePaneDelete != nil {
		c.opts.HandlePaneDelete(key)
	}
}

// TabBarPosition returns the configured bar position.
func (c *Controller) TabBarPosition() BarPosition {
	return c.opts.TabBarPosition
}

// Direction returns the configured layout direction.
func (c *Controller) Direction() Direction {
	return c.opts.Direction
}

// ClassNames returns the class list computed for collaborators.
func (c *Controller) ClassNames() string {
	names := []string{ClassPrefix, fmt.Sprintf("%s-%s", ClassPrefix, c.opts.TabBarPosition)}
	if c.opts.Direction == RTL {
		names = append(names, ClassPrefix+"-rtl")
	}
	if c.opts.ClassName != "" {
		names = append(names, c.opts.ClassName)
	}
	return strings.Join(names, " ")
}

// RenderOrder returns the collaborators in render order: content first when
// the bar is at the bottom, bar first otherwise.
func (c *Controller) RenderOrder() []Part {
	if c.opts.TabBarPosition == BarBottom {
		return []Part{PartContent, PartBar}
	}
	return []Part{PartBar, PartContent}
}

// BarProps returns the props for the tab bar collaborator.
func (c *Controller) BarProps() BarProps {
	key, ok := c.ActiveKey()
	props := BarProps{
		Panes:          c.Panes(),
		ActiveKey:      key,
		HasActive:      ok,
		OnTabClick:     c.OnTabClick,
		OnKeyDown:      c.OnNavKeyDown,
		Direction:      c.opts.Direction,
		TabBarPosition: c.opts.TabBarPosition,
	}
	if c.opts.HandlePaneDelete != nil {
		props.OnDelete = c.opts.HandlePaneDelete
	}
	return props
}

// ContentProps returns the props for the content collaborator.
func (c *Controller) ContentProps() ContentProps {
	key, ok := c.ActiveKey()
	return ContentProps{
		Panes:                  c.Panes(),
		ActiveKey:              key,
		HasActive:              ok,
		OnChange:               c.SetActiveKey,
		DestroyInactiveTabPane: c.opts.DestroyInactiveTabPane,
		Direction:              c.opts.Direction,
		TabBarPosition:         c.opts.TabBarPosition,
	}
}
