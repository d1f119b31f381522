package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the bindings of the deck. Global bindings are matched by the
// root model before the key is dispatched to the focused collaborator.
type keyMap struct {
	Quit        key.Binding
	Help        key.Binding
	Focus       key.Binding
	FocusBack   key.Binding
	Jump        key.Binding
	Delete      key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding

	// handled by the focused collaborator
	Navigate key.Binding
	Scroll   key.Binding
}

func newKeyMap(allowDelete bool) keyMap {
	k := keyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Focus:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		FocusBack:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "focus back")),
		Jump:        key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		Delete:      key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "close pane")),
		ScrollLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "scroll left")),
		ScrollRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "scroll right")),
		Navigate:    key.NewBinding(key.WithKeys("left", "right", "up", "down"), key.WithHelp("←/→", "switch pane")),
		Scroll:      key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown", "j", "k"), key.WithHelp("j/k", "scroll")),
	}
	k.Delete.SetEnabled(allowDelete)
	return k
}

// focusBindings returns the bindings hinted for focus: those the focused
// collaborator handles, then the focus switch.
func (k keyMap) focusBindings(focus FocusTarget) []key.Binding {
	switch focus {
	case FocusBar:
		return []key.Binding{k.Navigate, k.Jump, k.Delete, k.Focus}
	case FocusContent:
		return []key.Binding{k.Scroll, k.ScrollLeft, k.ScrollRight, k.Focus}
	}
	return []key.Binding{k.Focus}
}

// FocusHints renders the enabled bindings for focus as "key:desc" pairs.
func (k keyMap) FocusHints(focus FocusTarget) string {
	var parts []string
	for _, b := range k.focusBindings(focus) {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+":"+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Jump, k.Focus, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Jump, k.Delete},
		{k.Focus, k.FocusBack, k.Scroll},
		{k.ScrollLeft, k.ScrollRight},
		{k.Help, k.Quit},
	}
}
