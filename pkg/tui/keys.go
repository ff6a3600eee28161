package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// builderKeyMap holds the builder's key bindings. Bindings come from Shortcuts so
// the OS-specific variant and the default are both accepted.
type builderKeyMap struct {
	Confirm       key.Binding
	ClearOrRemove key.Binding
	Next          key.Binding
	Previous      key.Binding
	Submit        key.Binding
	CopyURL       key.Binding
	Help          key.Binding
	Cancel        key.Binding
	Quit          key.Binding
}

func bindingFor(s ShortcutKey, desc string) key.Binding {
	keys := s.Keys()
	display := make([]string, 0, len(keys))
	for _, k := range keys {
		display = append(display, FormatShortcutForHelp(k))
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(display, "/"), desc),
	)
}

func newBuilderKeyMap() builderKeyMap {
	next := bindingFor(Shortcuts.Next, "next field")
	next.SetKeys(append(next.Keys(), "down")...)
	prev := bindingFor(Shortcuts.Previous, "previous field")
	prev.SetKeys(append(prev.Keys(), "up")...)

	return builderKeyMap{
		Confirm:       bindingFor(Shortcuts.Confirm, "add keyword"),
		ClearOrRemove: bindingFor(Shortcuts.ClearOrRemove, "clear / remove"),
		Next:          next,
		Previous:      prev,
		Submit:        bindingFor(Shortcuts.Submit, "create playlist"),
		CopyURL:       bindingFor(Shortcuts.CopyURL, "copy link"),
		Help:          bindingFor(Shortcuts.Help, "help"),
		Cancel:        bindingFor(Shortcuts.Cancel, "quit"),
		Quit:          bindingFor(Shortcuts.Quit, "force quit"),
	}
}

// ShortHelp implements help.KeyMap
func (k builderKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.ClearOrRemove, k.Submit, k.Help}
}

// FullHelp implements help.KeyMap
func (k builderKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.ClearOrRemove, k.Next, k.Previous},
		{k.Submit, k.CopyURL, k.Help, k.Cancel, k.Quit},
	}
}
