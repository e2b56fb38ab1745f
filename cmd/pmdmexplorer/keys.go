package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding

	Enter  key.Binding
	Esc    key.Binding
	Copy   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first item")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last item")),
		NextTab:  key.NewBinding(key.WithKeys("tab", "l"), key.WithHelp("tab/l", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab", "h"), key.WithHelp("S-tab/h", "previous tab")),

		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "item details")),
		Esc:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy name")),
		Reload: key.NewBinding(key.WithKeys("r", "f5"), key.WithHelp("r", "reload capture")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// FullHelp returns the bindings listed in the help overlay.
func (k KeyMap) FullHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.NextTab, k.PrevTab,
		k.Enter, k.Copy, k.Reload, k.Help, k.Quit,
	}
}
