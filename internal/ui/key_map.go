package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up         key.Binding
	down       key.Binding
	present    key.Binding
	absent     key.Binding
	retard     key.Binding
	excuse     key.Binding
	cycle      key.Binding
	allPresent key.Binding
	save       key.Binding
	yes        key.Binding
	no         key.Binding
	restart    key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		present:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "présent")),
		absent:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "absent")),
		retard:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retard")),
		excuse:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "excusé")),
		cycle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "cycle")),
		allPresent: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "tous présents")),
		save:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		yes:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:         key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "back to sheet")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.cycle},
		{k.present, k.absent, k.retard, k.excuse},
		{k.allPresent, k.save, k.quit},
	}
}
