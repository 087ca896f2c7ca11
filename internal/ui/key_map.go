package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	back   key.Binding
	toggle key.Binding
	notes  key.Binding
	open   key.Binding
	detail key.Binding
	save   key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle done")),
		notes:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notes")),
		open:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in browser")),
		detail: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "description")),
		save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.toggle, k.notes, k.open},
		{k.detail, k.back, k.quit},
	}
}
