package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit      key.Binding
	FocusList   key.Binding
	FocusInput  key.Binding
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	Remove      key.Binding
	CycleFilter key.Binding
	ShowAll     key.Binding
	ShowActive  key.Binding
	ShowDone    key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		FocusList:   key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "list")),
		FocusInput:  key.NewBinding(key.WithKeys("tab", "a", "i"), key.WithHelp("a", "add item")),
		Up:          key.NewBinding(key.WithKeys("up", "k", "ctrl+p"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j", "ctrl+n"), key.WithHelp("↓/j", "down")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle")),
		Remove:      key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		CycleFilter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		ShowAll:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		ShowActive:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		ShowDone:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// inputKeys is the help.KeyMap shown while the title field has focus.
type inputKeys struct{ k keyMap }

func (h inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Submit, h.k.FocusList}
}

func (h inputKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

// listKeys is the help.KeyMap shown while the list has focus.
type listKeys struct{ k keyMap }

func (h listKeys) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Toggle, h.k.Remove, h.k.CycleFilter, h.k.FocusInput, h.k.Help, h.k.Quit}
}

func (h listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.Toggle, h.k.Remove},
		{h.k.CycleFilter, h.k.ShowAll, h.k.ShowActive, h.k.ShowDone},
		{h.k.FocusInput, h.k.Help, h.k.Quit},
	}
}
