package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextView key.Binding
	Write    key.Binding
	Earlier  key.Binding
	Later    key.Binding
	Wider    key.Binding
	Narrower key.Binding
	Up       key.Binding
	Down     key.Binding
	Filter   key.Binding
	Reload   key.Binding
	Save     key.Binding
	Field    key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	NextView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
	Write:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write today")),
	Earlier:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "earlier")),
	Later:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "later")),
	Wider:    key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "wider window")),
	Narrower: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "narrower window")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Field:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Write, k.Earlier, k.Later, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextView, k.Write, k.Reload, k.Help, k.Quit},
		{k.Earlier, k.Later, k.Wider, k.Narrower},
		{k.Up, k.Down, k.Filter, k.Back},
		{k.Field, k.Save},
	}
}
