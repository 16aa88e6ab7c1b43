package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit        key.Binding
	Help        key.Binding
	Back        key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	TogglePanel key.Binding
	ToggleLogs  key.Binding
	ViewLog     key.Binding
	Select      key.Binding
	Install     key.Binding
	Preflight   key.Binding
	Refresh     key.Binding
	Search      key.Binding
}

var Keys = KeyMap{
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown:    key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	TogglePanel: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle logs")),
	ToggleLogs:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "show/hide all logs")),
	ViewLog:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view step log")),
	Select:      key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select step")),
	Install:     key.NewBinding(key.WithKeys("I"), key.WithHelp("I", "install")),
	Preflight:   key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "run preflight")),
	Refresh:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search logs")),
}
