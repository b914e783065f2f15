package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the game
type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Cancel  key.Binding
	Draw    key.Binding
	Undo    key.Binding
	Refresh key.Binding
	Auto    key.Binding
	NewGame key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move cursor"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move cursor"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select/place card"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel selection"),
		),
		Draw: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "draw (or refresh when depleted)"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh deck"),
		),
		Auto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto-move card under cursor"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the condensed help line
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Draw, k.Undo, k.Auto, k.NewGame, k.Help, k.Quit}
}

// FullHelp returns the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Select, k.Cancel},
		{k.Draw, k.Refresh, k.Undo, k.Auto},
		{k.NewGame, k.Help, k.Quit},
	}
}
