package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo key bindings
type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	GoTo   key.Binding
	Recalc key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap(vertical bool) keyMap {
	nextKeys, prevKeys := []string{"right", "l"}, []string{"left", "h"}
	if vertical {
		nextKeys, prevKeys = []string{"down", "j"}, []string{"up", "k"}
	}
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys(nextKeys...),
			key.WithHelp(nextKeys[0], "next frame"),
		),
		Prev: key.NewBinding(
			key.WithKeys(prevKeys...),
			key.WithHelp(prevKeys[0], "previous frame"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "go to frame"),
		),
		Recalc: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recalculate"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.GoTo, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.GoTo},
		{k.Recalc, k.Help, k.Quit},
	}
}
