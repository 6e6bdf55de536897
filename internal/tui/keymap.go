package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Switch   key.Binding
	Decrease key.Binding
	Increase key.Binding
	Coarse   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch bound"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "-$5,000"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "+$5,000"),
		),
		Coarse: key.NewBinding(
			key.WithKeys("shift+left", "shift+right", "H", "L"),
			key.WithHelp("shift+←/→", "±$25,000"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Decrease, k.Increase, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Switch, k.Decrease, k.Increase, k.Coarse},
		{k.Help, k.Quit},
	}
}
