package terminal

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	LongSelect key.Binding
	Back       key.Binding
	DoubleBack key.Binding
	Bluetooth  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		LongSelect: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "long select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		DoubleBack: key.NewBinding(
			key.WithKeys("I"),
			key.WithHelp("I", "invert"),
		),
		Bluetooth: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bluetooth"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Down, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Select, k.Down, k.Back},
		{k.LongSelect, k.DoubleBack, k.Bluetooth},
		{k.Help, k.Quit},
	}
}
