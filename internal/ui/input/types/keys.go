package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal mode bindings. It doubles as the help footer.
type KeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	JumpBack  key.Binding
	JumpAhead key.Binding
	Random    key.Binding
	GoTo      key.Binding
	ShiftDown key.Binding
	ShiftUp   key.Binding
	Direction key.Binding
	Status    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the bindings shown in help
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous page")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		JumpBack:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "go to -20")),
		JumpAhead: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "go to 20")),
		Random:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random page")),
		GoTo:      key.NewBinding(key.WithKeys("g", ":"), key.WithHelp("g", "go to page")),
		ShiftDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "decrease offset")),
		ShiftUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increase offset")),
		Direction: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mirror layout")),
		Status:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle status")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.GoTo, k.Random, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.JumpBack, k.JumpAhead, k.Random, k.GoTo},
		{k.ShiftDown, k.ShiftUp, k.Direction, k.Status},
		{k.Help, k.Quit},
	}
}
