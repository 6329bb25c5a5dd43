package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Cursor movement
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Move to the next/previous cell while editing
	NextCell key.Binding
	PrevCell key.Binding

	// Editing
	Edit   key.Binding
	Commit key.Binding
	Leave  key.Binding

	// Month selection
	PrevMonth  key.Binding
	NextMonth  key.Binding
	PickMonth  key.Binding
	SwitchBack key.Binding
	SwitchFwd  key.Binding

	// Command palette
	Command key.Binding

	// Help toggle
	Help key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous task"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next task"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "previous day"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next day"),
		),
		NextCell: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "save, edit next cell"),
		),
		PrevCell: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "save, edit previous cell"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e", "i"),
			key.WithHelp("enter", "edit cell"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save cell"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "save and leave cell"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next month"),
		),
		PickMonth: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "select month"),
		),
		SwitchBack: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "previous month (drops draft)"),
		),
		SwitchFwd: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "next month (drops draft)"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Left, k.Right, k.Edit,
		k.PickMonth, k.Quit, k.Help,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Edit, k.Commit, k.Leave, k.NextCell, k.PrevCell},
		{k.PrevMonth, k.NextMonth, k.PickMonth, k.SwitchBack, k.SwitchFwd},
		{k.Command, k.Help, k.Back, k.Quit},
	}
}
