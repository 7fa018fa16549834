package state

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the [key.Binding] mapping for the engine.
//
// Bindings match the key string exactly, so a modified key ("alt+j") never triggers the plain binding.
type KeyMap struct {
	Quit      key.Binding
	PrevTab   key.Binding
	NextTab   key.Binding
	Down      key.Binding
	Up        key.Binding
	DrillIn   key.Binding
	DrillOut  key.Binding
	Add       key.Binding
	Delete    key.Binding
	Commit    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
}

func NewKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		PrevTab:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "prev tab")),
		NextTab:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "next tab")),
		Down:      key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "down")),
		Up:        key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "up")),
		DrillIn:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "open playlist")),
		DrillOut:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add source")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete source")),
		Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete char")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevTab, k.NextTab, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.DrillIn, k.DrillOut},
		{k.Add, k.Delete},
		{k.PrevTab, k.NextTab, k.Quit},
	}
}

// EditHelp lists the bindings active in Edit mode.
func (k KeyMap) EditHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Cancel, k.Backspace}
}
