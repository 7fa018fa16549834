package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/desertthunder/songbreeze/internal/state"
)

var _ help.KeyMap = helpKeys{}

// helpKeys adapts the bindings relevant to the current mode and tab to [help.KeyMap].
type helpKeys struct {
	short []key.Binding
}

func (k helpKeys) ShortHelp() []key.Binding  { return k.short }
func (k helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.short} }

// newHelpKeys lists the edit bindings in Edit mode, otherwise the active tab's bindings followed by the global ones.
func newHelpKeys(app *state.App) helpKeys {
	keys := app.Keys()
	if app.Mode() == state.ModeEdit {
		return helpKeys{short: keys.EditHelp()}
	}

	var short []key.Binding
	if c := app.Active(); c != nil {
		short = append(short, c.Help()...)
	}
	return helpKeys{short: append(short, keys.ShortHelp()...)}
}
