package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/songbreeze/internal/store"
)

// Command is a request from a tab controller back to the [App].
type Command int

const (
	CommandNone Command = iota
	// CommandEdit opens the edit overlay. The controller must implement [Committer].
	CommandEdit
)

// TabController handles the Normal mode keys that reach one tab.
type TabController interface {
	// Kind identifies the controller for rendering.
	Kind() TabKind
	// Title is shown in the tab bar.
	Title() string
	// HandleKey applies one key. Unknown keys are ignored.
	HandleKey(msg tea.KeyMsg) (Command, error)
	// Activate runs when the tab is entered from another tab.
	Activate()
	// Help lists the bindings the tab responds to.
	Help() []key.Binding
}

// Committer receives the text of a committed edit.
type Committer interface {
	Commit(text string) error
}

var (
	_ TabController = (*HomeController)(nil)
	_ TabController = (*SourcesController)(nil)
	_ TabController = (*SettingsController)(nil)
	_ Committer     = (*SourcesController)(nil)
)

// HomeController browses playlists and their songs.
type HomeController struct {
	browser *PlaylistBrowser
	keys    KeyMap
}

// NewHomeController creates the Home tab over browser.
func NewHomeController(browser *PlaylistBrowser, keys KeyMap) *HomeController {
	return &HomeController{browser: browser, keys: keys}
}

func (c *HomeController) Kind() TabKind { return TabHome }
func (c *HomeController) Title() string { return TabHome.String() }

// Browser exposes the selection state for rendering.
func (c *HomeController) Browser() *PlaylistBrowser { return c.browser }

// Activate resets focus to the playlist pane.
func (c *HomeController) Activate() { c.browser.Reset() }

func (c *HomeController) HandleKey(msg tea.KeyMsg) (Command, error) {
	switch {
	case key.Matches(msg, c.keys.Down):
		c.browser.Next()
	case key.Matches(msg, c.keys.Up):
		c.browser.Previous()
	case key.Matches(msg, c.keys.DrillIn):
		c.browser.Enter()
	case key.Matches(msg, c.keys.DrillOut):
		c.browser.Exit()
	}
	return CommandNone, nil
}

func (c *HomeController) Help() []key.Binding {
	if c.browser.Focus() == FocusMid {
		return []key.Binding{c.keys.Down, c.keys.Up, c.keys.DrillOut}
	}
	return []key.Binding{c.keys.Down, c.keys.Up, c.keys.DrillIn}
}

// SourcesController lists, adds and deletes source directories.
type SourcesController struct {
	store     *store.ListStore
	selection Selection
	keys      KeyMap
}

// NewSourcesController creates the Sources tab over a loaded store, selecting the first source if any.
func NewSourcesController(s *store.ListStore, keys KeyMap) *SourcesController {
	c := &SourcesController{store: s, keys: keys}
	c.selection.Fit(s.Len())
	return c
}

func (c *SourcesController) Kind() TabKind { return TabSources }
func (c *SourcesController) Title() string { return TabSources.String() }
func (c *SourcesController) Activate()     {}

// Sources returns the current list.
func (c *SourcesController) Sources() []string { return c.store.Items() }

// Selected returns the selected index.
func (c *SourcesController) Selected() (int, bool) { return c.selection.Index() }

// Location describes where the list is persisted.
func (c *SourcesController) Location() string { return c.store.Location() }

func (c *SourcesController) HandleKey(msg tea.KeyMsg) (Command, error) {
	switch {
	case key.Matches(msg, c.keys.Down):
		c.selection.Next(c.store.Len())
	case key.Matches(msg, c.keys.Up):
		c.selection.Previous(c.store.Len())
	case key.Matches(msg, c.keys.Add):
		return CommandEdit, nil
	case key.Matches(msg, c.keys.Delete):
		return CommandNone, c.deleteSelected()
	}
	return CommandNone, nil
}

// Commit appends text as a new source. Empty text is ignored.
//
// An existing selection is kept; an unset one moves to the new source.
func (c *SourcesController) Commit(text string) error {
	added, err := c.store.Append(text)
	if err != nil {
		return err
	}
	if _, ok := c.selection.Index(); added && !ok {
		c.selection.Select(c.store.Len()-1, c.store.Len())
	}
	return nil
}

// deleteSelected removes the selected source and then selects the last remaining one.
func (c *SourcesController) deleteSelected() error {
	i, ok := c.selection.Index()
	if !ok {
		return nil
	}

	removed, err := c.store.Remove(i)
	if err != nil || !removed {
		return err
	}

	if n := c.store.Len(); n > 0 {
		c.selection.Select(n-1, n)
	} else {
		c.selection.Clear()
	}
	return nil
}

func (c *SourcesController) Help() []key.Binding {
	return []key.Binding{c.keys.Down, c.keys.Up, c.keys.Add, c.keys.Delete}
}

// Setting is one read-only line of the Settings tab.
type Setting struct {
	Name  string
	Value string
}

// SettingsController shows the effective configuration. It ignores every key.
type SettingsController struct {
	settings []Setting
}

// NewSettingsController creates the Settings tab showing settings in order.
func NewSettingsController(settings []Setting) *SettingsController {
	return &SettingsController{settings: settings}
}

func (c *SettingsController) Kind() TabKind       { return TabSettings }
func (c *SettingsController) Title() string       { return TabSettings.String() }
func (c *SettingsController) Activate()           {}
func (c *SettingsController) Help() []key.Binding { return nil }
func (c *SettingsController) Settings() []Setting { return c.settings }

func (c *SettingsController) HandleKey(tea.KeyMsg) (Command, error) { return CommandNone, nil }
