package state

import (
	"fmt"
	"io"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Mode is the global input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Outcome tells the event loop what, beyond the state change, a key produced.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeQuit
	OutcomeShowCursor
	OutcomeHideCursor
)

// App is the root of the state machine. It owns the mode, the tab navigator, the edit buffer
// and one [TabController] per tab.
type App struct {
	mode        Mode
	tabs        Tabs
	controllers []TabController
	buffer      EditBuffer
	committer   Committer
	keys        KeyMap
	logger      *log.Logger
}

// NewApp registers controllers in tab order and activates the first tab.
//
// At least one controller is required. A nil logger discards output.
func NewApp(keys KeyMap, logger *log.Logger, controllers ...TabController) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	titles := make([]string, len(controllers))
	for i, c := range controllers {
		titles[i] = c.Title()
	}

	a := &App{controllers: controllers, keys: keys, logger: logger}
	a.tabs.SetTitles(titles)
	return a
}

func (a *App) Mode() Mode          { return a.mode }
func (a *App) Tabs() *Tabs         { return &a.tabs }
func (a *App) Buffer() *EditBuffer { return &a.buffer }
func (a *App) Keys() KeyMap        { return a.keys }

// Active returns the controller of the active tab, or nil while no tab is active.
func (a *App) Active() TabController {
	i, ok := a.tabs.Active()
	if !ok || i >= len(a.controllers) {
		return nil
	}
	return a.controllers[i]
}

// Controller returns the registered controller of the given kind.
func (a *App) Controller(kind TabKind) (TabController, bool) {
	for _, c := range a.controllers {
		if c.Kind() == kind {
			return c, true
		}
	}
	return nil, false
}

// HandleKey routes one key press according to the mode and the active tab.
//
// The returned error comes from a failed write-through. The source list and its selection are unchanged by it;
// a failed commit still leaves Edit mode with an empty buffer.
func (a *App) HandleKey(msg tea.KeyMsg) (Outcome, error) {
	if a.mode == ModeEdit {
		return a.handleEdit(msg)
	}
	return a.handleNormal(msg)
}

func (a *App) handleNormal(msg tea.KeyMsg) (Outcome, error) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return OutcomeQuit, nil
	case key.Matches(msg, a.keys.PrevTab):
		a.switchTab(a.tabs.Previous)
		return OutcomeNone, nil
	case key.Matches(msg, a.keys.NextTab):
		a.switchTab(a.tabs.Next)
		return OutcomeNone, nil
	}

	active := a.Active()
	if active == nil {
		return OutcomeNone, nil
	}

	cmd, err := active.HandleKey(msg)
	if err != nil {
		return OutcomeNone, fmt.Errorf("%s: %w", active.Title(), err)
	}

	if cmd == CommandEdit {
		committer, ok := active.(Committer)
		if !ok {
			a.logger.Warn("tab cannot accept input", "tab", active.Title())
			return OutcomeNone, nil
		}
		a.mode = ModeEdit
		a.committer = committer
		a.buffer.Clear()
		a.logger.Debug("mode changed", "mode", a.mode, "tab", active.Title())
		return OutcomeShowCursor, nil
	}
	return OutcomeNone, nil
}

func (a *App) handleEdit(msg tea.KeyMsg) (Outcome, error) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return OutcomeNone, nil
		}
		// Pasted text arrives as one message and may carry newlines or tabs.
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				a.buffer.Push(r)
			}
		}
	case tea.KeySpace:
		if !msg.Alt {
			a.buffer.Push(' ')
		}
	case tea.KeyBackspace:
		a.buffer.Backspace()
	case tea.KeyEnter:
		text := a.buffer.String()
		committer := a.leaveEdit()
		if err := committer.Commit(text); err != nil {
			return OutcomeHideCursor, fmt.Errorf("commit: %w", err)
		}
		return OutcomeHideCursor, nil
	case tea.KeyEsc:
		a.leaveEdit()
		return OutcomeHideCursor, nil
	}
	return OutcomeNone, nil
}

// leaveEdit clears the buffer, returns to Normal mode and hands back the committer that opened the edit.
func (a *App) leaveEdit() Committer {
	committer := a.committer
	a.buffer.Clear()
	a.committer = nil
	a.mode = ModeNormal
	a.logger.Debug("mode changed", "mode", a.mode)
	if committer == nil {
		return discard{}
	}
	return committer
}

func (a *App) switchTab(move func()) {
	before, _ := a.tabs.Active()
	move()
	after, ok := a.tabs.Active()
	if !ok || after == before {
		return
	}
	if c := a.Active(); c != nil {
		c.Activate()
		a.logger.Debug("tab changed", "tab", c.Title())
	}
}

type discard struct{}

func (discard) Commit(string) error { return nil }
