package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/songbreeze/internal/state"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	defaultTick   = 100 * time.Millisecond

	// blinkTicks is the number of ticks the edit cursor stays in one blink phase.
	blinkTicks = 5
	// editRows is the height of the edit text area: the scroll threshold plus the cursor row.
	editRows = 4
)

// renderFunc draws the body of one tab into a width x height box.
type renderFunc func(m *Model, c state.TabController, width, height int) string

// Model is the bubbletea model wrapping a [state.App].
//
// Every key goes through [state.App.HandleKey]; the model only maps outcomes onto bubbletea commands
// and renders the resulting state.
type Model struct {
	app    *state.App
	logger *log.Logger
	views  map[state.TabKind]renderFunc
	help   help.Model

	interval      time.Duration
	width         int
	height        int
	frame         int
	cursorVisible bool
	status        statusLine
	startup       []statusLine
	err           error
}

// Option configures a [Model].
type Option func(*Model)

// WithTick sets the interval between redraw ticks.
func WithTick(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithStatus queues a status line shown once the program starts. When several are queued the first of the
// most severe is shown.
func WithStatus(level Level, text string) Option {
	return func(m *Model) {
		if text != "" {
			m.startup = append(m.startup, statusLine{level: level, text: text})
		}
	}
}

// NewModel creates the TUI model for app.
func NewModel(app *state.App, logger *log.Logger, opts ...Option) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Model{
		app:      app,
		logger:   logger,
		help:     help.New(),
		interval: defaultTick,
		views: map[state.TabKind]renderFunc{
			state.TabHome:     renderHome,
			state.TabSources:  renderSources,
			state.TabSettings: renderSettings,
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Err returns the error that ended the program, if any.
func (m *Model) Err() error { return m.err }

// Init starts the redraw ticker and publishes the most severe queued status line.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick(m.interval)}
	if len(m.startup) > 0 {
		line := m.startup[0]
		for _, l := range m.startup[1:] {
			if l.level > line.level {
				line = l
			}
		}
		cmds = append(cmds, func() tea.Msg { return statusMsg(line.level, line.text) })
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case Msg:
		switch msg.kind {
		case MsgTick:
			m.frame++
			return m, tick(m.interval)
		case MsgStatus:
			m.status, _ = msg.data.(statusLine)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	out, err := m.app.HandleKey(msg)
	if err != nil {
		m.logger.Error("failed to persist change", "key", msg.String(), "error", err)
		m.err = err
		return m, tea.Quit
	}

	switch out {
	case state.OutcomeQuit:
		m.logger.Info("quit requested")
		return m, tea.Quit
	case state.OutcomeShowCursor:
		m.cursorVisible = true
		m.frame = 0
	case state.OutcomeHideCursor:
		m.cursorVisible = false
	}
	return m, nil
}

// View renders the tab bar, the active tab (or the edit popup in Edit mode), the status line and the help bar.
func (m *Model) View() string {
	width, height := m.size()

	tabs := m.renderTabs(width)
	footer := m.renderFooter(width)
	bodyHeight := max(height-lipgloss.Height(tabs)-lipgloss.Height(footer), 1)

	var body string
	switch active := m.app.Active(); {
	case m.app.Mode() == state.ModeEdit:
		body = lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderEdit(width))
	case active == nil:
		body = styles.help.Render("no tab selected")
	default:
		render, ok := m.views[active.Kind()]
		if !ok {
			body = styles.warn.Render(fmt.Sprintf("nothing to show for %s", active.Title()))
			break
		}
		body = render(m, active, width, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabs, body, footer)
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m *Model) renderTabs(width int) string {
	active, ok := m.app.Tabs().Active()
	titles := m.app.Tabs().Titles()

	rendered := make([]string, len(titles))
	for i, title := range titles {
		if ok && i == active {
			rendered[i] = styles.tabOn.Render(title)
		} else {
			rendered[i] = styles.tab.Render(title)
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, append([]string{styles.title.Render("songbreeze ")}, rendered...)...)
	return lipgloss.NewStyle().MaxWidth(width).Render(bar)
}

func (m *Model) renderFooter(width int) string {
	lines := make([]string, 0, 2)
	if m.status.text != "" {
		style := styles.warn
		if m.status.level == LevelError {
			style = styles.err
		}
		lines = append(lines, style.Render(truncate(m.status.text, width)))
	}
	lines = append(lines, m.help.View(newHelpKeys(m.app)))
	return strings.Join(lines, "\n")
}

// renderEdit draws the edit popup. The cursor is drawn at the buffer's display row and column,
// blinking with the tick.
func (m *Model) renderEdit(width int) string {
	inner := max(min(width-8, 60), 1)
	buffer := m.app.Buffer()
	cursor := buffer.Position(inner)

	lines := buffer.VisibleLines(inner)
	if m.cursorVisible && (m.frame/blinkTicks)%2 == 0 {
		line := []rune(lines[cursor.DisplayRow])
		glyph := styles.cursor.Render(" ")
		if cursor.Col < len(line) {
			lines[cursor.DisplayRow] = string(line[:cursor.Col]) + glyph + string(line[cursor.Col+1:])
		} else {
			lines[cursor.DisplayRow] = string(line) + glyph
		}
	}
	for len(lines) < editRows {
		lines = append(lines, "")
	}

	title := styles.title.Render("Add source")
	area := lipgloss.NewStyle().Width(inner + 1).Render(strings.Join(lines, "\n"))
	return styles.popup.Render(lipgloss.JoinVertical(lipgloss.Left, title, area))
}
