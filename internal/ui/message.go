package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MsgKind enumerates the messages the [Model] sends itself.
type MsgKind int

// Msg represents all internal messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgTick MsgKind = iota
	MsgStatus
)

// Level selects how a status line is styled.
type Level int

const (
	LevelWarn Level = iota
	LevelError
)

type statusLine struct {
	level Level
	text  string
}

// tickMsg is the constructor for [MsgTick]
func tickMsg(at time.Time) Msg {
	return Msg{kind: MsgTick, data: at}
}

// statusMsg is the constructor for [MsgStatus]
func statusMsg(level Level, text string) Msg {
	return Msg{kind: MsgStatus, data: statusLine{level: level, text: text}}
}

// tick schedules the next [MsgTick] after d.
func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(at time.Time) tea.Msg { return tickMsg(at) })
}
