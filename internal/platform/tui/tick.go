// Package tui provides the Bubble Tea front-end: a command console that
// feeds the engine normalized commands and renders its snapshots. It is a
// pure consumer of engine state; all game rules live in internal/engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers a periodic refresh so asynchronous engine activity
// (the level-advance timer) shows up without user input.
type TickMsg time.Time

const refreshInterval = 200 * time.Millisecond

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
