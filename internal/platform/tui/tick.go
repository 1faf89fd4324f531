// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and tick scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one game simulation step. Seq tags the tick with the
// timer schedule it was armed under; the model drops ticks whose tag no
// longer matches the game's current schedule, which is how a cancelled
// timer stops firing.
type TickMsg struct {
	Seq uint64
}

// tickCmd schedules a single tick after the given interval.
func tickCmd(interval time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Seq: seq}
	})
}
