// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game loop step.
// Gen identifies the tick chain; a model restarts the chain by bumping its
// generation, and ticks from older chains are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// scheduleTick returns a Bubble Tea command that fires a single tick after delay.
// Each handled tick schedules its own successor.
func scheduleTick(gen uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
