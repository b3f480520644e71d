// Package tui runs Crash Course in a terminal with Bubble Tea, locally or
// over SSH. It handles the frame loop, input mapping, and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the runtime config leaves the rate unset.
const defaultTickRate = 60

// TickMsg asks the model to step the game once.
type TickMsg time.Time

// tickInterval is the wall time between ticks at tickRate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next TickMsg one interval from now.
func tickCmd(tickRate int) tea.Cmd {
	interval := tickInterval(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
