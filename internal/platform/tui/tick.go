// Package tui hosts games in the terminal with Bubble Tea. It owns the
// fixed-rate tick loop, turns keys and mouse events into input frames and
// paints the game's screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the runtime config asks for a non-positive rate.
const defaultTickRate = 60

// TickMsg asks the model to advance the game by one tick.
type TickMsg time.Time

// tickCmd schedules the next TickMsg tickRate times per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
