// Package tui provides the Bubble Tea integration for skyfall.
// It handles the terminal UI loop, input mapping, timing and audio wiring.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed between two ticks. The first tick
// has no predecessor and counts as one nominal frame.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() || !now.After(prev) {
		return 1 / float64(tickRate)
	}
	return now.Sub(prev).Seconds()
}
