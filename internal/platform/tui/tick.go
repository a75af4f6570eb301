// Package tui runs a registered game in the terminal with Bubble Tea.
// It owns the frame clock, maps keys to actions and paints the game's
// screen buffer with lipgloss. It holds no game rules.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at the given rate (ticks per second).
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
