// Package tui provides the Bubble Tea integration for Dustward.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// minTickRate guards against a zero or negative fps flag.
const minTickRate = 1

// tickCmd returns a Bubble Tea command that fires ticks at the given
// rate in frames per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate < minTickRate {
		tickRate = minTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
