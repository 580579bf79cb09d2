// Package tui provides the Bubble Tea integration for the bouncer game.
// It handles the terminal UI loop, input mapping, rendering and the
// collaborator wiring (storage, audio) around the simulation engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. Each tick is one fixed simulation step regardless of
// wall-clock frame duration.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
