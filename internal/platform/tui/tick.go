// Package tui provides the Bubble Tea integration: the play loop, input
// mapping, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives the board's time advance at a fixed rate.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at fps.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
