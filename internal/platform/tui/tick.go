// Package tui is the terminal frontend: a Bubble Tea program that drives
// the game loop, maps keys to actions and projects the game's canvas onto
// character cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fpv-neon/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(core.TickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
