// Package tui runs Jungle Run in the terminal with Bubble Tea. It maps keys
// to intents, drives the game from wall-clock frames and hosts the title
// menu and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the given
// frame rate. The simulation tick is fixed; the frame rate only sets how
// often the driver catches up.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
