// Package tui runs the game in a terminal with Bubble Tea, locally or per
// SSH session. It owns the frame loop, key handling and audio hand-off; the
// simulation itself lives in internal/game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of a frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time since the previous frame. The first frame
// and clock steps backwards yield zero.
func frameDelta(last, now time.Time) time.Duration {
	if last.IsZero() {
		return 0
	}
	return max(now.Sub(last), 0)
}
