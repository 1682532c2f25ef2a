package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-down/internal/core"
)

// holdWindow is how long a direction counts as held after its last key
// event. Terminals only report presses and auto-repeats, never releases.
const holdWindow = 150 * time.Millisecond

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Ranking key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Restart, k.Ranking, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Restart, k.Ranking},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys(" ", "r"),
			key.WithHelp("space", "retry"),
		),
		Ranking: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "ranking"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action maps a key message to a core action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Ranking):
		return core.ActionRanking
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// heldKeys approximates key state from press events: a direction stays
// held for holdWindow after each press or repeat.
type heldKeys struct {
	until map[core.Action]time.Time
	in    core.InputFrame
}

func newHeldKeys() heldKeys {
	return heldKeys{
		until: make(map[core.Action]time.Time, 2),
		in:    core.NewInputFrame(),
	}
}

// press marks a direction held. Pressing one direction releases the other.
func (h heldKeys) press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	default:
		return
	}
	h.until[a] = now.Add(holdWindow)
}

// frame returns the directions held at now.
func (h heldKeys) frame(now time.Time) core.InputFrame {
	h.in.Clear()
	for a, until := range h.until {
		if now.Before(until) {
			h.in.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	return h.in.Clone()
}

func (h heldKeys) release() {
	clear(h.until)
}
