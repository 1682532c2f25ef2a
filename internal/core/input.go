package core

// Action is a semantic input intent, decoupled from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // H, A, Left arrow
	ActionRight          // L, D, Right arrow
	ActionRestart        // Space, R after game over
	ActionRanking        // Tab - toggle the ranking table
	ActionHelp           // ? - toggle full help
	ActionQuit           // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionRanking:
		return "Ranking"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions held during one frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as held.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is held.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear releases every action.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone returns an independent copy.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	return c
}
