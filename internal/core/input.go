package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - steer left while held
	ActionRight          // Right arrow, D, L - steer right while held
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Touch is the pointer state for one tick. Terminals report mouse presses,
// which stand in for touches.
type Touch struct {
	Down bool // A press started this tick
	Up   bool // A press ended this tick
	Col  int  // Last known pointer column on screen
}

// InputFrame represents the input state during one simulation tick.
// Left and Right are level-triggered (held); the rest are edge-triggered.
type InputFrame struct {
	Actions map[Action]bool
	Touch   Touch
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and touch edges for the next frame.
// The pointer column is kept so a held touch keeps its position.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Touch.Down = false
	f.Touch.Up = false
}
