package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, H, Left arrow - move left
	ActionRight          // D, L, Right arrow - move right
	ActionPause          // P - pause
	ActionResume         // R - resume
	ActionToggle         // Esc, Space - toggle pause
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B - go back to menu
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
	case ActionResume:
		return "Resume"
	case ActionToggle:
		return "Toggle"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single frame.
// It contains all actions that were triggered during this frame and the
// most recent pointer column, if the pointer moved.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// PointerX is the pointer column in screen cells. Only meaningful when
	// HasPointer is set.
	PointerX   int
	HasPointer bool
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

// Point records a pointer sample. Later samples in the same frame win.
func (f *InputFrame) Point(col int) {
	f.PointerX = col
	f.HasPointer = true
}

// Clear resets all actions and the pointer sample for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.HasPointer = false
}
