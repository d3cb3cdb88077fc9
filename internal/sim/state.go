package sim

// State is the run/pause state of a simulation.
type State int

const (
	StateRun State = iota
	StatePause
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRun:
		return "RUN"
	case StatePause:
		return "PAUSE"
	default:
		return "UNKNOWN"
	}
}

// StateMachine gates the update step. The zero value is running.
// Transitions only happen on external signals.
type StateMachine struct {
	state State
}

// Pause moves to PAUSE.
func (m *StateMachine) Pause() {
	m.state = StatePause
}

// Resume moves to RUN.
func (m *StateMachine) Resume() {
	m.state = StateRun
}

// Toggle flips between RUN and PAUSE.
func (m *StateMachine) Toggle() {
	if m.state == StateRun {
		m.state = StatePause
	} else {
		m.state = StateRun
	}
}

// State returns the current state.
func (m StateMachine) State() State {
	return m.state
}

// Running reports whether updates should execute.
func (m StateMachine) Running() bool {
	return m.state == StateRun
}
