package manager

import (
	"fmt"
	"log"
)

// State is the phase of a game session.
type State int

const (
	Running  State = iota
	GameOver       // snake ran into itself
	Cleared        // snake covers the whole grid
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game over"
	case Cleared:
		return "cleared"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no more ticks will be simulated.
func (s State) Terminal() bool {
	return s != Running
}

// StateManager owns the session phase. Once terminal it only changes
// through Reset.
type StateManager struct {
	state  State
	logger *log.Logger
	label  string
}

func NewStateManager(label string, logger *log.Logger) *StateManager {
	return &StateManager{
		state:  Running,
		logger: logger,
		label:  label,
	}
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) Terminal() bool {
	return sm.state.Terminal()
}

// Transition moves a running session to next. Calls on a terminal session
// are ignored; it returns whether the state changed.
func (sm *StateManager) Transition(next State) bool {
	if sm.state.Terminal() || next == sm.state {
		return false
	}
	if sm.logger != nil {
		sm.logger.Printf("session %s: %s -> %s", sm.label, sm.state, next)
	}
	sm.state = next
	return true
}

// Restore sets the state directly, without logging. Used when copying a
// session.
func (sm *StateManager) Restore(state State) {
	sm.state = state
}

// Reset returns to Running.
func (sm *StateManager) Reset() {
	sm.state = Running
}
