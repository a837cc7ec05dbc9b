package manager

import "fmt"

// State is the screen the game is on.
type State int

const (
	StateMenu State = iota
	StateRunning
	StatePaused
	StateEnded
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	case StateQuit:
		return "quit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Action is a request to move between screens.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionRetry
	ActionMenu
	ActionQuit
	ActionPause
	ActionResume
	ActionEnd
	ActionToggleWalls
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionRetry:
		return "retry"
	case ActionMenu:
		return "menu"
	case ActionQuit:
		return "quit"
	case ActionPause:
		return "pause"
	case ActionResume:
		return "resume"
	case ActionEnd:
		return "end"
	case ActionToggleWalls:
		return "toggle-walls"
	default:
		return "none"
	}
}

var transitions = map[State]map[Action]State{
	StateMenu: {
		ActionStart:       StateRunning,
		ActionToggleWalls: StateMenu,
		ActionQuit:        StateQuit,
	},
	StateRunning: {
		ActionPause: StatePaused,
		ActionEnd:   StateEnded,
		ActionQuit:  StateQuit,
	},
	StatePaused: {
		ActionResume: StateRunning,
		ActionMenu:   StateMenu,
		ActionQuit:   StateQuit,
	},
	StateEnded: {
		ActionRetry: StateRunning,
		ActionMenu:  StateMenu,
		ActionQuit:  StateQuit,
	},
}

// StateManager owns the screen state. Quit is terminal.
type StateManager struct {
	state State
}

func NewStateManager() *StateManager {
	return &StateManager{state: StateMenu}
}

func (sm *StateManager) State() State {
	return sm.state
}

// Can reports whether a is allowed from the current state.
func (sm *StateManager) Can(a Action) bool {
	_, ok := transitions[sm.state][a]
	return ok
}

// Fire applies a and returns the new state. Actions that are not allowed
// leave the state untouched and return false.
func (sm *StateManager) Fire(a Action) (State, bool) {
	next, ok := transitions[sm.state][a]
	if !ok {
		return sm.state, false
	}
	sm.state = next
	return next, true
}
