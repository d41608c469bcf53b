package state

// GameState represents the current state of the run
type GameState int

const (
	StateLoading GameState = iota
	StatePlaying
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Steps reports whether the world advances in this state
func (s GameState) Steps() bool {
	return s == StatePlaying
}

// Toggle switches between playing and paused. Other states are unchanged.
func (s GameState) Toggle() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}
