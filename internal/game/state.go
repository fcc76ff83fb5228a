// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateRunning means the snake advances on every tick.
	StateRunning State = iota
	// StateEnded means the snake hit a wall or itself. The last frame stays on
	// screen and input is still read until the player quits or restarts.
	StateEnded
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}
