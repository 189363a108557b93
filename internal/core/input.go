package core

// Action represents a semantic game action, abstracted from physical key presses.
// Hosts deliver at most one action per frame.
type Action int

const (
	ActionNone Action = iota
	ActionPlay        // P - start or restart a round from the menus
	ActionQuit        // Q - leave the game from the menus
	ActionFlap        // Space - upward impulse while playing
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPlay:
		return "Play"
	case ActionQuit:
		return "Quit"
	case ActionFlap:
		return "Flap"
	default:
		return "Unknown"
	}
}
