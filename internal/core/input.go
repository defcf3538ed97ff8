package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionNorth        // Up arrow, W, K
	ActionSouth        // Down arrow, S, J
	ActionEast         // Right arrow, D, L
	ActionWest         // Left arrow, A, H
	ActionTurbo        // Space - toggle speed boost
	ActionAny          // Any other key - leaves the splash screen
	ActionBack         // B, Escape - go back to menu
	ActionQuit         // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNorth:
		return "North"
	case ActionSouth:
		return "South"
	case ActionEast:
		return "East"
	case ActionWest:
		return "West"
	case ActionTurbo:
		return "Turbo"
	case ActionAny:
		return "Any"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action requests a movement direction.
func (a Action) IsDirection() bool {
	return a >= ActionNorth && a <= ActionWest
}
