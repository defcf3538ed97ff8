package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Drawing surface width in characters
	ScreenH int   // Drawing surface height in characters
	Seed    int64 // RNG seed for deterministic gameplay

	ConfigPath string // Custom game config file; empty uses the search order
	Difficulty string // Difficulty preset name; empty uses the config as is
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Segment count captured when the last run ended
	Length   int  // Current snake length
	Started  bool // A run is in progress
	FirstRun bool // No run has been played yet
	Turbo    bool // Speed boost active
}
