package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			CellWidth:  2,
			CellHeight: 1,
			LineWidth:  0,
		},
		Pacing: PacingConfig{
			StartingDelayMs: 200,
			MinDelayMs:      50,
			DelayDeltaMs:    5,
			SpeedUp:         true,
		},
		Walls: SnakeWalls{
			Fraction: 0.05,
		},
		Placement: SnakePlacement{
			MaxAttempts: 10000,
		},
		Colors: SnakeColors{
			Snake:      "green",
			Dead:       "gray",
			Food:       "light_gray",
			Wall:       "blue",
			GridLine:   "dark_gray",
			Background: "black",
			Text:       "white",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake", "snake_open":
		return defaultSnakeYAML
	default:
		return nil
	}
}
