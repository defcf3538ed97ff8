// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Screen    SnakeScreen    `yaml:"screen"`
	Grid      SnakeGrid      `yaml:"grid"`
	Pacing    PacingConfig   `yaml:"pacing"`
	Walls     SnakeWalls     `yaml:"walls"`
	Placement SnakePlacement `yaml:"placement"`
	Colors    SnakeColors    `yaml:"colors"`
}

// SnakeScreen overrides the drawing surface size. Zero uses the terminal size.
type SnakeScreen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeGrid defines how the surface is divided into cells.
type SnakeGrid struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	LineWidth  float64 `yaml:"line_width"` // 0 disables grid lines
}

// PacingConfig defines the tick delay and how it shrinks as the snake grows.
type PacingConfig struct {
	StartingDelayMs int  `yaml:"starting_delay_ms"`
	MinDelayMs      int  `yaml:"min_delay_ms"`
	DelayDeltaMs    int  `yaml:"delay_delta_ms"` // Removed per extra segment
	SpeedUp         bool `yaml:"speed_up"`       // false keeps the starting delay
}

// SnakeWalls defines wall density.
type SnakeWalls struct {
	Fraction float64 `yaml:"fraction"` // Share of cells, 0..1
}

// SnakePlacement bounds the random placement loops.
type SnakePlacement struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// SnakeColors names the palette. Values are parsed with core.ParseColor.
type SnakeColors struct {
	Snake      string `yaml:"snake"`
	Dead       string `yaml:"dead"`
	Food       string `yaml:"food"`
	Wall       string `yaml:"wall"`
	GridLine   string `yaml:"grid_line"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
}

// Palette is the parsed form of SnakeColors.
type Palette struct {
	Snake      core.Color
	Dead       core.Color
	Food       core.Color
	Wall       core.Color
	GridLine   core.Color
	Background core.Color
	Text       core.Color
}

// Palette parses every color name.
func (c SnakeColors) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		key  string
		name string
		dst  *core.Color
	}{
		{"snake", c.Snake, &p.Snake},
		{"dead", c.Dead, &p.Dead},
		{"food", c.Food, &p.Food},
		{"wall", c.Wall, &p.Wall},
		{"grid_line", c.GridLine, &p.GridLine},
		{"background", c.Background, &p.Background},
		{"text", c.Text, &p.Text},
	}
	for _, f := range fields {
		col, err := core.ParseColor(f.name)
		if err != nil {
			return p, fmt.Errorf("colors.%s: %w", f.key, err)
		}
		*f.dst = col
	}
	return p, nil
}

// Validate reports every out-of-range value in the config.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Screen.Width < 0 || c.Screen.Height < 0 {
		errs = append(errs, fmt.Errorf("screen: size must not be negative, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Grid.CellWidth <= 0 || c.Grid.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("grid: cell size must be positive, got %gx%g", c.Grid.CellWidth, c.Grid.CellHeight))
	}
	if c.Grid.LineWidth < 0 {
		errs = append(errs, fmt.Errorf("grid: line_width must not be negative, got %g", c.Grid.LineWidth))
	} else if c.Grid.CellWidth > 0 && c.Grid.CellHeight > 0 &&
		(2*c.Grid.LineWidth >= c.Grid.CellWidth || 2*c.Grid.LineWidth >= c.Grid.CellHeight) {
		errs = append(errs, fmt.Errorf("grid: %gx%g cells too small for line_width %g",
			c.Grid.CellWidth, c.Grid.CellHeight, c.Grid.LineWidth))
	}
	if c.Pacing.MinDelayMs <= 0 {
		errs = append(errs, fmt.Errorf("pacing: min_delay_ms must be positive, got %d", c.Pacing.MinDelayMs))
	}
	if c.Pacing.StartingDelayMs < c.Pacing.MinDelayMs {
		errs = append(errs, fmt.Errorf("pacing: starting_delay_ms (%d) is below min_delay_ms (%d)",
			c.Pacing.StartingDelayMs, c.Pacing.MinDelayMs))
	}
	if c.Pacing.DelayDeltaMs < 0 {
		errs = append(errs, fmt.Errorf("pacing: delay_delta_ms must not be negative, got %d", c.Pacing.DelayDeltaMs))
	}
	if c.Walls.Fraction < 0 || c.Walls.Fraction > 1 {
		errs = append(errs, fmt.Errorf("walls: fraction must be within [0, 1], got %g", c.Walls.Fraction))
	}
	if c.Placement.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("placement: max_attempts must not be negative, got %d", c.Placement.MaxAttempts))
	}
	if _, err := c.Colors.Palette(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// IsFixedPreset returns true if the preset disables speed-up.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
