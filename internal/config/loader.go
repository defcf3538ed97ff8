package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path must exist and parse; the other locations are
// skipped silently when missing or broken.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultSnakeConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if cfg, ok := readSnake(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := readSnake(filepath.Join("configs", "snake.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readSnake(path string) (SnakeConfig, bool) {
	cfg := DefaultSnakeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// presetScale holds the factors a difficulty preset applies to the loaded
// config. On the stock defaults easy gives 250/80/4 ms with 2% walls and hard
// gives 150/40/6 ms with 8% walls.
type presetScale struct {
	start, min, delta, walls float64
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy: {start: 1.25, min: 1.6, delta: 0.8, walls: 0.4},
	DifficultyHard: {start: 0.75, min: 0.8, delta: 1.2, walls: 1.6},
}

// ApplySnakePreset adjusts the config for a difficulty preset. Presets scale
// the pacing and wall density read from the config file rather than replacing
// them, so custom values keep their proportions. Normal leaves the config as
// is and fixed only disables the length-based speed-up.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Pacing.SpeedUp = false
		return
	}

	scale, ok := presetScales[preset]
	if !ok {
		return
	}
	p := &cfg.Pacing
	p.StartingDelayMs = scaleMs(p.StartingDelayMs, scale.start)
	p.MinDelayMs = min(scaleMs(p.MinDelayMs, scale.min), p.StartingDelayMs)
	p.DelayDeltaMs = scaleMs(p.DelayDeltaMs, scale.delta)
	cfg.Walls.Fraction = min(math.Round(cfg.Walls.Fraction*scale.walls*1e4)/1e4, 1)
}

func scaleMs(ms int, factor float64) int {
	return int(math.Round(float64(ms) * factor))
}
