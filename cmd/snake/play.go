package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tcellui"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: snake).

Controls:
  Arrows/WASD/HJKL  - Steer
  Space             - Toggle turbo
  Esc/B             - Back (on the splash screen)
  Q/Ctrl+C          - Quit

Difficulty options (scale the pacing and walls from the config file):
  easy   - Slower start, fewer walls
  normal - Config as is
  hard   - Faster start, more walls
  fixed  - No speed-up as the snake grows

Backends:
  tui    - Bubble Tea renderer with key help (default)
  tcell  - Direct tcell renderer

Examples:
  snake play
  snake play snake_open
  snake play --difficulty hard
  snake play --backend tcell
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Renderer: tui or tcell")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "snake"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'snake list' to see available modes)", gameID)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	cfg := runtimeConfig()
	logger.Info("starting", "mode", gameID, "backend", flagBackend, "seed", cfg.Seed)

	switch flagBackend {
	case "tui":
		return tui.Run(game, cfg, logger)
	case "tcell":
		return tcellui.Run(game, cfg, logger)
	default:
		return fmt.Errorf("unknown backend %q (want tui or tcell)", flagBackend)
	}
}

// runtimeConfig builds the per-run config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty
	return cfg
}
