package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and difficulty picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change the
difficulty and Enter to play. After a run, press Esc on the splash
screen to return to the menu.

Controls:
  Up/Down/j/k  - Navigate modes
  Left/Right   - Change difficulty
  Enter/Space  - Play
  Q/Esc        - Quit

Examples:
  snake menu
  snake menu --difficulty hard`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit || result.GameID == "" {
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		runCfg := cfg
		runCfg.Difficulty = string(result.Difficulty)
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}
		// Remember the choice for the next menu.
		cfg.Difficulty = runCfg.Difficulty

		logger.Info("starting", "mode", result.GameID, "difficulty", runCfg.Difficulty)
		if err := tui.Run(game, runCfg, logger.With("game", result.GameID)); err != nil {
			return err
		}
	}
}
