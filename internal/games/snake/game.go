// Package snake implements the snake game loop: a splash screen, a grid
// stage with walls and food, and a tick delay that shrinks as the snake grows.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/stage"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // Configured wall density
	ModeOpen    Mode = "open"    // No walls
)

// Game holds the whole session state. Input handlers and the tick handler
// both work on this struct and never run concurrently.
type Game struct {
	mode     Mode
	settings config.SnakeConfig
	palette  config.Palette
	pacing   *config.Pacing
	logger   *log.Logger

	dst     core.Canvas
	screenW int
	screenH int
	rng     *rand.Rand
	stage   *stage.Stage

	runID    string
	tick     uint64
	runTicks uint64
	score    int
	turbo    bool
	started  bool
	firstRun bool
	nextMove stage.Move
}

// New creates a classic mode snake game.
func New() *Game {
	return &Game{
		mode:   ModeClassic,
		logger: log.New(io.Discard),
	}
}

// NewOpen creates a snake game without walls.
func NewOpen() *Game {
	return &Game{
		mode:   ModeOpen,
		logger: log.New(io.Discard),
	}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_open", func() registry.Game {
		return NewOpen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeOpen {
		return "snake_open"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeOpen {
		return "Snake (No Walls)"
	}
	return "Snake"
}

// SetLogger replaces the game's logger.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// Reset loads the configuration, builds the stage for dst and shows the
// splash screen. A stage is generated right away so the splash can be
// dismissed into a valid board.
func (g *Game) Reset(cfg core.RuntimeConfig, dst core.Canvas) error {
	settings, err := g.loadSettings(cfg)
	if err != nil {
		return err
	}
	palette, err := settings.Colors.Palette()
	if err != nil {
		return fmt.Errorf("snake: %w", err)
	}

	g.settings = settings
	g.palette = palette
	g.pacing = config.NewPacing(settings.Pacing)
	g.dst = dst
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	if settings.Screen.Width > 0 {
		g.screenW = settings.Screen.Width
	}
	if settings.Screen.Height > 0 {
		g.screenH = settings.Screen.Height
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	st, err := stage.NewStage(dst, stage.Config{
		Grid: stage.GridConfig{
			ScreenW:    g.screenW,
			ScreenH:    g.screenH,
			CellW:      settings.Grid.CellWidth,
			CellH:      settings.Grid.CellHeight,
			LineWidth:  settings.Grid.LineWidth,
			LineColor:  palette.GridLine,
			Background: palette.Background,
		},
		WallFraction: settings.Walls.Fraction,
		MaxAttempts:  settings.Placement.MaxAttempts,
		Palette: stage.Palette{
			Snake: palette.Snake,
			Dead:  palette.Dead,
			Food:  palette.Food,
			Wall:  palette.Wall,
		},
	}, g.rng)
	if err != nil {
		return fmt.Errorf("snake: %w", err)
	}
	g.stage = st

	g.tick = 0
	g.started = false
	g.firstRun = true

	g.logger.Debug("game reset",
		"mode", g.mode,
		"seed", cfg.Seed,
		"grid", fmt.Sprintf("%dx%d", st.Grid().MaxBlockX(), st.Grid().MaxBlockY()),
		"walls", settings.Walls.Fraction,
	)
	return g.reset()
}

func (g *Game) loadSettings(cfg core.RuntimeConfig) (config.SnakeConfig, error) {
	settings, err := config.LoadSnake(cfg.ConfigPath)
	if err != nil {
		return settings, fmt.Errorf("snake: %w", err)
	}

	if cfg.Difficulty != "" {
		preset, err := config.ParsePreset(cfg.Difficulty)
		if err != nil {
			return settings, fmt.Errorf("snake: %w", err)
		}
		config.ApplySnakePreset(&settings, preset)
	}

	if g.mode == ModeOpen {
		settings.Walls.Fraction = 0
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("snake: %w", err)
	}
	return settings, nil
}

// reset starts a fresh board: motionless snake, new walls and food.
func (g *Game) reset() error {
	g.nextMove = stage.Still
	g.score = 0
	g.turbo = false
	g.runTicks = 0
	g.dst.ClearRect(0, 0, g.screenW, g.screenH)

	if err := g.stage.Init(); err != nil {
		g.logger.Error("cannot build stage", "mode", g.mode, "err", err)
		return fmt.Errorf("snake: %w", err)
	}
	g.runID = uuid.NewString()
	return nil
}

// HandleAction applies one input event. On the splash screen any key
// except quit or back starts a new run. While playing, directions set the
// next move and turbo toggles the speed boost.
func (g *Game) HandleAction(a core.Action) error {
	if !g.started {
		switch a {
		case core.ActionNone, core.ActionQuit, core.ActionBack:
			return nil
		}
		if err := g.reset(); err != nil {
			return err
		}
		g.started = true
		g.logger.Info("run started", "run", g.runID, "mode", g.mode)
		return nil
	}

	switch a {
	case core.ActionNorth:
		g.nextMove = stage.North
	case core.ActionSouth:
		g.nextMove = stage.South
	case core.ActionEast:
		g.nextMove = stage.East
	case core.ActionWest:
		g.nextMove = stage.West
	case core.ActionTurbo:
		g.turbo = !g.turbo
	}
	return nil
}

// Tick runs one step of the loop and returns the delay until the next one.
// The delay is computed from the state before the step.
func (g *Game) Tick() (time.Duration, error) {
	g.tick++
	snake := g.stage.Snake()
	delay := g.pacing.FrameDelay(snake.Len(), g.turbo)

	switch {
	case !g.started:
		g.drawSplash()

	case !snake.Alive():
		g.score = snake.Len()
		g.started = false
		g.stage.Render()
		g.logger.Info("run ended",
			"run", g.runID,
			"mode", g.mode,
			"score", g.score,
			"ticks", g.runTicks,
		)

	default:
		g.firstRun = false
		g.runTicks++
		g.stage.Render()
		snake.ChangeDirection(g.nextMove)
		if err := g.stage.Advance(); err != nil {
			g.logger.Error("cannot place food", "run", g.runID, "err", err)
			return delay, fmt.Errorf("snake: %w", err)
		}
	}

	return delay, nil
}

// Render repaints the current frame without advancing the game.
func (g *Game) Render() {
	if g.stage == nil {
		return
	}
	if !g.started {
		g.drawSplash()
		return
	}
	g.stage.Grid().Draw()
	g.stage.Render()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	length := 0
	if g.stage != nil && g.stage.Snake() != nil {
		length = g.stage.Snake().Len()
	}
	return core.GameState{
		Score:    g.score,
		Length:   length,
		Started:  g.started,
		FirstRun: g.firstRun,
		Turbo:    g.turbo,
	}
}

// RunID returns the identifier of the current board.
func (g *Game) RunID() string {
	return g.runID
}
