package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// footerHeight is the number of terminal rows reserved for the help line.
const footerHeight = 1

// Model is the Bubble Tea model for running a game.
// The game paints into screen during its ticks; View only displays it.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	gameState  core.GameState
	gen        uint64 // Current tick chain
	standalone bool   // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	err        error
}

// NewModel creates a new Bubble Tea model for the given game and resets the
// game for the terminal size in cfg.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:   game,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
	}
	w, sh := m.surfaceSize(cfg.ScreenW, cfg.ScreenH)
	m.screen = core.NewScreen(w, sh)

	game.SetLogger(logger)
	if err := m.resetGame(); err != nil {
		return m, err
	}
	return m, nil
}

// surfaceSize returns the drawing surface for a terminal size.
func (m Model) surfaceSize(w, h int) (int, int) {
	return max(w, 0), max(h-footerHeight, 0)
}

func (m *Model) resetGame() error {
	cfg := m.config
	cfg.ScreenW, cfg.ScreenH = m.screen.Width(), m.screen.Height()
	if err := m.game.Reset(cfg, m.screen); err != nil {
		return fmt.Errorf("cannot start %s: %w", m.game.ID(), err)
	}
	m.gameState = m.game.State()
	return nil
}

// Init starts the tick chain. The first tick fires immediately.
func (m Model) Init() tea.Cmd {
	return scheduleTick(m.gen, 0)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		// Back only works from the splash screen.
		if !m.gameState.Started {
			m.backToMenu = true
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	if err := m.game.HandleAction(action); err != nil {
		return m.fail(err)
	}
	// Show the result of the key now rather than on the next tick.
	m.game.Render()
	m.gameState = m.game.State()
	return m, nil
}

// handleResize rebuilds the surface and restarts the game with a new tick chain.
// The board only fits the grid it was generated for, so the game is reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width

	w, h := m.surfaceSize(msg.Width, msg.Height)
	if w == m.screen.Width() && h == m.screen.Height() {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(w, h)
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)

	if err := m.resetGame(); err != nil {
		return m.fail(err)
	}
	m.gen++
	return m, scheduleTick(m.gen, 0)
}

// handleTick runs one game loop step and schedules the next one.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.quitting {
		return m, nil
	}

	delay, err := m.game.Tick()
	if err != nil {
		return m.fail(err)
	}
	m.gameState = m.game.State()

	return m, scheduleTick(m.gen, delay)
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("game stopped", "game", m.game.ID(), "err", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
// Back on the splash screen exits like quit.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg, logger)
	if err != nil {
		return err
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
