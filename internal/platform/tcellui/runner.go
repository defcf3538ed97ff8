package tcellui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// retryDelay is how long a tick waits when the event queue is full.
const retryDelay = 10 * time.Millisecond

// tickEvent is the payload of the interrupt events that drive the game loop.
type tickEvent struct {
	gen uint64
}

// Runner owns the event loop. The game is only touched from the goroutine
// running Loop; timers post interrupt events instead of calling the game.
type Runner struct {
	term    tcell.Screen
	game    registry.Game
	config  core.RuntimeConfig
	logger  *log.Logger
	surface *Surface
	timer   *time.Timer
	gen     uint64
}

// NewRunner creates a runner for an initialized tcell screen.
func NewRunner(term tcell.Screen, game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.SetLogger(logger)

	return &Runner{
		term:    term,
		game:    game,
		config:  cfg,
		logger:  logger,
		surface: NewSurface(term),
	}
}

// Run opens the terminal, plays the game until the player quits and
// restores the terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	term, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cannot open terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("cannot initialize terminal: %w", err)
	}
	defer term.Fini()

	return NewRunner(term, game, cfg, logger).Loop()
}

// Loop resets the game and processes events until quit or error.
func (r *Runner) Loop() error {
	if err := r.reset(); err != nil {
		return err
	}
	r.schedule(0)
	defer r.stop()

	for {
		ev := r.term.PollEvent()
		if ev == nil {
			// Screen finalized
			return nil
		}
		quit, err := r.handleEvent(ev)
		if err != nil {
			r.logger.Error("game stopped", "game", r.game.ID(), "err", err)
			return err
		}
		if quit {
			return nil
		}
	}
}

func (r *Runner) handleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		tick, ok := ev.Data().(tickEvent)
		if !ok || tick.gen != r.gen {
			return false, nil
		}
		delay, err := r.game.Tick()
		if err != nil {
			return false, err
		}
		r.surface.Flush()
		r.schedule(delay)

	case *tcell.EventKey:
		action := MapKey(ev)
		switch action {
		case core.ActionQuit:
			return true, nil
		case core.ActionBack:
			if !r.game.State().Started {
				return true, nil
			}
		}
		if err := r.game.HandleAction(action); err != nil {
			return false, err
		}
		r.game.Render()
		r.surface.Flush()

	case *tcell.EventResize:
		r.term.Sync()
		w, h := ev.Size()
		if w == r.surface.Width() && h == r.surface.Height() {
			return false, nil
		}
		r.surface.Resize(w, h)
		r.logger.Debug("terminal resized", "width", w, "height", h)
		if err := r.reset(); err != nil {
			return false, err
		}
		r.schedule(0)
	}
	return false, nil
}

func (r *Runner) reset() error {
	cfg := r.config
	cfg.ScreenW, cfg.ScreenH = r.surface.Width(), r.surface.Height()
	if err := r.game.Reset(cfg, r.surface); err != nil {
		return fmt.Errorf("cannot start %s: %w", r.game.ID(), err)
	}
	return nil
}

// schedule starts a new tick chain; any pending tick becomes stale.
func (r *Runner) schedule(delay time.Duration) {
	r.stop()
	r.gen++
	r.timer = time.AfterFunc(delay, r.post(r.gen))
}

func (r *Runner) post(gen uint64) func() {
	return func() {
		if err := r.term.PostEvent(tcell.NewEventInterrupt(tickEvent{gen: gen})); err != nil {
			// Queue full: try again shortly so the chain does not die.
			time.AfterFunc(retryDelay, r.post(gen))
		}
	}
}

func (r *Runner) stop() {
	if r.timer != nil {
		r.timer.Stop()
	}
}

// MapKey translates a tcell key event to a game action.
// Keys without a binding map to core.ActionAny.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionNorth
	case tcell.KeyDown:
		return core.ActionSouth
	case tcell.KeyRight:
		return core.ActionEast
	case tcell.KeyLeft:
		return core.ActionWest
	case tcell.KeyEscape:
		return core.ActionBack
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return core.ActionNorth
		case 's', 'j':
			return core.ActionSouth
		case 'd', 'l':
			return core.ActionEast
		case 'a', 'h':
			return core.ActionWest
		case ' ':
			return core.ActionTurbo
		case 'b':
			return core.ActionBack
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionAny
}
