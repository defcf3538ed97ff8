package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// fakeGame records the calls made by the platform.
type fakeGame struct {
	resets  []core.RuntimeConfig
	actions []core.Action
	ticks   int
	renders int
	started bool
	delay   time.Duration
	tickErr error
}

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake Game" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig, dst core.Canvas) error {
	g.resets = append(g.resets, cfg)
	dst.DrawText("fake", 0, 0, core.FontSplash, core.ColorGreen)
	return nil
}

func (g *fakeGame) HandleAction(a core.Action) error {
	g.actions = append(g.actions, a)
	if a == core.ActionAny {
		g.started = true
	}
	return nil
}

func (g *fakeGame) Tick() (time.Duration, error) {
	g.ticks++
	return g.delay, g.tickErr
}

func (g *fakeGame) Render() { g.renders++ }

func (g *fakeGame) State() core.GameState {
	return core.GameState{Started: g.started}
}

func (g *fakeGame) SetLogger(*log.Logger) {}

func nopLogger() *log.Logger {
	return log.New(io.Discard)
}
