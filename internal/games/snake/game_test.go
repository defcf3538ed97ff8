package snake

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/stage"
)

// isolateConfig keeps user and working-directory config files out of the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
}

func newTestGame(t *testing.T, g *Game, seed int64) *core.Screen {
	t.Helper()
	scr := core.NewScreen(60, 20)
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 20, Seed: seed}
	if err := g.Reset(cfg, scr); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	return scr
}

func screenContains(scr *core.Screen, text string) bool {
	return strings.Contains(scr.String(), text)
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"snake", "snake_open"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestStartsOnSplash(t *testing.T) {
	isolateConfig(t)
	g := New()
	scr := newTestGame(t, g, 1)

	st := g.State()
	if st.Started || !st.FirstRun {
		t.Fatalf("Expected splash on first run, got %+v", st)
	}

	if _, err := g.Tick(); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	for _, want := range []string{"Controls:", "TURBO: Space", "Press any key to continue..."} {
		if !screenContains(scr, want) {
			t.Errorf("Splash missing %q", want)
		}
	}
	if screenContains(scr, "Score:") {
		t.Error("Splash should not show a score before the first run")
	}
}

func TestSplashIgnoresQuitAndBack(t *testing.T) {
	isolateConfig(t)
	g := New()
	newTestGame(t, g, 1)

	for _, a := range []core.Action{core.ActionNone, core.ActionQuit, core.ActionBack} {
		if err := g.HandleAction(a); err != nil {
			t.Fatalf("HandleAction(%v) failed: %v", a, err)
		}
		if g.State().Started {
			t.Errorf("%v should not start a run", a)
		}
	}
}

func TestAnyKeyStartsRun(t *testing.T) {
	for _, a := range []core.Action{core.ActionAny, core.ActionTurbo, core.ActionNorth} {
		t.Run(a.String(), func(t *testing.T) {
			isolateConfig(t)
			g := New()
			newTestGame(t, g, 1)

			if err := g.HandleAction(a); err != nil {
				t.Fatalf("HandleAction failed: %v", err)
			}
			st := g.State()
			if !st.Started {
				t.Fatal("Expected run to start")
			}
			if st.Turbo {
				t.Error("The starting key must not toggle turbo")
			}
			if snap := g.Snapshot(); snap.Dir != stage.Still || snap.SnakeLen != 1 {
				t.Errorf("Expected a still length-1 snake, got %+v", snap)
			}
			if g.RunID() == "" {
				t.Error("Expected a run ID")
			}
		})
	}
}

func TestTickDelay(t *testing.T) {
	isolateConfig(t)
	g := New()
	newTestGame(t, g, 1)

	delay, err := g.Tick()
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if delay != 200*time.Millisecond {
		t.Errorf("Splash delay = %v, want 200ms", delay)
	}

	if err := g.HandleAction(core.ActionAny); err != nil {
		t.Fatalf("HandleAction failed: %v", err)
	}
	if err := g.HandleAction(core.ActionTurbo); err != nil {
		t.Fatalf("HandleAction failed: %v", err)
	}
	if !g.State().Turbo {
		t.Fatal("Expected turbo on")
	}
	if delay, _ = g.Tick(); delay != 100*time.Millisecond {
		t.Errorf("Turbo delay = %v, want 100ms", delay)
	}

	if err := g.HandleAction(core.ActionTurbo); err != nil {
		t.Fatalf("HandleAction failed: %v", err)
	}
	if g.State().Turbo {
		t.Fatal("Expected turbo off after second press")
	}
	if delay, _ = g.Tick(); delay != 200*time.Millisecond {
		t.Errorf("Delay after turbo off = %v, want 200ms", delay)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	isolateConfig(t)
	g := NewOpen()
	newTestGame(t, g, 42)

	if err := g.HandleAction(core.ActionAny); err != nil {
		t.Fatalf("HandleAction failed: %v", err)
	}

	// Head towards the farther edge so the snake survives three ticks.
	forward, reverse, want := core.ActionEast, core.ActionWest, stage.East
	if g.Snapshot().HeadX >= 15 {
		forward, reverse, want = core.ActionWest, core.ActionEast, stage.West
	}

	steps := []struct {
		action core.Action
		want   stage.Move
	}{
		{forward, want},
		{reverse, want}, // opposite is ignored
		{core.ActionNorth, stage.North},
	}
	for i, step := range steps {
		if err := g.HandleAction(step.action); err != nil {
			t.Fatalf("HandleAction failed: %v", err)
		}
		if _, err := g.Tick(); err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
		if got := g.Snapshot().Dir; got != step.want {
			t.Errorf("Step %d (%v): direction %v, want %v", i, step.action, got, step.want)
		}
	}
}

// playUntilDeath steers the snake into the left edge and ticks until the
// run has ended.
func playUntilDeath(t *testing.T, g *Game) {
	t.Helper()
	if err := g.HandleAction(core.ActionAny); err != nil {
		t.Fatalf("HandleAction failed: %v", err)
	}
	if err := g.HandleAction(core.ActionWest); err != nil {
		t.Fatalf("HandleAction failed: %v", err)
	}
	for i := 0; i < 200 && g.State().Started; i++ {
		if _, err := g.Tick(); err != nil {
			t.Fatalf("Tick %d failed: %v", i, err)
		}
	}
	if g.State().Started {
		t.Fatal("Expected the run to end")
	}
}

func TestDeathReturnsToSplashWithScore(t *testing.T) {
	isolateConfig(t)
	g := NewOpen()
	scr := newTestGame(t, g, 7)

	playUntilDeath(t, g)

	st := g.State()
	if st.FirstRun {
		t.Error("FirstRun should be cleared after a run")
	}
	if st.Score < 1 || st.Score != st.Length {
		t.Errorf("Score should equal the final length, got score=%d length=%d", st.Score, st.Length)
	}

	if _, err := g.Tick(); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if want := fmt.Sprintf("Score: %d", st.Score); !screenContains(scr, want) {
		t.Errorf("Splash should show %q:\n%s", want, scr.String())
	}
	if g.Snapshot().State != StateSplash {
		t.Errorf("Expected splash state, got %v", g.Snapshot().State)
	}

	// Any key starts a fresh run with the score cleared.
	if err := g.HandleAction(core.ActionAny); err != nil {
		t.Fatalf("HandleAction failed: %v", err)
	}
	st = g.State()
	if !st.Started || st.Score != 0 || st.Length != 1 {
		t.Errorf("Expected a fresh run, got %+v", st)
	}
}

func TestDeterminism(t *testing.T) {
	isolateConfig(t)

	// Two games with the same seed should produce identical snapshots
	g1, g2 := New(), New()
	newTestGame(t, g1, 12345)
	newTestGame(t, g2, 12345)

	inputs := map[int]core.Action{
		0:  core.ActionAny,
		1:  core.ActionNorth,
		5:  core.ActionEast,
		9:  core.ActionSouth,
		12: core.ActionTurbo,
		15: core.ActionWest,
	}
	for i := 0; i < 60; i++ {
		if a, ok := inputs[i]; ok {
			if err := g1.HandleAction(a); err != nil {
				t.Fatalf("HandleAction failed: %v", err)
			}
			if err := g2.HandleAction(a); err != nil {
				t.Fatalf("HandleAction failed: %v", err)
			}
		}
		d1, err1 := g1.Tick()
		d2, err2 := g2.Tick()
		if err1 != nil || err2 != nil {
			t.Fatalf("Tick failed: %v / %v", err1, err2)
		}
		if d1 != d2 {
			t.Fatalf("Delay mismatch at tick %d: %v vs %v", i, d1, d2)
		}
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", s1, s2)
	}
}

func TestOpenModeHasNoWalls(t *testing.T) {
	isolateConfig(t)

	open := NewOpen()
	newTestGame(t, open, 3)
	if n := open.Snapshot().Walls; n != 0 {
		t.Errorf("Open mode should have no walls, got %d", n)
	}

	classic := New()
	newTestGame(t, classic, 3)
	// 60x20 surface with 2x1 cells is 30x20 blocks; 5% is 30 walls.
	if n := classic.Snapshot().Walls; n != 30 {
		t.Errorf("Classic mode should have 30 walls, got %d", n)
	}
}

func TestResetErrors(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name string
		cfg  core.RuntimeConfig
		is   error
	}{
		{"missing config", core.RuntimeConfig{ScreenW: 60, ScreenH: 20, ConfigPath: "does-not-exist.yaml"}, nil},
		{"bad difficulty", core.RuntimeConfig{ScreenW: 60, ScreenH: 20, Difficulty: "nightmare"}, nil},
		{"tiny surface", core.RuntimeConfig{ScreenW: 1, ScreenH: 1}, stage.ErrGridTooSmall},
		{"no usable cell", core.RuntimeConfig{ScreenW: 2, ScreenH: 1}, stage.ErrPlacementExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Reset(tt.cfg, core.NewScreen(tt.cfg.ScreenW, tt.cfg.ScreenH))
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Expected %v, got %v", tt.is, err)
			}
		})
	}
}

func TestResetRejectsLineWidthFillingCells(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("grid:\n  cell_width: 2\n  cell_height: 1\n  line_width: 1\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 20, Seed: 1, ConfigPath: path}
	err := New().Reset(cfg, core.NewScreen(40, 20))
	if err == nil {
		t.Fatal("Expected Reset to reject cells hidden by grid lines")
	}
	if !strings.Contains(err.Error(), "too small for line_width") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestCustomConfig(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("pacing:\n  starting_delay_ms: 120\n  min_delay_ms: 60\nwalls:\n  fraction: 0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	g := New()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1, ConfigPath: path}
	if err := g.Reset(cfg, core.NewScreen(40, 10)); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if d, _ := g.Tick(); d != 120*time.Millisecond {
		t.Errorf("Delay = %v, want 120ms", d)
	}
	if n := g.Snapshot().Walls; n != 0 {
		t.Errorf("Expected no walls, got %d", n)
	}
}

func TestDifficultyPreset(t *testing.T) {
	isolateConfig(t)
	g := New()
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 20, Seed: 1, Difficulty: "easy"}
	if err := g.Reset(cfg, core.NewScreen(60, 20)); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if d, _ := g.Tick(); d != 250*time.Millisecond {
		t.Errorf("Easy delay = %v, want 250ms", d)
	}
}

func TestLogsRunLifecycle(t *testing.T) {
	isolateConfig(t)
	var buf bytes.Buffer
	g := NewOpen()
	g.SetLogger(log.New(&buf))
	newTestGame(t, g, 9)

	playUntilDeath(t, g)

	out := buf.String()
	for _, want := range []string{"run started", "run ended", g.RunID()} {
		if !strings.Contains(out, want) {
			t.Errorf("Log missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDoesNotAdvance(t *testing.T) {
	isolateConfig(t)
	g := New()
	scr := newTestGame(t, g, 5)
	if err := g.HandleAction(core.ActionAny); err != nil {
		t.Fatalf("HandleAction failed: %v", err)
	}
	if _, err := g.Tick(); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}

	before := g.Snapshot()
	g.Render()
	first := scr.String()
	g.Render()
	if scr.String() != first {
		t.Error("Render is not idempotent")
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("Render changed state:\n%+v\n%+v", before, after)
	}
}

func TestRenderShowsBoardRightAfterStart(t *testing.T) {
	isolateConfig(t)
	g := New()
	scr := newTestGame(t, g, 3)
	if _, err := g.Tick(); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if !screenContains(scr, "Press any key") {
		t.Fatal("Expected the splash screen before the run starts")
	}
	if err := g.HandleAction(core.ActionAny); err != nil {
		t.Fatalf("HandleAction failed: %v", err)
	}

	g.Render()
	snap := g.Snapshot()
	if c := scr.GetCell(snap.HeadX*2, snap.HeadY); c.Color != core.ColorGreen || c.Rune != core.FillRune {
		t.Errorf("Head cell = %+v, want green fill before the first tick", c)
	}
	if screenContains(scr, "Press any key") {
		t.Error("Splash text still visible after the run started")
	}
}
