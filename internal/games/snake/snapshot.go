package snake

import "github.com/vovakirdan/tui-snake/internal/stage"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateSplash  GameStateType = "splash"
	StatePlaying GameStateType = "playing"
	StateDead    GameStateType = "dead" // Snake died, splash follows on the next tick
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	RunTicks uint64
	Mode     string
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      stage.Move
	FoodX    int
	FoodY    int
	Walls    int
	Turbo    bool
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		RunTicks: g.runTicks,
		Mode:     string(g.mode),
		Score:    g.score,
		Turbo:    g.turbo,
		State:    StateSplash,
	}
	if g.stage == nil {
		return snap
	}

	if s := g.stage.Snake(); s != nil {
		head := s.Head()
		snap.SnakeLen = s.Len()
		snap.HeadX, snap.HeadY = head.X, head.Y
		snap.Dir = s.Direction()
		if g.started {
			snap.State = StatePlaying
			if !s.Alive() {
				snap.State = StateDead
			}
		}
	}
	if food, ok := g.stage.Food(); ok {
		snap.FoodX, snap.FoodY = food.X, food.Y
	}
	snap.Walls = len(g.stage.Walls())
	return snap
}
