package stage

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrPlacementExhausted is returned when random placement runs out of
// attempts, which means the grid is too small or too crowded with walls.
var ErrPlacementExhausted = errors.New("stage: no usable cell found")

// DefaultMaxAttempts bounds every random placement loop.
const DefaultMaxAttempts = 10000

// Palette holds the colors of the stage items.
type Palette struct {
	Snake core.Color
	Dead  core.Color
	Food  core.Color
	Wall  core.Color
}

// Config contains everything needed to build a stage.
type Config struct {
	Grid         GridConfig
	WallFraction float64 // Share of cells turned into walls, 0..1
	MaxAttempts  int     // Placement attempts per item; 0 means DefaultMaxAttempts
	Palette      Palette
}

// Stage owns the grid, the snake, the food and the walls, and resolves one
// movement step per tick.
//
// Snake head, walls and food are kept on distinct cells when they are
// generated. Nothing is re-validated afterwards.
type Stage struct {
	cfg   Config
	grid  *Grid
	rng   *rand.Rand
	snake *Snake
	food  *Block
	walls []Block
}

// NewStage creates a stage drawing on dst. Call Init before the first Advance.
func NewStage(dst core.Canvas, cfg Config, rng *rand.Rand) (*Stage, error) {
	if cfg.WallFraction < 0 || cfg.WallFraction > 1 {
		return nil, fmt.Errorf("stage: wall fraction must be within [0, 1], got %g", cfg.WallFraction)
	}
	if cfg.MaxAttempts < 0 {
		return nil, fmt.Errorf("stage: max attempts must not be negative, got %d", cfg.MaxAttempts)
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}

	grid, err := NewGrid(dst, cfg.Grid)
	if err != nil {
		return nil, err
	}

	return &Stage{
		cfg:  cfg,
		grid: grid,
		rng:  rng,
	}, nil
}

// Init draws the empty grid and generates a fresh snake, walls and food.
// Food left over from a previous run only serves as an excluded cell.
func (s *Stage) Init() error {
	s.grid.Draw()

	// The snake is placed before the new walls, so its usability check only
	// sees the grid bounds. Walls later exclude just the head cell.
	s.walls = nil
	if err := s.generateSnake(); err != nil {
		return err
	}
	if err := s.generateWalls(); err != nil {
		return err
	}
	return s.generateNextFood()
}

// generateSnake places a one-segment, motionless snake on a usable cell.
func (s *Stage) generateSnake() error {
	for range s.cfg.MaxAttempts {
		s.snake = NewSnake(
			s.rng.Intn(s.grid.MaxBlockX()),
			s.rng.Intn(s.grid.MaxBlockY()),
			s.cfg.Palette.Snake,
			Still,
			s.grid,
			s.cfg.Palette.Dead,
		)
		if !s.IsSnakeOnFood() && s.IsBlockUsable(s.snake.Head()) {
			return nil
		}
	}
	return s.exhausted("snake")
}

// generateWalls scatters floor(cells * WallFraction) walls anywhere except
// under the snake head. Duplicate walls are allowed.
func (s *Stage) generateWalls() error {
	total := s.grid.MaxBlockX() * s.grid.MaxBlockY()
	count := int(math.Floor(float64(total) * s.cfg.WallFraction))

	for range count {
		placed := false
		for range s.cfg.MaxAttempts {
			wall := s.randomBlock(s.cfg.Palette.Wall)
			if !s.snake.CollidesWith(wall) {
				s.walls = append(s.walls, wall)
				placed = true
				break
			}
		}
		if !placed {
			return s.exhausted("wall")
		}
	}
	return nil
}

// generateNextFood replaces the food with a new item on a usable cell that
// differs from the previous food and is not under the snake.
func (s *Stage) generateNextFood() error {
	last := s.food

	for range s.cfg.MaxAttempts {
		food := s.randomBlock(s.cfg.Palette.Food)
		if last != nil && food.CollidesWith(*last) {
			continue
		}
		if s.snake != nil && s.snake.Occupies(food) {
			continue
		}
		if s.IsBlockUsable(food) {
			s.food = &food
			return nil
		}
	}
	return s.exhausted("food")
}

func (s *Stage) randomBlock(c core.Color) Block {
	return Block{
		X:     s.rng.Intn(s.grid.MaxBlockX()),
		Y:     s.rng.Intn(s.grid.MaxBlockY()),
		Color: c,
	}
}

func (s *Stage) exhausted(item string) error {
	return fmt.Errorf("cannot place %s on %dx%d grid after %d attempts (wall fraction %g): %w",
		item, s.grid.MaxBlockX(), s.grid.MaxBlockY(), s.cfg.MaxAttempts, s.cfg.WallFraction,
		ErrPlacementExhausted)
}

// IsBlockUsable rejects cells on a wall and cells with three or more
// neighbors that are off-grid or walled in. It is a cheap trap heuristic
// and does not prove the cell can be reached or left.
func (s *Stage) IsBlockUsable(b Block) bool {
	if s.IsOnWall(b) {
		return false
	}

	invalid := 0
	for _, m := range []Move{North, South, East, West} {
		n := b.Clone().Translate(m)
		if s.IsOutOfBounds(n) || s.IsOnWall(n) {
			invalid++
		}
	}
	return invalid <= 2
}

// Advance resolves one tick. The snake dies before moving if its next head
// leaves the grid or hits a wall. If the head already sits on the food it
// eats: the snake grows on this move and new food is generated.
func (s *Stage) Advance() error {
	next := s.snake.NextHead()
	if s.IsOutOfBounds(next) || s.IsOnWall(next) {
		s.snake.Kill()
		return nil
	}

	grow := false
	if s.IsSnakeOnFood() {
		grow = true
		if err := s.generateNextFood(); err != nil {
			return err
		}
	}

	s.snake.Move(grow)
	return nil
}

// IsSnakeOnFood reports whether the snake head is on the food.
func (s *Stage) IsSnakeOnFood() bool {
	if s.snake == nil || s.food == nil {
		return false
	}
	return s.snake.CollidesWith(*s.food)
}

// IsOnWall reports whether b is on any wall.
func (s *Stage) IsOnWall(b Block) bool {
	for _, w := range s.walls {
		if w.CollidesWith(b) {
			return true
		}
	}
	return false
}

// IsOutOfBounds reports whether b lies outside the grid.
func (s *Stage) IsOutOfBounds(b Block) bool {
	return !s.grid.Contains(b.X, b.Y)
}

// Render paints the food, the walls and the snake. It changes no state, so
// repeated calls produce the same picture.
func (s *Stage) Render() {
	if s.food != nil {
		s.grid.DrawBlock(*s.food)
	}
	for _, w := range s.walls {
		s.grid.DrawBlock(w)
	}
	if s.snake != nil {
		s.snake.Draw()
	}
}

// HasFood reports whether food has been generated.
func (s *Stage) HasFood() bool {
	return s.food != nil
}

// Food returns the current food item.
func (s *Stage) Food() (Block, bool) {
	if s.food == nil {
		return Block{}, false
	}
	return *s.food, true
}

// Walls returns a copy of the walls.
func (s *Stage) Walls() []Block {
	out := make([]Block, len(s.walls))
	copy(out, s.walls)
	return out
}

// Snake returns the current snake.
func (s *Stage) Snake() *Snake {
	return s.snake
}

// Grid returns the grid.
func (s *Stage) Grid() *Grid {
	return s.grid
}
