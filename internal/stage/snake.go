package stage

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is an ordered run of segments, tail first and head last.
// A dead snake stays dead; the game builds a new one on reset.
type Snake struct {
	grid      *Grid
	segments  []Block
	direction Move
	alive     bool
	deadColor core.Color
}

// NewSnake creates a one-segment snake at (x, y).
func NewSnake(x, y int, color core.Color, direction Move, grid *Grid, deadColor core.Color) *Snake {
	return &Snake{
		grid:      grid,
		segments:  []Block{{X: x, Y: y, Color: color}},
		direction: direction,
		alive:     true,
		deadColor: deadColor,
	}
}

// ChangeDirection switches direction unless m would reverse the snake onto
// itself. A rejected request is dropped, not queued.
func (s *Snake) ChangeDirection(m Move) {
	if m != s.direction.Opposite() {
		s.direction = m
	}
}

// Move advances the snake one cell in its current direction. When grow is
// false the tail cell is dropped and cleared from the grid. Self-collision
// is checked after the new head is in place.
func (s *Snake) Move(grow bool) {
	if !s.alive {
		return
	}

	if s.direction != Still {
		s.segments = append(s.segments, s.NextHead())

		if !grow {
			tail := s.segments[0]
			s.segments = s.segments[1:]
			s.grid.ClearBlock(tail)
		}

		s.alive = !s.BitSelf()
	}

	s.Draw()
}

// BitSelf reports whether the head shares a cell with any other segment.
func (s *Snake) BitSelf() bool {
	last := len(s.segments) - 1
	if last < 1 {
		return false
	}
	head := s.segments[last]
	for _, seg := range s.segments[:last] {
		if head.CollidesWith(seg) {
			return true
		}
	}
	return false
}

// Draw repaints every segment, in gray once the snake is dead.
func (s *Snake) Draw() {
	for _, seg := range s.segments {
		if s.alive {
			s.grid.DrawBlock(seg)
		} else {
			s.grid.DrawBlockColor(seg, s.deadColor)
		}
	}
}

// NextHead returns where the head would be after one move.
func (s *Snake) NextHead() Block {
	return s.Head().Clone().Translate(s.direction)
}

// Head returns the head segment.
func (s *Snake) Head() Block {
	return s.segments[len(s.segments)-1]
}

// CollidesWith reports whether the head is on b.
func (s *Snake) CollidesWith(b Block) bool {
	return s.Head().CollidesWith(b)
}

// Occupies reports whether any segment is on b.
func (s *Snake) Occupies(b Block) bool {
	for _, seg := range s.segments {
		if seg.CollidesWith(b) {
			return true
		}
	}
	return false
}

// Segments returns a copy of the segments, tail first.
func (s *Snake) Segments() []Block {
	out := make([]Block, len(s.segments))
	copy(out, s.segments)
	return out
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Direction returns the current direction.
func (s *Snake) Direction() Move {
	return s.direction
}

// Alive reports whether the snake is still alive.
func (s *Snake) Alive() bool {
	return s.alive
}

// Kill marks the snake dead without moving it.
func (s *Snake) Kill() {
	s.alive = false
}
