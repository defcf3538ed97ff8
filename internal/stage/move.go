// Package stage implements the grid simulation: blocks on a cell grid, the
// snake, walls and food, and the per-tick movement resolution.
package stage

// Move is a direction a block can be translated by.
type Move int

const (
	Still Move = iota
	North
	South
	East
	West
)

// Offsets returns the block-space delta applied by the move.
func (m Move) Offsets() (dx, dy int) {
	switch m {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. Still is its own opposite.
func (m Move) Opposite() Move {
	switch m {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return Still
	}
}

func (m Move) String() string {
	switch m {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Still:
		return "still"
	default:
		return "unknown"
	}
}
