package stage

import "github.com/vovakirdan/tui-snake/internal/core"

// Block is one occupiable grid cell, in block coordinates (not pixels).
type Block struct {
	X, Y  int
	Color core.Color
}

// Translate returns the block moved by m. Bounds are not checked.
func (b Block) Translate(m Move) Block {
	dx, dy := m.Offsets()
	b.X += dx
	b.Y += dy
	return b
}

// Clone returns an independent copy of the block.
func (b Block) Clone() Block {
	return b
}

// CollidesWith reports whether both blocks occupy the same cell.
// Color is not part of collision identity.
func (b Block) CollidesWith(other Block) bool {
	return b.X == other.X && b.Y == other.Y
}
