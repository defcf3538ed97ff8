package stage

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestMoveOpposite(t *testing.T) {
	tests := []struct {
		move Move
		want Move
	}{
		{North, South},
		{South, North},
		{East, West},
		{West, East},
		{Still, Still},
	}

	for _, tt := range tests {
		if got := tt.move.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.move, got, tt.want)
		}
		if got := tt.move.Opposite().Opposite(); got != tt.move {
			t.Errorf("%v opposite is not symmetric, got %v", tt.move, got)
		}
	}
}

func TestMoveOffsets(t *testing.T) {
	tests := []struct {
		move   Move
		dx, dy int
	}{
		{North, 0, -1},
		{South, 0, 1},
		{East, 1, 0},
		{West, -1, 0},
		{Still, 0, 0},
	}

	for _, tt := range tests {
		dx, dy := tt.move.Offsets()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Offsets() = (%d,%d), want (%d,%d)", tt.move, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestBlockCloneTranslateDoesNotMutate(t *testing.T) {
	for _, m := range []Move{Still, North, South, East, West} {
		b := Block{X: 3, Y: 4, Color: core.ColorRed}
		moved := b.Clone().Translate(m)

		if b.X != 3 || b.Y != 4 {
			t.Errorf("Translate(%v) mutated original: (%d,%d)", m, b.X, b.Y)
		}
		dx, dy := m.Offsets()
		if moved.X != 3+dx || moved.Y != 4+dy {
			t.Errorf("Translate(%v) = (%d,%d), want (%d,%d)", m, moved.X, moved.Y, 3+dx, 4+dy)
		}
	}
}

func TestBlockCollidesWith(t *testing.T) {
	tests := []struct {
		name string
		a, b Block
		want bool
	}{
		{"same cell", Block{X: 1, Y: 1}, Block{X: 1, Y: 1}, true},
		{"different colors", Block{X: 2, Y: 5, Color: core.ColorRed}, Block{X: 2, Y: 5, Color: core.ColorBlue}, true},
		{"different x", Block{X: 1, Y: 1}, Block{X: 2, Y: 1}, false},
		{"different y", Block{X: 1, Y: 1}, Block{X: 1, Y: 0}, false},
		{"negative", Block{X: -1, Y: 0}, Block{X: -1, Y: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.CollidesWith(tt.b); got != tt.want {
				t.Errorf("a.CollidesWith(b) = %v, want %v", got, tt.want)
			}
			if tt.a.CollidesWith(tt.b) != tt.b.CollidesWith(tt.a) {
				t.Error("CollidesWith is not symmetric")
			}
		})
	}
}
