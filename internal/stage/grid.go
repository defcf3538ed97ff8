package stage

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrGridTooSmall is returned when the surface cannot hold a single cell.
var ErrGridTooSmall = errors.New("stage: grid has no cells")

// GridConfig describes the drawing surface and how it is divided into cells.
type GridConfig struct {
	ScreenW    int     // Surface width in pixels
	ScreenH    int     // Surface height in pixels
	CellW      float64 // Cell width in pixels
	CellH      float64 // Cell height in pixels
	LineWidth  float64 // Grid line width; 0 disables grid lines
	LineColor  core.Color
	Background core.Color
}

// Grid maps block coordinates onto the drawing surface.
// It has no game knowledge: it only knows how to paint cells.
type Grid struct {
	dst       core.Canvas
	cfg       GridConfig
	maxBlockX int
	maxBlockY int
}

// NewGrid creates a grid over dst. The block dimensions are derived once
// here and never change.
func NewGrid(dst core.Canvas, cfg GridConfig) (*Grid, error) {
	if cfg.CellW <= 0 || cfg.CellH <= 0 {
		return nil, fmt.Errorf("stage: cell size must be positive, got %gx%g", cfg.CellW, cfg.CellH)
	}
	if cfg.LineWidth < 0 {
		return nil, fmt.Errorf("stage: line width must not be negative, got %g", cfg.LineWidth)
	}
	if 2*cfg.LineWidth >= cfg.CellW || 2*cfg.LineWidth >= cfg.CellH {
		return nil, fmt.Errorf("stage: %gx%g cells too small for line width %g", cfg.CellW, cfg.CellH, cfg.LineWidth)
	}

	g := &Grid{
		dst:       dst,
		cfg:       cfg,
		maxBlockX: int(math.Floor(float64(cfg.ScreenW) / cfg.CellW)),
		maxBlockY: int(math.Floor(float64(cfg.ScreenH) / cfg.CellH)),
	}
	if g.maxBlockX < 1 || g.maxBlockY < 1 {
		return nil, fmt.Errorf("%w: %dx%d surface with %gx%g cells",
			ErrGridTooSmall, cfg.ScreenW, cfg.ScreenH, cfg.CellW, cfg.CellH)
	}
	return g, nil
}

// MaxBlockX returns the number of cell columns.
func (g *Grid) MaxBlockX() int {
	return g.maxBlockX
}

// MaxBlockY returns the number of cell rows.
func (g *Grid) MaxBlockY() int {
	return g.maxBlockY
}

// Contains reports whether (x, y) is a cell of the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.maxBlockX && y >= 0 && y < g.maxBlockY
}

// PixelRect returns the surface rectangle painted for a block, inset by the
// line width on every side. Position is floored and size ceiled so adjacent
// cells never leave seams.
func (g *Grid) PixelRect(b Block) core.Rect {
	lw := g.cfg.LineWidth
	return core.NewRect(
		int(math.Floor(float64(b.X)*g.cfg.CellW+lw)),
		int(math.Floor(float64(b.Y)*g.cfg.CellH+lw)),
		int(math.Ceil(g.cfg.CellW-2*lw)),
		int(math.Ceil(g.cfg.CellH-2*lw)),
	)
}

// FillBlock paints the cell at block coordinates (x, y).
func (g *Grid) FillBlock(x, y int, c core.Color) {
	r := g.PixelRect(Block{X: x, Y: y})
	g.dst.FillRect(r.X, r.Y, r.W, r.H, c)
}

// ClearBlock paints the block's cell with the background color.
func (g *Grid) ClearBlock(b Block) {
	g.FillBlock(b.X, b.Y, g.cfg.Background)
}

// DrawBlock paints the block in its own color.
func (g *Grid) DrawBlock(b Block) {
	g.FillBlock(b.X, b.Y, b.Color)
}

// DrawBlockColor paints the block with an override color.
func (g *Grid) DrawBlockColor(b Block, c core.Color) {
	g.FillBlock(b.X, b.Y, c)
}

// Draw fills the background and draws the grid lines.
func (g *Grid) Draw() {
	g.dst.FillRect(0, 0, g.cfg.ScreenW, g.cfg.ScreenH, g.cfg.Background)
	g.DrawGridLines()
}

// DrawGridLines strokes every cell boundary. Does nothing without a line width.
func (g *Grid) DrawGridLines() {
	if g.cfg.LineWidth <= 0 {
		return
	}
	for x := 0.0; x < float64(g.cfg.ScreenW); x += g.cfg.CellW {
		px := int(math.Floor(x))
		g.dst.StrokeLine(px, 0, px, g.cfg.ScreenH, g.cfg.LineColor, g.cfg.LineWidth)
	}
	for y := 0.0; y < float64(g.cfg.ScreenH); y += g.cfg.CellH {
		py := int(math.Floor(y))
		g.dst.StrokeLine(0, py, g.cfg.ScreenW, py, g.cfg.LineColor, g.cfg.LineWidth)
	}
}
