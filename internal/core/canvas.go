package core

// Font names the typeface requested for text drawing.
// Terminal surfaces draw every font as a single monospace cell per rune.
type Font string

// FontSplash is the font used for splash-screen text.
const FontSplash Font = "30px Monospace"

// Canvas is the immediate-mode drawing surface the game paints on.
// Coordinates are surface units (one terminal cell per unit); anything
// outside the surface is clipped.
type Canvas interface {
	FillRect(x, y, w, h int, c Color)
	StrokeLine(x1, y1, x2, y2 int, c Color, width float64)
	DrawText(text string, x, y int, font Font, c Color)
	ClearRect(x, y, w, h int)
}
