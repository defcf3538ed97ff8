package stage

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// recordingCanvas counts draw calls and remembers the last fill color per
// pixel so tests can inspect what was painted.
type recordingCanvas struct {
	fills   int
	strokes int
	texts   []string
	pixels  map[[2]int]core.Color
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{pixels: make(map[[2]int]core.Color)}
}

func (c *recordingCanvas) FillRect(x, y, w, h int, col core.Color) {
	c.fills++
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			c.pixels[[2]int{px, py}] = col
		}
	}
}

func (c *recordingCanvas) StrokeLine(_, _, _, _ int, _ core.Color, _ float64) {
	c.strokes++
}

func (c *recordingCanvas) DrawText(text string, _, _ int, _ core.Font, _ core.Color) {
	c.texts = append(c.texts, text)
}

func (c *recordingCanvas) ClearRect(x, y, w, h int) {
	c.FillRect(x, y, w, h, core.ColorDefault)
}

func testPalette() Palette {
	return Palette{
		Snake: core.ColorGreen,
		Dead:  core.ColorGray,
		Food:  core.ColorRed,
		Wall:  core.ColorBlue,
	}
}

// testGridConfig returns a w x h block grid with one pixel per block.
func testGridConfig(w, h int) GridConfig {
	return GridConfig{
		ScreenW:    w,
		ScreenH:    h,
		CellW:      1,
		CellH:      1,
		Background: core.ColorBlack,
		LineColor:  core.ColorDarkGray,
	}
}

// newTestStage builds a w x h stage without walls, snake or food.
func newTestStage(t *testing.T, dst core.Canvas, w, h int) *Stage {
	t.Helper()
	st, err := NewStage(dst, Config{
		Grid:    testGridConfig(w, h),
		Palette: testPalette(),
	}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewStage failed: %v", err)
	}
	return st
}
