package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var splashLines = []struct {
	text string
	row  int
}{
	{"Controls:", 2},
	{"   Move:  ↑, ↓, ←, →", 4},
	{"   TURBO: Space", 6},
	{"Press any key to continue...", 10},
}

const (
	splashX        = 2
	splashScoreRow = 16
)

// drawSplash paints the controls and, after the first run, the last score.
// Short surfaces get the same lines at half the spacing.
func (g *Game) drawSplash() {
	g.dst.ClearRect(0, 0, g.screenW, g.screenH)
	g.dst.FillRect(0, 0, g.screenW, g.screenH, g.palette.Background)

	row := func(r int) int {
		if g.screenH <= splashScoreRow {
			return r / 2
		}
		return r
	}

	for _, line := range splashLines {
		g.dst.DrawText(line.text, splashX, row(line.row), core.FontSplash, g.palette.Text)
	}
	if !g.firstRun {
		g.dst.DrawText(fmt.Sprintf("Score: %d", g.score), splashX, row(splashScoreRow), core.FontSplash, g.palette.Text)
	}
}
