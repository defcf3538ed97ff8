// Package tcellui runs games directly on a tcell screen, without Bubble Tea.
package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Surface is the canvas games paint on. Drawing goes to a retained buffer;
// Flush copies it to the terminal.
type Surface struct {
	*core.Screen
	term tcell.Screen
}

// NewSurface creates a surface covering the whole terminal.
func NewSurface(term tcell.Screen) *Surface {
	w, h := term.Size()
	return &Surface{
		Screen: core.NewScreen(w, h),
		term:   term,
	}
}

// Flush copies every buffered cell to the terminal and shows it.
func (s *Surface) Flush() {
	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			s.term.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	s.term.Show()
}

func styleFor(c core.Color) tcell.Style {
	idx := c.ANSI256()
	if idx < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
}
