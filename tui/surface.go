//go:build !js

package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/catch-it/game"
)

// Default cell size in game pixels. Terminal cells are about twice as tall
// as they are wide.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// CellWriter is the part of tcell.Screen the surface draws with.
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Surface projects the game's pixel draw list onto terminal cells.
type Surface struct {
	Out        CellWriter
	CellWidth  float64
	CellHeight float64

	cols, rows int
	background tcell.Color
}

// NewSurface creates a surface of cols x rows cells.
func NewSurface(out CellWriter, cols, rows int) *Surface {
	s := &Surface{
		Out:        out,
		CellWidth:  CellWidth,
		CellHeight: CellHeight,
		background: tcell.GetColor(game.Theme.BackgroundColor),
	}
	s.Resize(cols, rows)
	return s
}

// Resize sets the grid size.
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
}

// Size returns the grid size in cells.
func (s *Surface) Size() (cols, rows int) {
	return s.cols, s.rows
}

// Viewport returns the grid size in game pixels.
func (s *Surface) Viewport() (width, height float64) {
	return float64(s.cols) * s.CellWidth, float64(s.rows) * s.CellHeight
}

// CellToX maps a column to the game x coordinate of its centre.
func (s *Surface) CellToX(col int) float64 {
	return (float64(col) + 0.5) * s.CellWidth
}

func (s *Surface) style() tcell.Style {
	return tcell.StyleDefault.Background(s.background)
}

// Clear fills the grid with the background.
func (s *Surface) Clear(width, height float64) {
	st := s.style()
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			s.Out.SetContent(x, y, ' ', nil, st)
		}
	}
}

// spriteRune picks a glyph for the sprite kind. Faint fades use a lighter
// shade.
func spriteRune(sp game.Sprite) rune {
	switch sp.Kind {
	case game.SpriteCatcher:
		return '▄'
	case game.SpriteCatchFade:
		if sp.Alpha < 0.5 {
			return '░'
		}
		return '▒'
	}
	if sp.Category == game.Hazard {
		return '●'
	}
	return '◆'
}

// cellSpan returns the cells covered by [pos, pos+size). Anything with a
// positive size covers at least one cell.
func cellSpan(pos, size, cell float64) (first, last int) {
	first = int(math.Floor(pos / cell))
	last = int(math.Ceil((pos+size)/cell)) - 1
	if last < first {
		last = first
	}
	return first, last
}

// DrawSprite fills the cells the sprite covers.
func (s *Surface) DrawSprite(sp game.Sprite) {
	if sp.Alpha <= 0 || sp.Width <= 0 || sp.Height <= 0 {
		return
	}
	x0, x1 := cellSpan(sp.X, sp.Width, s.CellWidth)
	y0, y1 := cellSpan(sp.Y, sp.Height, s.CellHeight)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, s.cols-1), min(y1, s.rows-1)

	r := spriteRune(sp)
	st := s.style().Foreground(tcell.GetColor(sp.Color))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.Out.SetContent(x, y, r, nil, st)
		}
	}
}

// DrawText writes a label on the row holding its baseline.
func (s *Surface) DrawText(l game.Label) {
	if l.Alpha <= 0 || l.Text == "" {
		return
	}
	row := int(math.Floor((l.Y - 1) / s.CellHeight))
	if row < 0 || row >= s.rows {
		return
	}
	text := []rune(l.Text)
	col := int(math.Floor(l.X / s.CellWidth))
	if l.Align == game.AlignCenter {
		col -= len(text) / 2
	}

	st := s.style().Foreground(tcell.GetColor(l.Color))
	if l.Alpha < 0.5 {
		st = st.Dim(true)
	}
	for i, r := range text {
		if x := col + i; x >= 0 && x < s.cols {
			s.Out.SetContent(x, row, r, nil, st)
		}
	}
}

var _ game.Surface = (*Surface)(nil)
