package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/weave"
)

const (
	glyphParticle   = '•'
	glyphHorizontal = '─'
	glyphVertical   = '│'
	glyphRising     = '╱'
	glyphFalling    = '╲'
)

// lineWeightScale converts a stroke width in world units to the fraction of
// a cell a line covers. Pointer edges (0.5) cover a full cell.
const lineWeightScale = 2.0

// cell is one character of the raster: a composited color and the glyph
// drawn with it. A zero glyph is blank.
type cell struct {
	color colorful.Color
	glyph rune
}

// Surface rasterizes the backdrop into terminal cells. World coordinates map
// to cells by CellWidth x CellHeight. Discs light their center cell; lines
// are walked cell by cell and composited over what is already there.
type Surface struct {
	cols, rows int
	cellW      float64
	cellH      float64
	background colorful.Color
	alpha      float64
	cells      []cell
}

func newSurface(cols, rows int, cellW, cellH float64, background weave.Color) *Surface {
	s := &Surface{
		cellW:      cellW,
		cellH:      cellH,
		background: colorful.Color{R: background.R, G: background.G, B: background.B},
		alpha:      1,
	}
	s.Resize(cols, rows)
	return s
}

// Resize reallocates the cell buffer.
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	s.cells = make([]cell, s.cols*s.rows)
	s.Clear()
}

// Size returns the surface dimensions in world units.
func (s *Surface) Size() (int, int) {
	return int(float64(s.cols) * s.cellW), int(float64(s.rows) * s.cellH)
}

// Clear blanks every cell to the background.
func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{color: s.background}
	}
}

// SetAlpha sets the global alpha, clamped to [0, 1].
func (s *Surface) SetAlpha(a float64) {
	s.alpha = math.Max(0, math.Min(1, a))
}

// FillCircle marks the cell under (x, y) as a particle. Radii are far below
// a cell, so r only gates zero-size discs.
func (s *Surface) FillCircle(x, y, r float64, c weave.Color) {
	if r <= 0 {
		return
	}
	col, row := s.cellAt(x, y)
	if i, ok := s.index(col, row); ok {
		s.paint(i, c, 1)
		s.cells[i].glyph = glyphParticle
	}
}

// StrokeLine walks the cells between the two endpoints (Bresenham) and
// composites c into each. Particle glyphs are kept; other cells take the
// glyph matching the line's slope.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c weave.Color) {
	if width <= 0 {
		return
	}
	weight := math.Min(1, width*lineWeightScale)
	glyph := slopeGlyph((x1-x0)/s.cellW, (y1-y0)/s.cellH)

	c0, r0 := s.cellAt(x0, y0)
	c1, r1 := s.cellAt(x1, y1)
	dx, dy := abs(c1-c0), -abs(r1-r0)
	sx, sy := sign(c1-c0), sign(r1-r0)
	e := dx + dy
	for {
		if i, ok := s.index(c0, r0); ok {
			s.paint(i, c, weight)
			if s.cells[i].glyph != glyphParticle {
				s.cells[i].glyph = glyph
			}
		}
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			c0 += sx
		}
		if e2 <= dx {
			e += dx
			r0 += sy
		}
	}
}

// paint composites c over cell i with the global alpha and coverage.
func (s *Surface) paint(i int, c weave.Color, coverage float64) {
	a := c.A * s.alpha * coverage
	src := colorful.Color{R: c.R, G: c.G, B: c.B}
	s.cells[i].color = s.cells[i].color.BlendRgb(src, a).Clamped()
}

// present copies the raster onto the screen. It does not call Show.
func (s *Surface) present(screen tcell.Screen) {
	bg := tcellColor(s.background)
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := s.cells[row*s.cols+col]
			style := tcell.StyleDefault.Background(bg)
			glyph := ' '
			if c.glyph != 0 {
				glyph = c.glyph
				style = style.Foreground(tcellColor(c.color))
			}
			screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

func (s *Surface) cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

func (s *Surface) index(col, row int) (int, bool) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return 0, false
	}
	return row*s.cols + col, true
}

// slopeGlyph picks a line glyph from a direction in cell units. Rows grow
// downward, so a falling line runs top-left to bottom-right.
func slopeGlyph(dx, dy float64) rune {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ay*2 <= ax:
		return glyphHorizontal
	case ax*2 <= ay:
		return glyphVertical
	case (dx > 0) == (dy > 0):
		return glyphFalling
	default:
		return glyphRising
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
