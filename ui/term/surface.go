// Package term hosts the game in a terminal through tcell. Every grid cell
// is drawn as two columns by one row.
package term

import (
	"github.com/gdamore/tcell/v2"

	"neon-snake/ui"
)

const colsPerCell = 2

// Cell is one terminal character as the surface will flush it.
type Cell struct {
	Rune rune
	FG   ui.Color
	BG   ui.Color
}

// Surface buffers a frame in terminal cells. Pixel coordinates are mapped
// with cellSize pixels per grid cell, so the same renderer drives both the
// window and the terminal.
type Surface struct {
	cols, rows int
	cellSize   int
	cells      []Cell
}

func NewSurface(cols, rows, cellSize int) *Surface {
	s := &Surface{cellSize: cellSize}
	s.Resize(cols, rows)
	return s
}

// Resize changes the buffer dimensions and clears it.
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	s.cells = make([]Cell, s.cols*s.rows)
	for i := range s.cells {
		s.cells[i] = Cell{Rune: ' ', FG: ui.White, BG: ui.Black}
	}
}

// Size reports the play area in pixels.
func (s *Surface) Size() (int, int) {
	return s.cols / colsPerCell * s.cellSize, s.rows * s.cellSize
}

// Cell returns the buffered cell at column col, row row.
func (s *Surface) Cell(col, row int) (Cell, bool) {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return Cell{}, false
	}
	return s.cells[row*s.cols+col], true
}

func (s *Surface) at(col, row int) *Cell {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return nil
	}
	return &s.cells[row*s.cols+col]
}

func (s *Surface) col(x int) int { return x * colsPerCell / s.cellSize }
func (s *Surface) row(y int) int { return y / s.cellSize }

func blend(dst, src ui.Color) ui.Color {
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 { return uint8(float64(s)*a + float64(d)*(1-a)) }
	return ui.Color{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

func (s *Surface) FillGradient(top, bottom ui.Color) {
	for row := 0; row < s.rows; row++ {
		t := 0.0
		if s.rows > 1 {
			t = float64(row) / float64(s.rows-1)
		}
		lerp := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t) }
		bg := ui.Color{R: lerp(top.R, bottom.R), G: lerp(top.G, bottom.G), B: lerp(top.B, bottom.B), A: 255}
		for col := 0; col < s.cols; col++ {
			*s.at(col, row) = Cell{Rune: ' ', FG: ui.White, BG: bg}
		}
	}
}

// fill applies c to every cell the pixel rectangle touches. Opaque colors
// become full blocks, translucent ones tint the background.
func (s *Surface) fill(x, y, w, h int, c ui.Color, glyph rune) {
	if w <= 0 || h <= 0 {
		return
	}
	c0, c1 := s.col(x), max(s.col(x+w-1), s.col(x)+colsPerCell-1)
	r0, r1 := s.row(y), s.row(y+h-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cell := s.at(col, row)
			if cell == nil {
				continue
			}
			if c.A < 255 {
				cell.BG = blend(cell.BG, c)
				continue
			}
			cell.Rune, cell.FG = glyph, c
		}
	}
}

func (s *Surface) FillRect(x, y, w, h int, c ui.Color) {
	if c.A < 255 {
		s.fill(x, y, w, h, c, ' ')
		return
	}
	s.fill(x, y, w, h, c, '█')
}

func (s *Surface) RoundedRect(x, y, w, h, radius int, c ui.Color) {
	s.fill(x, y, w, h, c, '█')
}

func (s *Surface) Circle(cx, cy int, radius float64, c ui.Color) {
	if c.A < 255 {
		r := int(radius)
		s.fill(cx-r, cy-r, 2*r, 2*r, c, ' ')
		return
	}
	// Opaque circles mark their centre cell.
	half := s.cellSize / 2
	s.fill(cx-half, cy-half, s.cellSize, s.cellSize, c, '●')
}

func (s *Surface) Text(text string, cx, cy, size int, c ui.Color) {
	runes := []rune(text)
	col := s.col(cx) - len(runes)/2
	row := s.row(cy)
	for i, r := range runes {
		if cell := s.at(col+i, row); cell != nil {
			cell.Rune, cell.FG = r, c
		}
	}
}

func style(c Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.FG.R), int32(c.FG.G), int32(c.FG.B))).
		Background(tcell.NewRGBColor(int32(c.BG.R), int32(c.BG.G), int32(c.BG.B)))
}

// Flush copies the buffer to screen. The caller shows the screen.
func (s *Surface) Flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := s.cells[row*s.cols+col]
			screen.SetContent(col, row, c.Rune, nil, style(c))
		}
	}
}
