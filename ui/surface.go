package ui

import "math"

// Color is 8-bit RGBA.
type Color struct {
	R, G, B, A uint8
}

var (
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Black = Color{A: 255}
)

// Fade returns c with its alpha scaled by alpha in [0,1].
func (c Color) Fade(alpha float64) Color {
	alpha = math.Max(0, math.Min(1, alpha))
	c.A = uint8(math.Round(float64(c.A) * alpha))
	return c
}

// HSL converts hue (degrees, any range), saturation and lightness in [0,1]
// to an opaque color.
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	to8 := func(v float64) uint8 { return uint8(math.Round((v + m) * 255)) }
	return Color{R: to8(r), G: to8(g), B: to8(b), A: 255}
}

// Surface is the drawing capability a host provides. Coordinates are
// pixels from the top-left corner.
type Surface interface {
	Size() (width, height int)
	FillGradient(top, bottom Color)
	FillRect(x, y, w, h int, c Color)
	RoundedRect(x, y, w, h, radius int, c Color)
	Circle(cx, cy int, radius float64, c Color)
	// Text draws s centred on (cx, cy).
	Text(s string, cx, cy, size int, c Color)
}

// Viewport limits, in pixels.
const (
	MaxCanvasWidth  = 800
	MaxCanvasHeight = 600
	sideMargin      = 20
	bottomMargin    = 100
)

// CanvasSize fits the play area into a screen, capped at 800x600.
func CanvasSize(screenW, screenH int) (int, int) {
	return min(MaxCanvasWidth, screenW-sideMargin), min(MaxCanvasHeight, screenH-bottomMargin)
}

// GridSize returns how many whole cells of cellSize fit a canvas, at least
// one in each direction.
func GridSize(canvasW, canvasH, cellSize int) (int, int) {
	return max(canvasW/cellSize, 1), max(canvasH/cellSize, 1)
}
