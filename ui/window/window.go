// Package window hosts the game in a raylib window: it draws ui surfaces,
// reads the keyboard and supplies the animation clock.
package window

import (
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"neon-snake/game"
	"neon-snake/game/types"
	"neon-snake/ui"
)

// Surface draws onto the current raylib frame, inside a canvas placed at
// an offset in the window.
type Surface struct {
	offsetX, offsetY int32
	width, height    int32
}

func NewSurface() *Surface {
	s := &Surface{}
	s.UpdateDimensions()
	return s
}

// UpdateDimensions refits the canvas to the window, centred horizontally.
func (s *Surface) UpdateDimensions() {
	screenW, screenH := rl.GetScreenWidth(), rl.GetScreenHeight()
	w, h := ui.CanvasSize(screenW, screenH)
	w, h = max(w, 1), max(h, 1)
	s.width, s.height = int32(w), int32(h)
	s.offsetX = int32(screenW-w) / 2
	s.offsetY = int32(screenH-h) / 4
}

func (s *Surface) Size() (int, int) {
	return int(s.width), int(s.height)
}

func toRL(c ui.Color) color.RGBA {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (s *Surface) FillGradient(top, bottom ui.Color) {
	rl.DrawRectangleGradientV(s.offsetX, s.offsetY, s.width, s.height, toRL(top), toRL(bottom))
}

func (s *Surface) FillRect(x, y, w, h int, c ui.Color) {
	rl.DrawRectangle(s.offsetX+int32(x), s.offsetY+int32(y), int32(w), int32(h), toRL(c))
}

func (s *Surface) RoundedRect(x, y, w, h, radius int, c ui.Color) {
	short := min(w, h)
	if short <= 0 {
		return
	}
	roundness := min(float32(2*radius)/float32(short), 1)
	rec := rl.NewRectangle(float32(s.offsetX)+float32(x), float32(s.offsetY)+float32(y), float32(w), float32(h))
	rl.DrawRectangleRounded(rec, roundness, 8, toRL(c))
}

func (s *Surface) Circle(cx, cy int, radius float64, c ui.Color) {
	rl.DrawCircle(s.offsetX+int32(cx), s.offsetY+int32(cy), float32(radius), toRL(c))
}

func (s *Surface) Text(text string, cx, cy, size int, c ui.Color) {
	width := rl.MeasureText(text, int32(size))
	rl.DrawText(text, s.offsetX+int32(cx)-width/2, s.offsetY+int32(cy)-int32(size)/2, int32(size), toRL(c))
}

var directionKeys = []struct {
	key int32
	dir types.Point
}{
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyW, types.Up},
	{rl.KeyS, types.Down},
	{rl.KeyA, types.Left},
	{rl.KeyD, types.Right},
}

// PollInput forwards this frame's key presses to g. It reports whether a
// restart happened.
func PollInput(g *game.Game) bool {
	restarted := false
	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter) {
		restarted = g.OnRestart()
	}
	for _, k := range directionKeys {
		if rl.IsKeyPressed(k.key) {
			g.OnDirectionInput(k.dir)
		}
	}
	return restarted
}

// Now is the animation clock: time since the window opened.
func Now() time.Duration {
	return time.Duration(rl.GetTime() * float64(time.Second))
}
