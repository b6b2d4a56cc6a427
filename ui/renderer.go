package ui

import (
	"neon-snake/game"
	"neon-snake/game/manager"
)

const (
	segmentGap    = 2 // px trimmed from each body cell
	segmentRadius = 8
	hueSpread     = 0.02 // hue offset per segment
	glowExtra     = 5    // extra glow radius at full pulse, px
	particleSize  = 4
)

var (
	backgroundTop    = HSL(240, 1, 0.05)
	backgroundBottom = HSL(200, 1, 0.05)
	foodColor        = Color{R: 255, G: 50, B: 50, A: 255}
	overlayColor     = Color{A: 255}.Fade(0.7)
)

// Messages shown over a finished session.
const (
	GameOverTitle = "GAME OVER!"
	ClearedTitle  = "YOU WIN!"
	RestartHint   = "Press SPACE to restart"
)

type Renderer struct {
	cellSize int
	effects  *Effects
}

func NewRenderer(cellSize int, effects *Effects) *Renderer {
	return &Renderer{cellSize: cellSize, effects: effects}
}

func (r *Renderer) CellSize() int {
	return r.cellSize
}

// Draw paints one frame of s. It only reads the session.
func (r *Renderer) Draw(surf Surface, s *game.Session) {
	surf.FillGradient(backgroundTop, backgroundBottom)

	r.drawFood(surf, s)
	r.drawParticles(surf)
	r.drawSnake(surf, s)

	if s.Over() {
		r.drawOverlay(surf, s.State())
	}
}

func (r *Renderer) drawFood(surf Surface, s *game.Session) {
	glow := r.effects.PulseGlow()
	if !s.Food.Placed {
		return
	}

	half := float64(r.cellSize) / 2
	cx := s.Food.Position.X*r.cellSize + r.cellSize/2
	cy := s.Food.Position.Y*r.cellSize + r.cellSize/2

	surf.Circle(cx, cy, half+glow*glowExtra, foodColor.Fade(0.2))
	surf.Circle(cx, cy, half, foodColor)
}

func (r *Renderer) drawParticles(surf Surface) {
	for _, p := range r.effects.Particles() {
		alpha := float64(p.Lifetime) / particleLifetime
		surf.FillRect(int(p.X), int(p.Y), particleSize, particleSize, p.Color.Fade(alpha))
	}
}

func (r *Renderer) drawSnake(surf Surface, s *game.Session) {
	size := r.cellSize - segmentGap
	for i, seg := range s.Snake.Body {
		hue := r.effects.Hue() + float64(i)*hueSpread
		surf.RoundedRect(seg.X*r.cellSize, seg.Y*r.cellSize, size, size, segmentRadius, HSL(hue*360, 1, 0.5))
	}
}

func (r *Renderer) drawOverlay(surf Surface, state manager.State) {
	w, h := surf.Size()
	surf.FillRect(0, 0, w, h, overlayColor)

	title := GameOverTitle
	if state == manager.Cleared {
		title = ClearedTitle
	}
	surf.Text(title, w/2, h/2, 48, White)
	surf.Text(RestartHint, w/2, h/2+40, 24, White)
}

// OnFrame feeds the frame's ticks to the effects.
func (r *Renderer) OnFrame(res game.FrameResult) {
	for _, step := range res.Steps {
		r.effects.OnStep(step, r.cellSize)
	}
}

// OnRestart clears effects left over from the previous session.
func (r *Renderer) OnRestart() {
	r.effects.Reset()
}
