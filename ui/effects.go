package ui

import (
	"neon-snake/game"
)

const (
	particleBurst    = 10
	particleLifetime = 30
	particleSpeed    = 4 // velocity spread, px per tick
	hueStep          = 0.01
	glowStep         = 0.1
)

// Random is the part of *rand.Rand the effects use.
type Random interface {
	Float64() float64
}

// Particle is a short-lived spark drawn when the snake grows.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Lifetime int
	Color    Color
}

func (p *Particle) update() bool {
	p.X += p.VX
	p.Y += p.VY
	p.Lifetime--
	return p.Lifetime > 0
}

// Effects holds cosmetic state: sparks, the body hue cycle and the food
// glow. None of it feeds back into the simulation.
type Effects struct {
	rng       Random
	particles []Particle
	hue       float64 // [0,1)
	glow      float64 // [0,1]
	glowDir   float64
}

func NewEffects(rng Random) *Effects {
	return &Effects{rng: rng, glowDir: 1}
}

// OnStep advances tick-driven effects for one simulation step.
func (e *Effects) OnStep(res game.StepResult, cellSize int) {
	if res.Grew {
		e.burst(float64(res.Head.X*cellSize), float64(res.Head.Y*cellSize))
	}

	alive := e.particles[:0]
	for _, p := range e.particles {
		if p.update() {
			alive = append(alive, p)
		}
	}
	e.particles = alive

	e.hue += hueStep
	if e.hue >= 1 {
		e.hue -= 1
	}
}

func (e *Effects) burst(x, y float64) {
	for i := 0; i < particleBurst; i++ {
		e.particles = append(e.particles, Particle{
			X:        x,
			Y:        y,
			VX:       (e.rng.Float64() - 0.5) * particleSpeed,
			VY:       (e.rng.Float64() - 0.5) * particleSpeed,
			Lifetime: particleLifetime,
			Color: Color{
				R: uint8(e.rng.Float64()*105 + 150),
				G: uint8(e.rng.Float64()*105 + 150),
				B: uint8(e.rng.Float64()*105 + 150),
				A: 255,
			},
		})
	}
}

// PulseGlow moves the food glow one render step and returns it.
func (e *Effects) PulseGlow() float64 {
	e.glow += glowStep * e.glowDir
	if e.glow >= 1 {
		e.glowDir = -1
	} else if e.glow <= 0 {
		e.glowDir = 1
	}
	return e.glow
}

func (e *Effects) Particles() []Particle {
	return e.particles
}

func (e *Effects) Hue() float64 {
	return e.hue
}

// Reset drops tick-driven effects; used when a new session starts.
func (e *Effects) Reset() {
	e.particles = e.particles[:0]
	e.hue = 0
}
