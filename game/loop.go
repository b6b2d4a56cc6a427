package game

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidStep = errors.New("time step must be positive")

// DefaultTimeStep is the simulation period: ten ticks per second.
const DefaultTimeStep = 100 * time.Millisecond

// Loop converts irregular frame timestamps into a fixed number of
// simulation ticks. Leftover time carries over to the next frame.
type Loop struct {
	step     time.Duration
	maxDelta time.Duration

	last        time.Duration
	started     bool
	accumulator time.Duration
}

// NewLoop returns a loop ticking once per step. maxDelta caps the time a
// single frame may add, bounding catch-up after a stall; zero disables it.
func NewLoop(step, maxDelta time.Duration) (*Loop, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step %v: %w", step, ErrInvalidStep)
	}
	if maxDelta < 0 {
		maxDelta = 0
	}
	return &Loop{step: step, maxDelta: maxDelta}, nil
}

func (l *Loop) Step() time.Duration {
	return l.step
}

// Pending is the accumulated time not yet consumed by a tick.
func (l *Loop) Pending() time.Duration {
	return l.accumulator
}

// Advance records the frame timestamp now and calls tick once for every
// full step of accumulated time. The first call only starts the clock.
// It returns the number of ticks run.
func (l *Loop) Advance(now time.Duration, tick func()) int {
	if !l.started {
		l.started = true
		l.last = now
		return 0
	}

	delta := now - l.last
	l.last = now
	if delta < 0 {
		delta = 0
	}
	if l.maxDelta > 0 && delta > l.maxDelta {
		delta = l.maxDelta
	}
	l.accumulator += delta

	ticks := 0
	for l.accumulator >= l.step {
		tick()
		l.accumulator -= l.step
		ticks++
	}
	return ticks
}
