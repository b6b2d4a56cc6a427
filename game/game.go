package game

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"neon-snake/game/types"
)

// Config holds what a Game needs to start.
type Config struct {
	Width, Height int           // grid cells
	TimeStep      time.Duration // simulation period
	MaxFrameDelta time.Duration // cap on time added by one frame, 0 = none
	Seed          uint64        // 0 picks a time-based seed
}

// FrameResult reports the ticks run by one OnFrame call.
type FrameResult struct {
	Ticks int
	Steps []StepResult
}

// Ate reports whether any tick in the frame ate food.
func (r FrameResult) Ate() bool {
	for _, s := range r.Steps {
		if s.Ate {
			return true
		}
	}
	return false
}

// Game is the host-facing controller. The host calls OnFrame from its
// render callback and forwards input through OnDirectionInput and
// OnRestart; all calls must come from one goroutine.
type Game struct {
	grid    types.Grid
	rng     *rand.Rand
	loop    *Loop
	session *Session
}

func NewGame(cfg Config) (*Game, error) {
	grid, err := types.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	step := cfg.TimeStep
	if step == 0 {
		step = DefaultTimeStep
	}
	loop, err := NewLoop(step, cfg.MaxFrameDelta)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	return &Game{
		grid:    grid,
		rng:     rng,
		loop:    loop,
		session: NewSession(grid, rng),
	}, nil
}

// Session returns the current session. It is replaced on restart, so do not
// hold on to it across frames.
func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

// Rand exposes the game's random source for cosmetic effects.
func (g *Game) Rand() *rand.Rand {
	return g.rng
}

// OnFrame feeds a frame timestamp to the fixed-step loop and runs the ticks
// that are due.
func (g *Game) OnFrame(now time.Duration) FrameResult {
	var res FrameResult
	res.Ticks = g.loop.Advance(now, func() {
		if step := g.session.Step(); step.Stepped {
			res.Steps = append(res.Steps, step)
		}
	})
	return res
}

// OnDirectionInput turns the snake. dir must be one of the four unit
// deltas; anything else is ignored.
func (g *Game) OnDirectionInput(dir types.Point) {
	if g.session.Over() || !types.IsDirection(dir) {
		return
	}
	g.session.Snake.SetDirection(dir)
}

// OnRestart replaces a finished session with a fresh one. It reports
// whether a restart happened; running sessions are left alone.
func (g *Game) OnRestart() bool {
	if !g.session.Over() {
		return false
	}
	old := g.session
	g.session = NewSession(g.grid, g.rng)
	logger.Printf("session %s restarted as %s after %d ticks", old.ID, g.session.ID, old.Ticks)
	return true
}

// Resize applies new grid dimensions, typically after the host viewport
// changed. The running session keeps its snake.
func (g *Game) Resize(width, height int) error {
	grid, err := types.NewGrid(width, height)
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	if grid == g.grid {
		return nil
	}
	g.grid = grid
	g.session.Resize(grid)
	return nil
}
