package game

import (
	"github.com/google/uuid"

	"neon-snake/game/entity"
	"neon-snake/game/manager"
	"neon-snake/game/types"
)

// StepResult describes what one simulation tick did. Renderers and audio
// use it for effects; it carries no state of its own.
type StepResult struct {
	Stepped bool // false when the session was already over
	Head    types.Point
	Ate     bool // head landed on food this tick
	Grew    bool // tail was kept on this advance
	State   manager.State
}

// Session is one game from start to game over. A restart replaces it.
type Session struct {
	ID    string
	Grid  types.Grid
	Snake *entity.Snake
	Food  *entity.Food
	Ticks int

	state      *manager.StateManager
	collisions *manager.CollisionManager
	foods      *manager.FoodManager
}

// NewSession starts a one-cell snake in the middle of the grid heading
// right, with food on a random free cell.
func NewSession(grid types.Grid, rng entity.Source) *Session {
	return newSession(grid, entity.NewSnake(grid.Center()), nil, rng)
}

// newSession wires the managers around snake. A nil food is spawned.
func newSession(grid types.Grid, snake *entity.Snake, food *entity.Food, rng entity.Source) *Session {
	id := uuid.New().String()
	collisions := manager.NewCollisionManager(grid)
	s := &Session{
		ID:         id,
		Grid:       grid,
		Snake:      snake,
		state:      manager.NewStateManager(id, logger),
		collisions: collisions,
		foods:      manager.NewFoodManager(grid, rng, collisions),
	}

	if food == nil {
		food = s.foods.Spawn(snake)
	}
	s.Food = food
	if !food.Placed {
		s.state.Transition(manager.Cleared)
	}

	logger.Printf("session %s started on %dx%d grid", id, grid.Width, grid.Height)
	return s
}

func (s *Session) State() manager.State {
	return s.state.State()
}

// Over reports whether the session has reached a terminal state.
func (s *Session) Over() bool {
	return s.state.Terminal()
}

// Step advances the simulation by one tick. Eating is resolved before the
// collision check. It does nothing once the session is over.
func (s *Session) Step() StepResult {
	if s.state.Terminal() {
		return StepResult{Head: s.Snake.Head(), State: s.state.State()}
	}

	s.Ticks++
	head, grew := s.Snake.Advance(s.Grid)
	res := StepResult{Stepped: true, Head: head, Grew: grew}

	full := false
	if s.collisions.IsFoodCollision(head, s.Food) {
		res.Ate = true
		s.Snake.Grow()
		full = !s.foods.Respawn(s.Food, s.Snake)
	}

	switch {
	case s.collisions.IsSelfCollision(s.Snake):
		s.state.Transition(manager.GameOver)
	case full:
		s.state.Transition(manager.Cleared)
	}

	res.State = s.state.State()
	return res
}

// Resize moves the session onto a grid of new dimensions. Cells outside the
// new bounds wrap. A body folded onto itself ends the game; food that ends
// up under the snake is respawned.
func (s *Session) Resize(grid types.Grid) {
	s.Grid = grid
	s.collisions.SetGrid(grid)
	s.foods.SetGrid(grid)

	for i, part := range s.Snake.Body {
		s.Snake.Body[i] = grid.Wrap(part)
	}
	if s.collisions.HasOverlap(s.Snake) {
		s.state.Transition(manager.GameOver)
	}
	if !s.Food.Placed {
		return
	}
	s.Food.Position = grid.Wrap(s.Food.Position)
	if s.Snake.Occupies(s.Food.Position) {
		if !s.foods.Respawn(s.Food, s.Snake) {
			s.state.Transition(manager.Cleared)
		}
	}
}

// Clone returns a deep copy of the session state. The copy shares the
// random source and keeps the same ID.
func (s *Session) Clone() *Session {
	food := *s.Food
	c := &Session{
		ID:         s.ID,
		Grid:       s.Grid,
		Snake:      s.Snake.Clone(),
		Food:       &food,
		Ticks:      s.Ticks,
		state:      manager.NewStateManager(s.ID, logger),
		collisions: manager.NewCollisionManager(s.Grid),
	}
	c.foods = manager.NewFoodManager(s.Grid, s.foods.Source(), c.collisions)
	c.state.Restore(s.state.State())
	return c
}
