package entity

import (
	"neon-snake/game/types"
)

// Snake is an ordered body, head first, moving one cell per tick.
type Snake struct {
	Body      []types.Point
	Direction types.Point
	grow      bool
}

// NewSnake creates a one-cell snake heading right.
func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.Right, // Start moving right
	}
}

// NewSnakeFromBody builds a snake with an explicit body, head first.
// The body must not be empty.
func NewSnakeFromBody(body []types.Point, dir types.Point) *Snake {
	if len(body) == 0 {
		panic("entity: snake body must not be empty")
	}
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{Body: b, Direction: dir}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection changes heading on the next advance. Reversing straight
// into the neck is ignored.
func (s *Snake) SetDirection(dir types.Point) {
	if dir == types.Opposite(s.Direction) {
		return
	}
	s.Direction = dir
}

// Grow keeps the tail on the next advance.
func (s *Snake) Grow() {
	s.grow = true
}

func (s *Snake) GrowthPending() bool {
	return s.grow
}

// Advance moves the head one cell, wrapping at the grid edges, and returns
// the new head and whether the body got longer.
func (s *Snake) Advance(grid types.Grid) (types.Point, bool) {
	newHead := grid.Wrap(s.Head().Add(s.Direction))

	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	if !s.grow {
		s.Body = s.Body[:len(s.Body)-1]
		return newHead, false
	}
	s.grow = false
	return newHead, true
}

// Occupies reports whether any body cell equals p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}

// Clone returns an independent copy, growth flag included.
func (s *Snake) Clone() *Snake {
	return &Snake{Body: s.Cells(), Direction: s.Direction, grow: s.grow}
}
