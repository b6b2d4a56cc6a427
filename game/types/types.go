package types

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned when a grid would have no cells.
var ErrInvalidGrid = errors.New("grid dimensions must be positive")

// Point is a cell on the grid, or a unit movement delta.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction deltas. Y grows downwards.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Opposite returns the reverse of a direction delta.
func Opposite(d Point) Point {
	return Point{X: -d.X, Y: -d.Y}
}

// IsDirection reports whether d is one of the four unit deltas.
func IsDirection(d Point) bool {
	return d == Up || d == Down || d == Left || d == Right
}

// Grid represents the game grid dimensions. Edges wrap around.
type Grid struct {
	Width  int
	Height int
}

// NewGrid validates the dimensions and returns a grid.
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidGrid)
	}
	return Grid{Width: width, Height: height}, nil
}

// Cells is the total number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the middle cell, rounding down.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Contains reports whether p lies within the grid bounds.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps any point onto the grid, treating both axes as toroidal.
func (g Grid) Wrap(p Point) Point {
	return Point{X: wrap(p.X, g.Width), Y: wrap(p.Y, g.Height)}
}

// Distance is the Manhattan distance between a and b, taking the short way
// round on each axis.
func (g Grid) Distance(a, b Point) int {
	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
	if dx > g.Width/2 {
		dx = g.Width - dx
	}
	if dy > g.Height/2 {
		dy = g.Height - dy
	}
	return dx + dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
