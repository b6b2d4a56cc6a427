package entity

import (
	"neon-snake/game/types"
)

// Source is the slice of a random number generator food placement needs.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Food is the single pellet on the grid. Placed is false only when no free
// cell was left to put it on.
type Food struct {
	Position types.Point
	Placed   bool
}

func NewFood(pos types.Point) *Food {
	return &Food{Position: pos, Placed: true}
}

// RandomPosition returns a uniformly random cell within the grid.
func RandomPosition(grid types.Grid, rng Source) types.Point {
	return types.Point{
		X: rng.Intn(grid.Width),
		Y: rng.Intn(grid.Height),
	}
}

// MoveTo places the food on p.
func (f *Food) MoveTo(p types.Point) {
	f.Position = p
	f.Placed = true
}

// Remove takes the food off the grid.
func (f *Food) Remove() {
	f.Placed = false
}

// At reports whether the food is placed on p.
func (f *Food) At(p types.Point) bool {
	return f.Placed && f.Position == p
}
