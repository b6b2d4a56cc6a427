package manager

import (
	"neon-snake/game/entity"
	"neon-snake/game/types"
)

// Random draws tried before falling back to scanning for free cells.
const maxPlacementAttempts = 64

type FoodManager struct {
	grid         types.Grid
	rng          entity.Source
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng entity.Source, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// SetGrid updates the bounds used for new positions.
func (fm *FoodManager) SetGrid(grid types.Grid) {
	fm.grid = grid
}

// GenerateFood returns a random cell not covered by the snake. ok is false
// when the snake covers the whole grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	for i := 0; i < maxPlacementAttempts; i++ {
		food := entity.RandomPosition(fm.grid, fm.rng)
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	// Crowded grid: pick uniformly among what is left.
	free := fm.collisionMgr.FreeCells(snake)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

// Respawn moves food to a fresh free cell, or removes it if none is left.
// It reports whether the food was placed.
func (fm *FoodManager) Respawn(food *entity.Food, snake *entity.Snake) bool {
	pos, ok := fm.GenerateFood(snake)
	if !ok {
		food.Remove()
		return false
	}
	food.MoveTo(pos)
	return true
}

// Spawn creates food on a free cell.
func (fm *FoodManager) Spawn(snake *entity.Snake) *entity.Food {
	food := &entity.Food{}
	fm.Respawn(food, snake)
	return food
}

func (fm *FoodManager) Source() entity.Source {
	return fm.rng
}
