package manager

import (
	"neon-snake/game/entity"
	"neon-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// SetGrid updates the bounds used for spawn validation.
func (cm *CollisionManager) SetGrid(grid types.Grid) {
	cm.grid = grid
}

// IsSelfCollision reports whether the head overlaps any other body cell.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	head := snake.Head()
	for i := 1; i < len(snake.Body); i++ {
		if snake.Body[i] == head {
			return true
		}
	}
	return false
}

// HasOverlap reports whether any two body cells coincide, head or not.
func (cm *CollisionManager) HasOverlap(snake *entity.Snake) bool {
	seen := make(map[types.Point]struct{}, len(snake.Body))
	for _, part := range snake.Body {
		if _, ok := seen[part]; ok {
			return true
		}
		seen[part] = struct{}{}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return food.At(pos)
}

// ValidateSpawnPosition checks if a position is inside the grid and clear of the snake
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return !snake.Occupies(pos)
}

// FreeCells lists every cell the snake does not cover, row by row.
func (cm *CollisionManager) FreeCells(snake *entity.Snake) []types.Point {
	occupied := make(map[types.Point]struct{}, len(snake.Body))
	for _, part := range snake.Body {
		occupied[part] = struct{}{}
	}

	free := make([]types.Point, 0, max(cm.grid.Cells()-len(occupied), 0))
	for y := 0; y < cm.grid.Height; y++ {
		for x := 0; x < cm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
