package manager

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"golang.org/x/exp/rand"

	"neon-snake/game/entity"
	"neon-snake/game/types"
)

func TestIsSelfCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})

	straight := entity.NewSnakeFromBody([]types.Point{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}, types.Right)
	if cm.IsSelfCollision(straight) {
		t.Error("straight snake reported as colliding")
	}

	looped := entity.NewSnakeFromBody([]types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}}, types.Right)
	if !cm.IsSelfCollision(looped) {
		t.Error("head on body not detected")
	}

	single := entity.NewSnake(types.Point{X: 3, Y: 3})
	if cm.IsSelfCollision(single) {
		t.Error("single cell snake reported as colliding")
	}
}

func TestHasOverlap(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})

	tests := []struct {
		name string
		body []types.Point
		want bool
	}{
		{"single", []types.Point{{X: 1, Y: 1}}, false},
		{"straight", []types.Point{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}}, false},
		{"head on body", []types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}}, true},
		{"tail on body", []types.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cm.HasOverlap(entity.NewSnakeFromBody(tc.body, types.Right)); got != tc.want {
				t.Errorf("HasOverlap(%v) = %v, want %v", tc.body, got, tc.want)
			}
		})
	}
}

func TestFreeCells(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 2, Height: 2})
	s := entity.NewSnakeFromBody([]types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, types.Down)

	free := cm.FreeCells(s)
	if len(free) != 1 || free[0] != (types.Point{X: 0, Y: 1}) {
		t.Errorf("FreeCells = %v, want [{0 1}]", free)
	}
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	grid := types.Grid{Width: 6, Height: 6}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.New(rand.NewSource(7)), cm)

	body := make([]types.Point, 0, 30)
	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			body = append(body, types.Point{X: x, Y: y})
		}
	}
	s := entity.NewSnakeFromBody(body, types.Down)

	for i := 0; i < 200; i++ {
		p, ok := fm.GenerateFood(s)
		if !ok {
			t.Fatal("no position found with free cells left")
		}
		if s.Occupies(p) || !grid.Contains(p) {
			t.Fatalf("food placed on %v", p)
		}
	}
}

func TestGenerateFoodFallsBackToScan(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)), cm)

	body := cm.FreeCells(entity.NewSnake(types.Point{X: 2, Y: 2}))
	// Every cell but (2,2) is covered; sampling may miss, the scan cannot.
	s := entity.NewSnakeFromBody(body, types.Right)
	for i := 0; i < 50; i++ {
		p, ok := fm.GenerateFood(s)
		if !ok || p != (types.Point{X: 2, Y: 2}) {
			t.Fatalf("GenerateFood = %v, %v; want {2 2}, true", p, ok)
		}
	}
}

func TestRespawnOnFullGrid(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 1}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.New(rand.NewSource(3)), cm)
	s := entity.NewSnakeFromBody([]types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, types.Left)

	food := entity.NewFood(types.Point{X: 0, Y: 0})
	if fm.Respawn(food, s) {
		t.Fatal("Respawn placed food on a full grid")
	}
	if food.Placed {
		t.Error("food still marked placed")
	}
}

func TestStateManagerTransitions(t *testing.T) {
	var buf bytes.Buffer
	sm := NewStateManager("test", log.New(&buf, "", 0))

	if sm.State() != Running || sm.Terminal() {
		t.Fatalf("new manager state = %v", sm.State())
	}
	if !sm.Transition(GameOver) {
		t.Fatal("Running -> GameOver rejected")
	}
	if sm.Transition(Cleared) || sm.Transition(Running) {
		t.Error("terminal state changed without Reset")
	}
	if sm.State() != GameOver {
		t.Errorf("state = %v, want game over", sm.State())
	}
	if !strings.Contains(buf.String(), "running -> game over") {
		t.Errorf("transition not logged: %q", buf.String())
	}

	sm.Reset()
	if sm.State() != Running {
		t.Errorf("after Reset state = %v", sm.State())
	}
}
