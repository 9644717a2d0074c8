package manager

import (
	"classic-snake/game/types"
)

// CollisionType represents the outcome of a collision check
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	FoodCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case FoodCollision:
		return "food"
	default:
		return "none"
	}
}

// Fatal reports whether the collision ends the round
func (c CollisionType) Fatal() bool {
	return c == WallCollision || c == SelfCollision
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// HitsWall checks if a position is outside the grid
func (cm *CollisionManager) HitsWall(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// HitsSelf checks if the head (body[0]) overlaps any other segment
func (cm *CollisionManager) HitsSelf(body []types.Point) bool {
	if len(body) == 0 {
		return false
	}
	head := body[0]
	for _, part := range body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// HitsFood checks if a position collides with food
func (cm *CollisionManager) HitsFood(pos types.Point, food *FoodManager) bool {
	return food != nil && food.IsAt(pos)
}

// Check evaluates a freshly stepped body. Wall and self collisions take
// priority over food.
func (cm *CollisionManager) Check(body []types.Point, food *FoodManager) CollisionType {
	if len(body) == 0 {
		return NoCollision
	}
	head := body[0]

	if cm.HitsWall(head) {
		return WallCollision
	}
	if cm.HitsSelf(body) {
		return SelfCollision
	}
	if cm.HitsFood(head, food) {
		return FoodCollision
	}
	return NoCollision
}
