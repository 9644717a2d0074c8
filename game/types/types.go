package types

import "time"

// Point is a cell on the grid
type Point struct {
	X, Y int
}

// Add returns the point translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Reverse returns the opposite vector
func (p Point) Reverse() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Unit directions. Y grows downwards.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// IsDirection reports whether d is one of the four unit directions
func IsDirection(d Point) bool {
	return d == Up || d == Down || d == Left || d == Right
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewSquareGrid returns a size x size grid
func NewSquareGrid(size int) Grid {
	return Grid{Width: size, Height: size}
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells in the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the middle cell, rounding down
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Game constants
const (
	GridSize        = 20                     // Cells per side
	CellSize        = 25                     // Pixels per cell
	TickInterval    = 150 * time.Millisecond // One snake step
	TargetFPS       = 60
	ScoreIncrement  = 10   // Points per food
	InitialLength   = 3    // Segments on round start
	MaxPending      = 2    // Queued direction changes
	MaxFoodAttempts = 1000 // Placement resampling bound
)
