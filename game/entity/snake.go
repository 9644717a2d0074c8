package entity

import (
	"classic-snake/game/types"
)

// Snake is the player's snake. Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Point
	pending   []types.Point
	growing   bool
}

// NewSnake returns a snake already reset for the given grid
func NewSnake(grid types.Grid) *Snake {
	s := &Snake{}
	s.Reset(grid)
	return s
}

// Reset places the snake horizontally at the grid centre, heading right
func (s *Snake) Reset(grid types.Grid) {
	center := grid.Center()
	s.Body = make([]types.Point, 0, types.InitialLength)
	for i := 0; i < types.InitialLength; i++ {
		s.Body = append(s.Body, types.Point{X: center.X - i, Y: center.Y})
	}
	s.Direction = types.Right
	s.pending = s.pending[:0]
	s.growing = false
}

// QueueDirection buffers a direction change for a later Step.
// Reversals of the applied direction and overflow are dropped.
func (s *Snake) QueueDirection(dir types.Point) bool {
	if !types.IsDirection(dir) {
		return false
	}
	if dir == s.Direction.Reverse() {
		return false
	}
	if len(s.pending) >= types.MaxPending {
		return false
	}
	s.pending = append(s.pending, dir)
	return true
}

// Step applies the oldest pending direction and advances one cell.
// It returns the new head.
func (s *Snake) Step() types.Point {
	if len(s.pending) > 0 {
		s.Direction = s.pending[0]
		s.pending = append(s.pending[:0], s.pending[1:]...)
	}

	newHead := s.GetHead().Add(s.Direction)
	s.Move(newHead)

	if s.growing {
		s.growing = false
	} else {
		s.RemoveTail()
	}
	return newHead
}

// NextHead returns where the head lands on the next Step, without moving
func (s *Snake) NextHead() types.Point {
	dir := s.Direction
	if len(s.pending) > 0 {
		dir = s.pending[0]
	}
	return s.GetHead().Add(dir)
}

// Move prepends a new head
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveTail drops the last segment
func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Grow makes the next Step keep its tail
func (s *Snake) Grow() {
	s.growing = true
}

// IsGrowing reports whether the next Step keeps the tail
func (s *Snake) IsGrowing() bool {
	return s.growing
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}

// Pending returns a copy of the queued directions, oldest first
func (s *Snake) Pending() []types.Point {
	queued := make([]types.Point, len(s.pending))
	copy(queued, s.pending)
	return queued
}

// Occupies reports whether any segment is on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Occupied returns the set of cells covered by the body
func (s *Snake) Occupied() map[types.Point]struct{} {
	cells := make(map[types.Point]struct{}, len(s.Body))
	for _, part := range s.Body {
		cells[part] = struct{}{}
	}
	return cells
}
