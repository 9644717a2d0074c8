package manager

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"classic-snake/game/types"
	"classic-snake/logging"
)

// ErrNoFreeCell is returned when placement gives up before finding an empty cell
var ErrNoFreeCell = errors.New("no free cell for food")

// RandomSource picks integers in [0, n)
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a seeded source. A zero seed uses the clock.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

type FoodManager struct {
	grid     types.Grid
	rng      RandomSource
	food     types.Point
	present  bool
	attempts int
}

func NewFoodManager(grid types.Grid, rng RandomSource) *FoodManager {
	if rng == nil {
		rng = NewRandomSource(0)
	}
	return &FoodManager{
		grid:     grid,
		rng:      rng,
		attempts: types.MaxFoodAttempts,
	}
}

// Place drops food on a random cell outside occupied. After
// MaxFoodAttempts misses the food is left absent and ErrNoFreeCell returned.
func (fm *FoodManager) Place(occupied map[types.Point]struct{}) error {
	fm.present = false

	for i := 0; i < fm.attempts; i++ {
		candidate := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if _, taken := occupied[candidate]; taken {
			continue
		}
		fm.food = candidate
		fm.present = true
		logging.Logger().Debug("food placed", "x", candidate.X, "y", candidate.Y, "attempts", i+1)
		return nil
	}

	logging.Logger().Warn("food placement exhausted, grid may be full",
		"attempts", fm.attempts, "occupied", len(occupied), "cells", fm.grid.Cells())
	return ErrNoFreeCell
}

// IsAt reports whether food sits on p
func (fm *FoodManager) IsAt(p types.Point) bool {
	return fm.present && fm.food == p
}

// Position returns the food cell and whether food is present
func (fm *FoodManager) Position() (types.Point, bool) {
	return fm.food, fm.present
}

// Clear removes the food
func (fm *FoodManager) Clear() {
	fm.present = false
}
