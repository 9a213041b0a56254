package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// PlaceRandomly draws a cell uniformly among the grid cells not in
// occupied. ok is false when every cell is taken.
func (fm *FoodManager) PlaceRandomly(occupied types.PointSet) (p types.Point, ok bool) {
	free := fm.grid.Area()
	for c := range occupied {
		if fm.grid.Contains(c) {
			free--
		}
	}
	if free <= 0 {
		return types.Point{}, false
	}

	// Walk the grid row by row and stop on the k-th free cell.
	k := fm.rng.Intn(free)
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			c := types.Point{X: x, Y: y}
			if occupied.Has(c) {
				continue
			}
			if k == 0 {
				return c, true
			}
			k--
		}
	}
	return types.Point{}, false
}

// Spawn creates food on a free cell.
func (fm *FoodManager) Spawn(occupied types.PointSet) *entity.Food {
	food := &entity.Food{}
	fm.Respawn(food, occupied)
	return food
}

// Respawn moves food to a new free cell, or clears it when the board is full.
func (fm *FoodManager) Respawn(food *entity.Food, occupied types.PointSet) {
	p, ok := fm.PlaceRandomly(occupied)
	if !ok {
		glog.V(1).Infof("no free cell left for food, %d cells occupied", occupied.Len())
		food.Clear()
		return
	}
	glog.V(1).Infof("food placed at %v", p)
	food.Place(p)
}
