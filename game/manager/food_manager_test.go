package manager

import (
	"testing"

	"classic-snake/game/entity"
	"classic-snake/game/types"

	"golang.org/x/exp/rand"
)

func newTestFoodManager(w, h int, seed uint64) *FoodManager {
	return NewFoodManager(types.Grid{Width: w, Height: h}, rand.New(rand.NewSource(seed)))
}

// allCellsExcept returns every cell of a w x h grid but the ones listed.
func allCellsExcept(w, h int, free ...types.Point) types.PointSet {
	set := make(types.PointSet, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			set[types.Point{X: x, Y: y}] = struct{}{}
		}
	}
	for _, p := range free {
		delete(set, p)
	}
	return set
}

func TestPlaceRandomlySingleFreeCell(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		fm := newTestFoodManager(30, 20, seed)
		p, ok := fm.PlaceRandomly(allCellsExcept(30, 20, types.Point{X: 2, Y: 2}))
		if !ok || p != (types.Point{X: 2, Y: 2}) {
			t.Fatalf("seed %d: PlaceRandomly = (%v, %v), want ((2,2), true)", seed, p, ok)
		}
	}
}

func TestPlaceRandomlyFullGrid(t *testing.T) {
	fm := newTestFoodManager(30, 20, 1)
	if p, ok := fm.PlaceRandomly(allCellsExcept(30, 20)); ok {
		t.Fatalf("full grid returned %v", p)
	}
}

func TestPlaceRandomlyIgnoresOffGridCells(t *testing.T) {
	fm := newTestFoodManager(2, 1, 1)
	occupied := types.PointSet{
		{X: 0, Y: 0}:  {},
		{X: -1, Y: 0}: {}, // Head that ran into a wall
	}
	p, ok := fm.PlaceRandomly(occupied)
	if !ok || p != (types.Point{X: 1, Y: 0}) {
		t.Fatalf("PlaceRandomly = (%v, %v), want ((1,0), true)", p, ok)
	}
}

func TestPlaceRandomlyNeverOnOccupied(t *testing.T) {
	fm := newTestFoodManager(8, 6, 42)
	occupied := types.PointSet{}
	for x := 0; x < 8; x++ {
		occupied[types.Point{X: x, Y: 2}] = struct{}{}
	}
	for i := 0; i < 500; i++ {
		p, ok := fm.PlaceRandomly(occupied)
		if !ok {
			t.Fatal("free cells exist but none was returned")
		}
		if occupied.Has(p) {
			t.Fatalf("food placed on occupied cell %v", p)
		}
		if p.X < 0 || p.X >= 8 || p.Y < 0 || p.Y >= 6 {
			t.Fatalf("food placed off grid at %v", p)
		}
	}
}

func TestPlaceRandomlyIsUniform(t *testing.T) {
	fm := newTestFoodManager(3, 3, 7)
	occupied := types.PointSet{{X: 1, Y: 1}: {}, {X: 0, Y: 0}: {}}

	const draws = 14000 // 2000 per free cell
	counts := map[types.Point]int{}
	for i := 0; i < draws; i++ {
		p, _ := fm.PlaceRandomly(occupied)
		counts[p]++
	}
	if len(counts) != 7 {
		t.Fatalf("hit %d distinct cells, want 7: %v", len(counts), counts)
	}
	for p, n := range counts {
		if n < 1700 || n > 2300 {
			t.Errorf("cell %v drawn %d times, expected about 2000", p, n)
		}
	}
}

func TestRespawn(t *testing.T) {
	fm := newTestFoodManager(2, 1, 3)

	food := fm.Spawn(types.PointSet{{X: 0, Y: 0}: {}})
	if p, ok := food.Position(); !ok || p != (types.Point{X: 1, Y: 0}) {
		t.Fatalf("Spawn placed food at (%v, %v)", p, ok)
	}

	fm.Respawn(food, allCellsExcept(2, 1))
	if _, ok := food.Position(); ok {
		t.Error("respawn on a full board should clear the food")
	}

	fm.Respawn(food, types.PointSet{{X: 1, Y: 0}: {}})
	if !food.At(types.Point{X: 0, Y: 0}) {
		t.Error("food should come back once a cell frees up")
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	a := newTestFoodManager(30, 20, 12345)
	b := newTestFoodManager(30, 20, 12345)
	snake := entity.NewSnake(types.Point{X: 15, Y: 10})
	for i := 0; i < 20; i++ {
		pa, _ := a.PlaceRandomly(snake.OccupiedCells())
		pb, _ := b.PlaceRandomly(snake.OccupiedCells())
		if pa != pb {
			t.Fatalf("draw %d differs: %v vs %v", i, pa, pb)
		}
	}
}
