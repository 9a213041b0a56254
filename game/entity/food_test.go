package entity

import "testing"

func TestFoodPlaceAndClear(t *testing.T) {
	f := NewFood(pt(2, 3))
	if p, ok := f.Position(); !ok || p != pt(2, 3) {
		t.Fatalf("Position() = (%v, %v), want ((2,3), true)", p, ok)
	}
	if !f.At(pt(2, 3)) || f.At(pt(3, 2)) {
		t.Error("At does not match the placed cell")
	}

	f.Clear()
	if _, ok := f.Position(); ok {
		t.Error("cleared food still has a position")
	}
	// A cleared food must not match any cell, the origin included.
	if f.At(pt(0, 0)) {
		t.Error("cleared food matched the origin")
	}

	f.Place(pt(0, 0))
	if !f.At(pt(0, 0)) {
		t.Error("food placed on the origin not found")
	}
}
