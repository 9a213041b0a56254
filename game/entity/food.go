package entity

import "classic-snake/game/types"

// Food holds the active food cell. An empty Food means no free cell was
// left when it was last placed.
type Food struct {
	position types.Point
	placed   bool
}

// NewFood returns food at p.
func NewFood(p types.Point) *Food {
	return &Food{position: p, placed: true}
}

// Position returns the food cell, ok is false when the board is full.
func (f *Food) Position() (p types.Point, ok bool) {
	return f.position, f.placed
}

// Place moves the food to p.
func (f *Food) Place(p types.Point) {
	f.position = p
	f.placed = true
}

// Clear marks the food as absent.
func (f *Food) Clear() {
	f.position = types.Point{}
	f.placed = false
}

// At reports whether the food sits on p.
func (f *Food) At(p types.Point) bool {
	return f.placed && f.position == p
}
