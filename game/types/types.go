package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the half-open extents
// [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area returns the number of cells in the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Center returns the cell the snake starts on.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Game constants
const (
	DefaultCols     = 30 // 600px window / 20px cells
	DefaultRows     = 20 // 400px window / 20px cells
	DefaultCellSize = 20 // Pixels per cell, rendering only
	DefaultTickRate = 10 // Snake moves per second
	MaxScores       = 50 // Finished runs kept in the session history
)
