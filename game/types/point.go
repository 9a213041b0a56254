package types

import "fmt"

// Point is a (column, row) cell on the grid.
type Point struct {
	X, Y int
}

// Add returns the vector sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// PointSet is an unordered set of cells.
type PointSet map[Point]struct{}

// Has reports whether p is in the set.
func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of cells in the set.
func (s PointSet) Len() int {
	return len(s)
}
