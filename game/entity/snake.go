package entity

import "classic-snake/game/types"

// Snake owns an ordered body (head first), the direction it is committed
// to, the direction requested for the next tick and its growth credit.
type Snake struct {
	body      *body
	occupancy map[types.Point]int // cell -> number of segments on it
	direction types.Direction
	pending   types.Direction
	growth    int
}

// NewSnake creates a one-cell snake heading right.
func NewSnake(startPos types.Point) *Snake {
	return NewSnakeWithBody(types.Right, startPos)
}

// NewSnakeWithBody creates a snake from cells listed head first.
func NewSnakeWithBody(dir types.Direction, cells ...types.Point) *Snake {
	s := &Snake{
		body:      newBody(len(cells) * 2),
		occupancy: make(map[types.Point]int, len(cells)),
		direction: dir,
		pending:   dir,
	}
	for i := len(cells) - 1; i >= 0; i-- {
		s.pushHead(cells[i])
	}
	return s
}

// SetDirection records d for the next tick. A reversal of the committed
// direction is ignored while the snake is longer than one cell.
func (s *Snake) SetDirection(d types.Direction) bool {
	if d == types.None {
		return false
	}
	if s.body.Len() > 1 && d == s.direction.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Advance moves the snake one cell. The new head is inserted before the
// tail is dropped, so collision checks must run after Advance returns.
func (s *Snake) Advance() {
	s.direction = s.pending
	s.pushHead(s.Head().Add(s.direction.ToPoint()))

	if s.growth > 0 {
		s.growth--
		return
	}
	s.removeTail()
}

// Grow adds n ticks of growth credit.
func (s *Snake) Grow(n int) {
	if n <= 0 {
		return
	}
	s.growth += n
}

// CollidesWithSelf reports whether the head shares a cell with any other
// segment.
func (s *Snake) CollidesWithSelf() bool {
	return s.occupancy[s.Head()] > 1
}

// OccupiedCells returns the body as an unordered set.
func (s *Snake) OccupiedCells() types.PointSet {
	set := make(types.PointSet, len(s.occupancy))
	for p := range s.occupancy {
		set[p] = struct{}{}
	}
	return set
}

func (s *Snake) Head() types.Point {
	return s.body.At(0)
}

func (s *Snake) Len() int {
	return s.body.Len()
}

// Body returns a copy of the cells, head first.
func (s *Snake) Body() []types.Point {
	return s.body.Slice()
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

func (s *Snake) PendingDirection() types.Direction {
	return s.pending
}

func (s *Snake) GrowthCredit() int {
	return s.growth
}

func (s *Snake) pushHead(p types.Point) {
	s.body.PushFront(p)
	s.occupancy[p]++
}

func (s *Snake) removeTail() {
	p := s.body.PopBack()
	if s.occupancy[p] <= 1 {
		delete(s.occupancy, p)
		return
	}
	s.occupancy[p]--
}
