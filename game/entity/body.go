package entity

import "classic-snake/game/types"

// body is a ring-buffer deque of cells, front is the head.
type body struct {
	buf   []types.Point
	front int // index of the head in buf
	n     int
}

func newBody(capacity int) *body {
	if capacity < 4 {
		capacity = 4
	}
	return &body{buf: make([]types.Point, capacity)}
}

func (b *body) Len() int {
	return b.n
}

// At returns the i-th cell counted from the head.
func (b *body) At(i int) types.Point {
	return b.buf[(b.front+i)%len(b.buf)]
}

func (b *body) PushFront(p types.Point) {
	if b.n == len(b.buf) {
		b.grow()
	}
	b.front = (b.front - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.front] = p
	b.n++
}

// PopBack removes and returns the tail. The deque must not be empty.
func (b *body) PopBack() types.Point {
	i := (b.front + b.n - 1) % len(b.buf)
	p := b.buf[i]
	b.n--
	return p
}

// Slice copies the cells in head-to-tail order.
func (b *body) Slice() []types.Point {
	out := make([]types.Point, b.n)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

func (b *body) grow() {
	buf := make([]types.Point, len(b.buf)*2)
	for i := 0; i < b.n; i++ {
		buf[i] = b.At(i)
	}
	b.buf = buf
	b.front = 0
}
