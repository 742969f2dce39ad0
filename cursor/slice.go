package cursor

import "github.com/vladdou/rangekit/contract"

// SliceSequence adapts a slice to the Sequence interface. Its cursors are
// random-access and writable.
type SliceSequence[T any] struct {
	items []T
}

// FromSlice wraps items without copying them. Writes through Writable
// cursors are visible in the caller's slice.
func FromSlice[T any](items []T) *SliceSequence[T] {
	return &SliceSequence[T]{items: items}
}

func (s *SliceSequence[T]) Begin() Cursor[T] {
	return &sliceCursor[T]{seq: s}
}

func (s *SliceSequence[T]) End() Cursor[T] {
	return &sliceCursor[T]{seq: s, index: len(s.items)}
}

// Len returns the number of elements.
func (s *SliceSequence[T]) Len() int {
	return len(s.items)
}

type sliceCursor[T any] struct {
	seq   *SliceSequence[T]
	index int
}

func (c *sliceCursor[T]) Value() T {
	if c.index < 0 || c.index >= len(c.seq.items) {
		panic(contract.Precondition("Value", "cursor is out of range"))
	}
	return c.seq.items[c.index]
}

func (c *sliceCursor[T]) Set(v T) {
	if c.index < 0 || c.index >= len(c.seq.items) {
		panic(contract.Precondition("Set", "cursor is out of range"))
	}
	c.seq.items[c.index] = v
}

func (c *sliceCursor[T]) Next() {
	if c.index >= len(c.seq.items) {
		panic(contract.Precondition("Next", "cannot step past end"))
	}
	c.index++
}

func (c *sliceCursor[T]) Prev() {
	if c.index <= 0 {
		panic(contract.Precondition("Prev", "cannot step before begin"))
	}
	c.index--
}

func (c *sliceCursor[T]) Advance(n int) {
	next := c.index + n
	if next < 0 || next > len(c.seq.items) {
		panic(contract.Precondition("Advance", "offset leaves the sequence"))
	}
	c.index = next
}

func (c *sliceCursor[T]) DistanceTo(other Cursor[T]) int {
	return c.sibling(other, "DistanceTo").index - c.index
}

func (c *sliceCursor[T]) Equal(other Cursor[T]) bool {
	return c.sibling(other, "Equal").index == c.index
}

func (c *sliceCursor[T]) Clone() Cursor[T] {
	cp := *c
	return &cp
}

// sibling asserts that other marks a position in the same slice sequence.
func (c *sliceCursor[T]) sibling(other Cursor[T], op string) *sliceCursor[T] {
	o, ok := Base(other).(*sliceCursor[T])
	if !ok || o.seq != c.seq {
		panic(contract.Precondition(op, "cursors belong to different sequences"))
	}
	return o
}
