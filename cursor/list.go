package cursor

import (
	list "github.com/bahlo/generic-list-go"

	"github.com/vladdou/rangekit/contract"
)

// ListSequence adapts a doubly-linked list to the Sequence interface. Its
// cursors are bidirectional and writable but not random-access: there is no
// O(1) jump or distance over list elements.
type ListSequence[T any] struct {
	l *list.List[T]
}

// FromList wraps an existing list without copying it.
func FromList[T any](l *list.List[T]) *ListSequence[T] {
	return &ListSequence[T]{l: l}
}

// NewList builds a list sequence from items.
func NewList[T any](items ...T) *ListSequence[T] {
	l := list.New[T]()
	for _, v := range items {
		l.PushBack(v)
	}
	return &ListSequence[T]{l: l}
}

func (s *ListSequence[T]) Begin() Cursor[T] {
	return &listCursor[T]{seq: s, el: s.l.Front()}
}

func (s *ListSequence[T]) End() Cursor[T] {
	return &listCursor[T]{seq: s}
}

// Len returns the number of elements.
func (s *ListSequence[T]) Len() int {
	return s.l.Len()
}

// listCursor points at a list element; a nil element marks the end position.
type listCursor[T any] struct {
	seq *ListSequence[T]
	el  *list.Element[T]
}

func (c *listCursor[T]) Value() T {
	if c.el == nil {
		panic(contract.Precondition("Value", "cursor is at end"))
	}
	return c.el.Value
}

func (c *listCursor[T]) Set(v T) {
	if c.el == nil {
		panic(contract.Precondition("Set", "cursor is at end"))
	}
	c.el.Value = v
}

func (c *listCursor[T]) Next() {
	if c.el == nil {
		panic(contract.Precondition("Next", "cannot step past end"))
	}
	c.el = c.el.Next()
}

func (c *listCursor[T]) Prev() {
	if c.el == nil {
		back := c.seq.l.Back()
		if back == nil {
			panic(contract.Precondition("Prev", "cannot step before begin"))
		}
		c.el = back
		return
	}
	prev := c.el.Prev()
	if prev == nil {
		panic(contract.Precondition("Prev", "cannot step before begin"))
	}
	c.el = prev
}

func (c *listCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := Base(other).(*listCursor[T])
	if !ok || o.seq != c.seq {
		panic(contract.Precondition("Equal", "cursors belong to different sequences"))
	}
	return o.el == c.el
}

func (c *listCursor[T]) Clone() Cursor[T] {
	cp := *c
	return &cp
}
