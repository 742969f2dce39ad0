package observe

import (
	"github.com/vladdou/rangekit/cursor"
)

// stepHook is called after each completed cursor movement with the
// operation name and the number of positions moved. The count is always
// non-negative; backward movement reports its magnitude.
type stepHook func(op string, n int64)

// traversal carries per-traversal observation state, shared by a cursor and
// its clones.
type traversal[T any] struct {
	step  stepHook
	onEnd func()           // fired once, the first time the cursor rests on end
	end   cursor.Cursor[T] // bound for the onEnd check; set when onEnd is
	ended bool
}

func (tr *traversal[T]) note(op string, n int64, at cursor.Cursor[T]) {
	if tr == nil {
		return
	}
	if tr.step != nil {
		tr.step(op, n)
	}
	tr.check(at)
}

func (tr *traversal[T]) check(at cursor.Cursor[T]) {
	if tr == nil || tr.onEnd == nil || tr.ended {
		return
	}
	if at.Equal(tr.end) {
		tr.ended = true
		tr.onEnd()
	}
}

// observedSeq decorates a sequence. onBegin runs once per Begin call and
// builds the traversal state its cursors report to; End cursors carry none.
type observedSeq[T any] struct {
	inner   cursor.Sequence[T]
	onBegin func() *traversal[T]
}

func (s *observedSeq[T]) Begin() cursor.Cursor[T] {
	c := s.inner.Begin()
	tr := s.onBegin()
	tr.check(c) // an empty sequence starts at end
	return wrapCursor(c, tr)
}

func (s *observedSeq[T]) End() cursor.Cursor[T] {
	return wrapCursor(s.inner.End(), nil)
}

// wrapCursor picks the decorator matching the capability tier of c.
func wrapCursor[T any](c cursor.Cursor[T], tr *traversal[T]) cursor.Cursor[T] {
	switch c.(type) {
	case cursor.RandomAccess[T]:
		return &obsRandom[T]{obsBidi[T]{obsCursor[T]{inner: c, tr: tr}}}
	case cursor.Bidirectional[T]:
		return &obsBidi[T]{obsCursor[T]{inner: c, tr: tr}}
	default:
		return &obsCursor[T]{inner: c, tr: tr}
	}
}

// peel returns the cursor beneath an observe decorator, or c itself.
func peel[T any](c cursor.Cursor[T]) cursor.Cursor[T] {
	switch v := c.(type) {
	case *obsRandom[T]:
		return v.inner
	case *obsBidi[T]:
		return v.inner
	case *obsCursor[T]:
		return v.inner
	}
	return c
}

type obsCursor[T any] struct {
	inner cursor.Cursor[T]
	tr    *traversal[T]
}

func (c *obsCursor[T]) Value() T {
	return c.inner.Value()
}

func (c *obsCursor[T]) Next() {
	c.inner.Next()
	c.tr.note("next", 1, c.inner)
}

func (c *obsCursor[T]) Equal(other cursor.Cursor[T]) bool {
	return c.inner.Equal(peel(other))
}

// Clone shares the traversal state, so steps of the clone count toward the
// same traversal.
func (c *obsCursor[T]) Clone() cursor.Cursor[T] {
	return wrapCursor(c.inner.Clone(), c.tr)
}

type obsBidi[T any] struct {
	obsCursor[T]
}

func (c *obsBidi[T]) Prev() {
	c.inner.(cursor.Bidirectional[T]).Prev()
	c.tr.note("prev", 1, c.inner)
}

type obsRandom[T any] struct {
	obsBidi[T]
}

func (c *obsRandom[T]) Advance(n int) {
	c.inner.(cursor.RandomAccess[T]).Advance(n)
	// step counters are monotonic; record the magnitude of the jump
	steps := int64(n)
	if steps < 0 {
		steps = -steps
	}
	c.tr.note("advance", steps, c.inner)
}

func (c *obsRandom[T]) DistanceTo(other cursor.Cursor[T]) int {
	return c.inner.(cursor.RandomAccess[T]).DistanceTo(peel(other))
}
