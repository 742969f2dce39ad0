package cursor

// ReadOnly returns a read-only view of c at the same position. The view
// keeps the capability tier of c but never implements Writable. The
// conversion is one-way: no adaptor restores write access. A cursor that
// carries no write access is returned unchanged.
func ReadOnly[T any](c Cursor[T]) Cursor[T] {
	if _, ok := c.(Writable[T]); !ok {
		return c
	}
	switch v := c.(type) {
	case RandomAccess[T]:
		return &roRandom[T]{roBidi[T]{roCursor[T]{inner: v}}}
	case Bidirectional[T]:
		return &roBidi[T]{roCursor[T]{inner: v}}
	default:
		return &roCursor[T]{inner: c}
	}
}

// ReadOnlySeq wraps s so that every cursor it produces is read-only.
func ReadOnlySeq[T any](s Sequence[T]) Sequence[T] {
	if _, ok := s.(*roSeq[T]); ok {
		return s
	}
	return &roSeq[T]{inner: s}
}

// Base returns the cursor beneath a read-only view, or c itself. It exists
// so that composite cursor implementations can compare positions across
// const-ness; the pierced view must not be used to recover write access.
func Base[T any](c Cursor[T]) Cursor[T] {
	switch v := c.(type) {
	case *roRandom[T]:
		return v.inner
	case *roBidi[T]:
		return v.inner
	case *roCursor[T]:
		return v.inner
	}
	return c
}

type roSeq[T any] struct {
	inner Sequence[T]
}

func (s *roSeq[T]) Begin() Cursor[T] { return ReadOnly(s.inner.Begin()) }
func (s *roSeq[T]) End() Cursor[T]   { return ReadOnly(s.inner.End()) }

type roCursor[T any] struct {
	inner Cursor[T]
}

func (c *roCursor[T]) Value() T { return c.inner.Value() }
func (c *roCursor[T]) Next()    { c.inner.Next() }

func (c *roCursor[T]) Equal(other Cursor[T]) bool {
	return c.inner.Equal(Base(other))
}

func (c *roCursor[T]) Clone() Cursor[T] {
	return ReadOnly(c.inner.Clone())
}

type roBidi[T any] struct {
	roCursor[T]
}

func (c *roBidi[T]) Prev() {
	c.inner.(Bidirectional[T]).Prev()
}

type roRandom[T any] struct {
	roBidi[T]
}

func (c *roRandom[T]) Advance(n int) {
	c.inner.(RandomAccess[T]).Advance(n)
}

func (c *roRandom[T]) DistanceTo(other Cursor[T]) int {
	return c.inner.(RandomAccess[T]).DistanceTo(Base(other))
}
