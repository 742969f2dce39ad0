package zip

import (
	"github.com/vladdou/rangekit/contract"
	"github.com/vladdou/rangekit/cursor"
	"github.com/vladdou/rangekit/tuple"
)

// Collection2 presents two sequences as one sequence of pairs, stopping at
// the shorter input. It holds the sequences for its lifetime and never
// copies their elements.
type Collection2[A, B any] struct {
	first  cursor.Sequence[A]
	second cursor.Sequence[B]
}

// New2 zips two sequences.
func New2[A, B any](first cursor.Sequence[A], second cursor.Sequence[B]) *Collection2[A, B] {
	return &Collection2[A, B]{first: first, second: second}
}

// Base returns the underlying sequences.
func (z *Collection2[A, B]) Base() (cursor.Sequence[A], cursor.Sequence[B]) {
	return z.first, z.second
}

func (z *Collection2[A, B]) Begin() cursor.Cursor[tuple.Pair[A, B]] {
	return wrap2(&cursor2[A, B]{coll: z, a: z.first.Begin(), b: z.second.Begin()})
}

func (z *Collection2[A, B]) End() cursor.Cursor[tuple.Pair[A, B]] {
	return wrap2(&cursor2[A, B]{coll: z, a: z.first.End(), b: z.second.End()})
}

// NonEmpty reports whether at least one pair can be produced before any
// input is exhausted. It calls Begin, so over a single-pass stream input it
// consumes one element of that stream.
func (z *Collection2[A, B]) NonEmpty() bool {
	return !z.Begin().Equal(z.End())
}

// cursor2 is the forward-only core shared by every tier of the composite
// cursor.
type cursor2[A, B any] struct {
	coll *Collection2[A, B]
	a    cursor.Cursor[A]
	b    cursor.Cursor[B]
}

// wrap2 fixes the composite tier at construction: the weakest tier among
// the component cursors.
func wrap2[A, B any](c *cursor2[A, B]) cursor.Cursor[tuple.Pair[A, B]] {
	_, raA := c.a.(cursor.RandomAccess[A])
	_, raB := c.b.(cursor.RandomAccess[B])
	if raA && raB {
		return &random2[A, B]{bidi2[A, B]{c}}
	}
	_, bdA := c.a.(cursor.Bidirectional[A])
	_, bdB := c.b.(cursor.Bidirectional[B])
	if bdA && bdB {
		return &bidi2[A, B]{c}
	}
	return c
}

// core2 recovers the shared core from any composite tier.
func core2[A, B any](c cursor.Cursor[tuple.Pair[A, B]], op string) *cursor2[A, B] {
	switch v := cursor.Base(c).(type) {
	case *cursor2[A, B]:
		return v
	case *bidi2[A, B]:
		return v.cursor2
	case *random2[A, B]:
		return v.cursor2
	default:
		panic(contract.Precondition(op, "cursor does not belong to a zip collection"))
	}
}

// Value dereferences every component in index order.
func (c *cursor2[A, B]) Value() tuple.Pair[A, B] {
	return tuple.MakePair(c.a.Value(), c.b.Value())
}

// Equal reports whether any corresponding pair of component cursors is
// equal, so a cursor whose shortest component has run out compares equal to
// End no matter how much the other input has left.
func (c *cursor2[A, B]) Equal(other cursor.Cursor[tuple.Pair[A, B]]) bool {
	o := core2(other, "Equal")
	if o.coll != c.coll {
		panic(contract.Precondition("Equal", "cursors belong to different zip collections"))
	}
	return c.a.Equal(o.a) || c.b.Equal(o.b)
}

// Next steps every component forward by one, in index order.
func (c *cursor2[A, B]) Next() {
	if c.Equal(c.coll.End()) {
		panic(contract.Precondition("Next", "cannot step past end"))
	}
	c.a.Next()
	c.b.Next()
}

func (c *cursor2[A, B]) Clone() cursor.Cursor[tuple.Pair[A, B]] {
	return wrap2(&cursor2[A, B]{coll: c.coll, a: c.a.Clone(), b: c.b.Clone()})
}

// bidi2 is the composite tier when every component is at least
// bidirectional.
type bidi2[A, B any] struct {
	*cursor2[A, B]
}

// Prev steps every component backward by one, in index order.
func (c *bidi2[A, B]) Prev() {
	if c.Equal(c.coll.Begin()) {
		panic(contract.Precondition("Prev", "cannot step before begin"))
	}
	c.a.(cursor.Bidirectional[A]).Prev()
	c.b.(cursor.Bidirectional[B]).Prev()
}

// random2 is the composite tier when every component is random-access.
type random2[A, B any] struct {
	bidi2[A, B]
}

// Advance applies the same signed offset to every component. The components'
// absolute positions may differ; the relative displacement is identical.
func (c *random2[A, B]) Advance(n int) {
	c.a.(cursor.RandomAccess[A]).Advance(n)
	c.b.(cursor.RandomAccess[B]).Advance(n)
}

// DistanceTo folds the pairwise component distances: the minimum when the
// first component's distance is positive, the maximum otherwise. See the
// package doc for the provenance of the first-component sign rule.
func (c *random2[A, B]) DistanceTo(other cursor.Cursor[tuple.Pair[A, B]]) int {
	o := core2(other, "DistanceTo")
	if o.coll != c.coll {
		panic(contract.Precondition("DistanceTo", "cursors belong to different zip collections"))
	}
	da := c.a.(cursor.RandomAccess[A]).DistanceTo(o.a)
	db := c.b.(cursor.RandomAccess[B]).DistanceTo(o.b)
	if da > 0 {
		return min(da, db)
	}
	return max(da, db)
}
