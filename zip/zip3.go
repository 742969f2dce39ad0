package zip

import (
	"github.com/vladdou/rangekit/contract"
	"github.com/vladdou/rangekit/cursor"
	"github.com/vladdou/rangekit/tuple"
)

// Collection3 presents three sequences as one sequence of triples, stopping
// at the shortest input.
type Collection3[A, B, C any] struct {
	first  cursor.Sequence[A]
	second cursor.Sequence[B]
	third  cursor.Sequence[C]
}

// New3 zips three sequences.
func New3[A, B, C any](first cursor.Sequence[A], second cursor.Sequence[B], third cursor.Sequence[C]) *Collection3[A, B, C] {
	return &Collection3[A, B, C]{first: first, second: second, third: third}
}

// Base returns the underlying sequences.
func (z *Collection3[A, B, C]) Base() (cursor.Sequence[A], cursor.Sequence[B], cursor.Sequence[C]) {
	return z.first, z.second, z.third
}

func (z *Collection3[A, B, C]) Begin() cursor.Cursor[tuple.Triple[A, B, C]] {
	return wrap3(&cursor3[A, B, C]{
		coll: z, a: z.first.Begin(), b: z.second.Begin(), c: z.third.Begin(),
	})
}

func (z *Collection3[A, B, C]) End() cursor.Cursor[tuple.Triple[A, B, C]] {
	return wrap3(&cursor3[A, B, C]{
		coll: z, a: z.first.End(), b: z.second.End(), c: z.third.End(),
	})
}

// NonEmpty reports whether at least one triple can be produced before any
// input is exhausted. It calls Begin, so over a single-pass stream input it
// consumes one element of that stream.
func (z *Collection3[A, B, C]) NonEmpty() bool {
	return !z.Begin().Equal(z.End())
}

type cursor3[A, B, C any] struct {
	coll *Collection3[A, B, C]
	a    cursor.Cursor[A]
	b    cursor.Cursor[B]
	c    cursor.Cursor[C]
}

func wrap3[A, B, C any](c *cursor3[A, B, C]) cursor.Cursor[tuple.Triple[A, B, C]] {
	_, raA := c.a.(cursor.RandomAccess[A])
	_, raB := c.b.(cursor.RandomAccess[B])
	_, raC := c.c.(cursor.RandomAccess[C])
	if raA && raB && raC {
		return &random3[A, B, C]{bidi3[A, B, C]{c}}
	}
	_, bdA := c.a.(cursor.Bidirectional[A])
	_, bdB := c.b.(cursor.Bidirectional[B])
	_, bdC := c.c.(cursor.Bidirectional[C])
	if bdA && bdB && bdC {
		return &bidi3[A, B, C]{c}
	}
	return c
}

func core3[A, B, C any](c cursor.Cursor[tuple.Triple[A, B, C]], op string) *cursor3[A, B, C] {
	switch v := cursor.Base(c).(type) {
	case *cursor3[A, B, C]:
		return v
	case *bidi3[A, B, C]:
		return v.cursor3
	case *random3[A, B, C]:
		return v.cursor3
	default:
		panic(contract.Precondition(op, "cursor does not belong to a zip collection"))
	}
}

func (c *cursor3[A, B, C]) Value() tuple.Triple[A, B, C] {
	return tuple.MakeTriple(c.a.Value(), c.b.Value(), c.c.Value())
}

func (c *cursor3[A, B, C]) Equal(other cursor.Cursor[tuple.Triple[A, B, C]]) bool {
	o := core3(other, "Equal")
	if o.coll != c.coll {
		panic(contract.Precondition("Equal", "cursors belong to different zip collections"))
	}
	return c.a.Equal(o.a) || c.b.Equal(o.b) || c.c.Equal(o.c)
}

func (c *cursor3[A, B, C]) Next() {
	if c.Equal(c.coll.End()) {
		panic(contract.Precondition("Next", "cannot step past end"))
	}
	c.a.Next()
	c.b.Next()
	c.c.Next()
}

func (c *cursor3[A, B, C]) Clone() cursor.Cursor[tuple.Triple[A, B, C]] {
	return wrap3(&cursor3[A, B, C]{
		coll: c.coll, a: c.a.Clone(), b: c.b.Clone(), c: c.c.Clone(),
	})
}

type bidi3[A, B, C any] struct {
	*cursor3[A, B, C]
}

func (c *bidi3[A, B, C]) Prev() {
	if c.Equal(c.coll.Begin()) {
		panic(contract.Precondition("Prev", "cannot step before begin"))
	}
	c.a.(cursor.Bidirectional[A]).Prev()
	c.b.(cursor.Bidirectional[B]).Prev()
	c.c.(cursor.Bidirectional[C]).Prev()
}

type random3[A, B, C any] struct {
	bidi3[A, B, C]
}

func (c *random3[A, B, C]) Advance(n int) {
	c.a.(cursor.RandomAccess[A]).Advance(n)
	c.b.(cursor.RandomAccess[B]).Advance(n)
	c.c.(cursor.RandomAccess[C]).Advance(n)
}

func (c *random3[A, B, C]) DistanceTo(other cursor.Cursor[tuple.Triple[A, B, C]]) int {
	o := core3(other, "DistanceTo")
	if o.coll != c.coll {
		panic(contract.Precondition("DistanceTo", "cursors belong to different zip collections"))
	}
	da := c.a.(cursor.RandomAccess[A]).DistanceTo(o.a)
	db := c.b.(cursor.RandomAccess[B]).DistanceTo(o.b)
	dc := c.c.(cursor.RandomAccess[C]).DistanceTo(o.c)
	if da > 0 {
		return min(da, min(db, dc))
	}
	return max(da, max(db, dc))
}
