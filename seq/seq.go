package seq

import (
	"github.com/vladdou/rangekit/contract"
	"github.com/vladdou/rangekit/cursor"
)

// Collect traverses s from Begin to End and returns every element in order.
func Collect[T any](s cursor.Sequence[T]) []T {
	var out []T
	end := s.End()
	for c := s.Begin(); !c.Equal(end); c.Next() {
		out = append(out, c.Value())
	}
	return out
}

// ForEach calls fn for every element in order.
func ForEach[T any](s cursor.Sequence[T], fn func(T)) {
	end := s.End()
	for c := s.Begin(); !c.Equal(end); c.Next() {
		fn(c.Value())
	}
}

// Count returns the number of elements between Begin and End.
func Count[T any](s cursor.Sequence[T]) int {
	return Distance(s.Begin(), s.End())
}

// Distance returns the signed number of steps from from to to. Random-access
// cursors answer in O(1); every other tier counts forward on a clone, so to
// must be reachable by stepping forward from from.
func Distance[T any](from, to cursor.Cursor[T]) int {
	if ra, ok := from.(cursor.RandomAccess[T]); ok {
		return ra.DistanceTo(to)
	}
	n := 0
	for c := from.Clone(); !c.Equal(to); c.Next() {
		n++
	}
	return n
}

// Next returns a clone of c stepped n positions forward.
func Next[T any](c cursor.Cursor[T], n int) cursor.Cursor[T] {
	out := c.Clone()
	for i := 0; i < n; i++ {
		out.Next()
	}
	return out
}

// Prev returns a clone of c stepped n positions backward. The cursor must
// be bidirectional.
func Prev[T any](c cursor.Cursor[T], n int) cursor.Cursor[T] {
	out, ok := c.Clone().(cursor.Bidirectional[T])
	if !ok {
		panic(contract.Capability("Prev", "cursor is not bidirectional"))
	}
	for i := 0; i < n; i++ {
		out.Prev()
	}
	return out
}
