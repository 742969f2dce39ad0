package cursor

import "github.com/vladdou/rangekit/contract"

// AdvanceBounded moves c toward bound by up to n signed steps, never
// crossing bound even when |n| exceeds the remaining distance, and returns
// the portion of n that could not be consumed. The leftover has the same
// sign as n and magnitude at most |n|; zero means fully consumed.
//
// The algorithm is selected by the capability tier of c: random-access
// cursors move in O(1), every other tier steps one position at a time and
// tests against the bound. Requesting backward movement on a cursor without
// the Bidirectional capability is a contract violation. n == 0 is a no-op
// for every tier.
func AdvanceBounded[T any](c Cursor[T], n int, bound Cursor[T]) int {
	if n == 0 {
		return 0
	}
	if ra, ok := c.(RandomAccess[T]); ok {
		if n > 0 {
			return forwardRandom(ra, n, bound)
		}
		return backwardRandom(ra, n, bound)
	}
	if n > 0 {
		return forwardStep(c, n, bound)
	}
	bd, ok := c.(Bidirectional[T])
	if !ok {
		panic(contract.Capability("AdvanceBounded",
			"backward movement requires a bidirectional cursor"))
	}
	return backwardStep(bd, n, bound)
}

// forwardStep is the O(n) path: the cursor can only be stepped and compared
// against the bound.
func forwardStep[T any](c Cursor[T], n int, end Cursor[T]) int {
	for n > 0 && !c.Equal(end) {
		c.Next()
		n--
	}
	return n
}

// forwardRandom measures the room ahead in O(1) and either jumps the whole
// offset or clamps at the bound.
func forwardRandom[T any](c RandomAccess[T], n int, end Cursor[T]) int {
	room := c.DistanceTo(end)
	if room < n {
		c.Advance(room)
		return n - room
	}
	c.Advance(n)
	return 0
}

func backwardStep[T any](c Bidirectional[T], n int, begin Cursor[T]) int {
	for n < 0 && !c.Equal(begin) {
		c.Prev()
		n++
	}
	return n
}

// backwardRandom mirrors forwardRandom with a zero-or-negative room.
func backwardRandom[T any](c RandomAccess[T], n int, begin Cursor[T]) int {
	room := c.DistanceTo(begin)
	if n < room {
		c.Advance(room)
		return n - room
	}
	c.Advance(n)
	return 0
}
