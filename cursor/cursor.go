package cursor

// Cursor is the minimal traversal capability: dereference, forward stepping,
// and position comparison. A type implementing nothing beyond this interface
// is single-pass.
//
// Cursors are position markers only. Clone duplicates position state; the
// underlying sequence is never copied. Structural mutation of the sequence
// invalidates live cursors over it.
type Cursor[T any] interface {
	// Value returns the element at the current position.
	Value() T
	// Next steps one position forward. Stepping past the sequence end is
	// a contract violation.
	Next()
	// Equal reports whether both cursors sit at the same position of the
	// same sequence. Comparing cursors from unrelated sequences is a
	// contract violation.
	Equal(other Cursor[T]) bool
	// Clone returns an independent copy of the position.
	Clone() Cursor[T]
}

// Bidirectional is the capability upgrade for cursors that can also step
// backward.
type Bidirectional[T any] interface {
	Cursor[T]
	// Prev steps one position backward. Stepping before begin is a
	// contract violation.
	Prev()
}

// RandomAccess is the capability upgrade for cursors that can jump by an
// arbitrary signed offset and measure distance in O(1).
type RandomAccess[T any] interface {
	Bidirectional[T]
	// Advance moves the cursor by n positions; negative n moves backward.
	// An offset that leaves the sequence is a contract violation.
	Advance(n int)
	// DistanceTo returns the signed number of steps from this cursor to
	// other.
	DistanceTo(other Cursor[T]) int
}

// Writable is the capability upgrade for cursors that can assign through
// the current position. ReadOnly strips it; nothing restores it.
type Writable[T any] interface {
	Cursor[T]
	// Set replaces the element at the current position.
	Set(v T)
}

// Sequence produces cursors over an ordered collection. Begin and End may
// be called repeatedly; for single-pass stream sequences a restarted
// traversal resumes after the elements already consumed rather than from
// the start.
type Sequence[T any] interface {
	Begin() Cursor[T]
	End() Cursor[T]
}
