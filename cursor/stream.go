package cursor

import "github.com/vladdou/rangekit/contract"

// Source produces stream elements one at a time. ok is false once the
// source is exhausted.
type Source[T any] func() (T, bool)

// StreamSequence adapts a pull source to the Sequence interface. Its cursors
// are single-pass: traversal consumes the source, so calling Begin again
// resumes after everything already pulled instead of restarting from the
// first element.
type StreamSequence[T any] struct {
	src Source[T]
}

// FromFunc wraps a pull source.
func FromFunc[T any](src Source[T]) *StreamSequence[T] {
	return &StreamSequence[T]{src: src}
}

// FromChan wraps a channel. The stream ends when the channel is closed.
func FromChan[T any](ch <-chan T) *StreamSequence[T] {
	return FromFunc(func() (T, bool) {
		v, ok := <-ch
		return v, ok
	})
}

// Begin pulls the first unconsumed element from the source.
func (s *StreamSequence[T]) Begin() Cursor[T] {
	c := &streamCursor[T]{seq: s}
	c.pull()
	return c
}

func (s *StreamSequence[T]) End() Cursor[T] {
	return &streamCursor[T]{seq: s, done: true}
}

type streamCursor[T any] struct {
	seq  *StreamSequence[T]
	cur  T
	done bool
}

func (c *streamCursor[T]) pull() {
	v, ok := c.seq.src()
	c.cur = v
	c.done = !ok
}

func (c *streamCursor[T]) Value() T {
	if c.done {
		panic(contract.Precondition("Value", "cursor is at end"))
	}
	return c.cur
}

func (c *streamCursor[T]) Next() {
	if c.done {
		panic(contract.Precondition("Next", "cannot step past end"))
	}
	c.pull()
}

// Equal treats every exhausted cursor of a stream as the end position. Two
// live single-pass cursors are equal only if they are the same cursor.
func (c *streamCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := Base(other).(*streamCursor[T])
	if !ok || o.seq != c.seq {
		panic(contract.Precondition("Equal", "cursors belong to different sequences"))
	}
	if c.done || o.done {
		return c.done && o.done
	}
	return c == o
}

// Clone copies the buffered position. Both cursors keep pulling from the
// same source; single-pass discipline still applies.
func (c *streamCursor[T]) Clone() Cursor[T] {
	cp := *c
	return &cp
}
