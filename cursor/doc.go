// Package cursor defines the capability-tiered position-marker model and the
// bounded advance algorithm built on it.
//
// A Cursor supports dereference, forward stepping, and position comparison;
// that minimal surface is the single-pass tier. Cursor types opt into richer
// tiers by implementing the extension interfaces: Bidirectional adds backward
// stepping, RandomAccess adds O(1) jumps and distance measurement, Writable
// adds assignment through the cursor. Algorithms upgrade by optional
// interface assertion, so a random-access cursor keeps its O(1) cost paths.
//
// Three sequence adaptors cover the tiers:
//
//   - FromSlice: random-access, writable cursors over a slice
//   - FromList, NewList: bidirectional cursors over a doubly-linked list
//   - FromFunc, FromChan: single-pass cursors over a consuming stream
//
// AdvanceBounded moves a cursor toward a bound by up to n signed steps
// without crossing it and reports the unconsumed remainder:
//
//	s := cursor.FromSlice([]int{1, 2, 3})
//	c := s.Begin()
//	left := cursor.AdvanceBounded(c, 5, s.End()) // left == 2, c at end
//
// ReadOnly and ReadOnlySeq produce read-only views: same position, same
// capability tier, no Writable. The conversion is one-way.
//
// Contract violations (stepping past a bound, moving a single-pass cursor
// backward, comparing cursors of unrelated sequences) panic with a
// contract.Violation; they are caller bugs, not recoverable errors.
package cursor
