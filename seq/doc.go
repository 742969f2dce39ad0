// Package seq provides terminals and small helpers over cursor sequences.
//
// Terminals traverse a Sequence from Begin to End and are the usual way to
// consume one:
//
//	s := cursor.FromSlice([]int{1, 2, 3})
//	all := seq.Collect[int](s)            // [1 2 3]
//	n := seq.Count[int](s)                // 3
//	seq.ForEach[int](s, func(v int) { … })
//
// Distance, Next, and Prev operate on cursors directly. Distance answers in
// O(1) for random-access cursors and counts by stepping a clone otherwise.
// On single-pass stream sequences every terminal consumes the source.
package seq
