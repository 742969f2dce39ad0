// Package zip composes independent sequences into one sequence of tuples,
// stopping at the shortest input.
//
// New2 and New3 build collections that implement cursor.Sequence over
// tuple.Pair and tuple.Triple, so zipped sequences feed every algorithm that
// consumes sequences, including cursor.AdvanceBounded, the seq terminals,
// and further zips.
//
//	z := zip.New2(cursor.FromSlice([]int{1, 2, 3}), cursor.FromSlice([]string{"a", "b"}))
//	seq.Collect[tuple.Pair[int, string]](z) // [(1, a) (2, b)]
//
// The composite cursor's capability tier is the weakest tier among its
// components: the zip is bidirectional only if every input is, and
// random-access only if every input is. The tier is fixed when Begin or End
// constructs the cursor.
//
// Two zip cursors compare equal when any corresponding pair of component
// cursors is equal. With inputs of different lengths this makes a cursor
// whose shortest component is exhausted compare equal to End immediately,
// regardless of how much the other inputs have left.
//
// Distance between two zip cursors folds the pairwise component distances:
// when the first component's distance is positive the result is the minimum,
// otherwise the maximum. Deciding the fold from the first component's sign
// alone is inherited behavior; for cursors whose components have drifted to
// mixed-sign distances it is kept as-is rather than second-guessed.
package zip
