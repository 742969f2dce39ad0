// Package tuple provides fixed-arity product types.
//
// Pair and Triple are plain value types used as the element type of zipped
// sequences. Arity is resolved at compile time; there is no variadic tuple.
package tuple
