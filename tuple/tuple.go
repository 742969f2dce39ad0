package tuple

import "fmt"

// Pair is a 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair from its elements.
func MakePair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Values returns both elements.
func (p Pair[A, B]) Values() (A, B) {
	return p.First, p.Second
}

// String renders the pair as "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Triple is a 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// MakeTriple builds a Triple from its elements.
func MakeTriple[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{First: first, Second: second, Third: third}
}

// Values returns all three elements.
func (t Triple[A, B, C]) Values() (A, B, C) {
	return t.First, t.Second, t.Third
}

// String renders the triple as "(first, second, third)".
func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}
