package cursor

import (
	"testing"

	"github.com/vladdou/rangekit/contract"
)

func TestSlice_Traversal(t *testing.T) {
	s := FromSlice([]string{"a", "b", "c"})
	var got []string
	end := s.End()
	for c := s.Begin(); !c.Equal(end); c.Next() {
		got = append(got, c.Value())
	}
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("got %v, want [a b c]", got)
	}
}

func TestSlice_EmptyBeginEqualsEnd(t *testing.T) {
	s := FromSlice([]int{})
	if !s.Begin().Equal(s.End()) {
		t.Error("begin and end of an empty sequence should be equal")
	}
}

func TestSlice_RandomAccess(t *testing.T) {
	s := FromSlice([]int{10, 20, 30, 40})
	c := s.Begin().(RandomAccess[int])
	c.Advance(3)
	if got := c.Value(); got != 40 {
		t.Errorf("value = %d, want 40", got)
	}
	c.Advance(-2)
	if got := c.Value(); got != 20 {
		t.Errorf("value = %d, want 20", got)
	}
	if d := c.DistanceTo(s.End()); d != 3 {
		t.Errorf("distance to end = %d, want 3", d)
	}
	if d := c.DistanceTo(s.Begin()); d != -1 {
		t.Errorf("distance to begin = %d, want -1", d)
	}
}

func TestSlice_SetWritesThrough(t *testing.T) {
	items := []int{1, 2, 3}
	s := FromSlice(items)
	c := s.Begin().(Writable[int])
	c.Set(9)
	if items[0] != 9 {
		t.Errorf("items[0] = %d, want 9", items[0])
	}
}

func TestSlice_CloneIsIndependent(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	c := s.Begin()
	cp := c.Clone()
	c.Next()
	if c.Equal(cp) {
		t.Error("advancing the original should not move the clone")
	}
	if got := cp.Value(); got != 1 {
		t.Errorf("clone value = %d, want 1", got)
	}
}

func TestSlice_Preconditions(t *testing.T) {
	s := FromSlice([]int{1})
	t.Run("next past end", func(t *testing.T) {
		c := s.End()
		mustViolation(t, contract.CodePrecondition, c.Next)
	})
	t.Run("prev before begin", func(t *testing.T) {
		c := s.Begin().(Bidirectional[int])
		mustViolation(t, contract.CodePrecondition, c.Prev)
	})
	t.Run("value at end", func(t *testing.T) {
		c := s.End()
		mustViolation(t, contract.CodePrecondition, func() { c.Value() })
	})
	t.Run("advance out of range", func(t *testing.T) {
		c := s.Begin().(RandomAccess[int])
		mustViolation(t, contract.CodePrecondition, func() { c.Advance(5) })
	})
	t.Run("unrelated sequences", func(t *testing.T) {
		other := FromSlice([]int{1})
		mustViolation(t, contract.CodePrecondition, func() {
			s.Begin().Equal(other.Begin())
		})
	})
}
