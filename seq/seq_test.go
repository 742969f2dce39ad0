package seq

import (
	"testing"

	"github.com/vladdou/rangekit/contract"
	"github.com/vladdou/rangekit/cursor"
)

func TestCollect(t *testing.T) {
	tests := []struct {
		name string
		s    cursor.Sequence[int]
		want []int
	}{
		{"slice", cursor.FromSlice([]int{1, 2, 3}), []int{1, 2, 3}},
		{"list", cursor.NewList(4, 5), []int{4, 5}},
		{"empty", cursor.FromSlice([]int{}), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Collect(tc.s)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("index %d: got %d, want %d", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestCollect_Stream(t *testing.T) {
	i := 0
	s := cursor.FromFunc(func() (int, bool) {
		i++
		return i, i <= 3
	})
	got := Collect[int](s)
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestForEach(t *testing.T) {
	var sum int
	ForEach[int](cursor.FromSlice([]int{1, 2, 3}), func(v int) { sum += v })
	if sum != 6 {
		t.Errorf("sum = %d, want 6", sum)
	}
}

func TestCount(t *testing.T) {
	if n := Count[int](cursor.FromSlice([]int{1, 2, 3})); n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
	if n := Count[int](cursor.NewList[int]()); n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
}

func TestDistance_RandomAccessAndCounting(t *testing.T) {
	sl := cursor.FromSlice([]int{1, 2, 3, 4})
	if d := Distance(sl.Begin(), sl.End()); d != 4 {
		t.Errorf("slice distance = %d, want 4", d)
	}
	// backward distance is only answerable in O(1)
	if d := Distance(sl.End(), sl.Begin()); d != -4 {
		t.Errorf("backward distance = %d, want -4", d)
	}

	li := cursor.NewList(1, 2, 3)
	if d := Distance(li.Begin(), li.End()); d != 3 {
		t.Errorf("list distance = %d, want 3", d)
	}
}

func TestDistance_CountingLeavesCursorUntouched(t *testing.T) {
	li := cursor.NewList(1, 2, 3)
	from := li.Begin()
	Distance(from, li.End())
	if got := from.Value(); got != 1 {
		t.Errorf("counting moved the original cursor to %d", got)
	}
}

func TestNextPrev(t *testing.T) {
	s := cursor.FromSlice([]int{10, 20, 30})
	c := Next(s.Begin(), 2)
	if got := c.Value(); got != 30 {
		t.Errorf("value = %d, want 30", got)
	}
	back := Prev(c, 2)
	if got := back.Value(); got != 10 {
		t.Errorf("value = %d, want 10", got)
	}
	// clones: the intermediate cursor keeps its position
	if got := c.Value(); got != 30 {
		t.Errorf("original moved to %d", got)
	}
}

func TestPrev_SinglePassViolates(t *testing.T) {
	s := cursor.FromFunc(func() (int, bool) { return 1, true })
	defer func() {
		v, ok := contract.AsViolation(recover())
		if !ok || v.Code != contract.CodeCapability {
			t.Fatal("expected a capability violation")
		}
	}()
	Prev(s.Begin(), 1)
}
