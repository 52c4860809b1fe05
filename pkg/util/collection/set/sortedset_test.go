package set

import (
	"testing"
)

func Test_AnySortedSet_New(t *testing.T) {
	items := toOrder(3, 1, 2, 1, 3)
	s := NewAnySortedSet(items...)
	//
	checkContents(t, s, 1, 2, 3)
}

func Test_AnySortedSet_Insert(t *testing.T) {
	s := NewAnySortedSet[Order[int]]()
	//
	for _, item := range []int{5, 1, 3, 1, 5} {
		s.Insert(Order[int]{item})
	}
	//
	checkContents(t, s, 1, 3, 5)
	//
	if !s.Contains(Order[int]{3}) {
		t.Errorf("expected set to contain 3")
	}
	//
	if s.Contains(Order[int]{2}) {
		t.Errorf("expected set not to contain 2")
	}
}

func Test_AnySortedSet_Remove(t *testing.T) {
	s := NewAnySortedSet(toOrder(1, 2, 3)...)
	//
	if !s.Remove(Order[int]{2}) {
		t.Errorf("expected removal of 2 to succeed")
	}
	//
	if s.Remove(Order[int]{4}) {
		t.Errorf("expected removal of 4 to fail")
	}
	//
	checkContents(t, s, 1, 3)
}

func Test_AnySortedSet_InsertSorted(t *testing.T) {
	s := NewAnySortedSet(toOrder(1, 3, 5)...)
	s.InsertSorted(NewAnySortedSet(toOrder(2, 3, 6)...))
	//
	checkContents(t, s, 1, 2, 3, 5, 6)
}

func Test_AnySortedSet_Union(t *testing.T) {
	u := UnionAnySortedSets([][]int{{1, 2}, {2, 3}, {9}}, func(items []int) *AnySortedSet[Order[int]] {
		return NewAnySortedSet(toOrder(items...)...)
	})
	//
	checkContents(t, u, 1, 2, 3, 9)
}

func toOrder(items ...int) []Order[int] {
	orders := make([]Order[int], len(items))
	//
	for i, item := range items {
		orders[i] = Order[int]{item}
	}
	//
	return orders
}

func checkContents(t *testing.T, s *AnySortedSet[Order[int]], expected ...int) {
	t.Helper()
	//
	actual := s.ToArray()
	//
	if len(actual) != len(expected) {
		t.Fatalf("expected %d elements, got %d", len(expected), len(actual))
	}
	//
	for i, item := range expected {
		if actual[i].Item != item {
			t.Errorf("expected %d at index %d, got %d", item, i, actual[i].Item)
		}
	}
}
