package search

import (
	"container/heap"
	"testing"
)

// TestMoveCounterPopOrder checks the priority queue pops lowest f first,
// breaking ties by lowest g.
func TestMoveCounterPopOrder(t *testing.T) {
	q := &astarQueue{}
	heap.Init(q)
	for _, mc := range []MoveCounter{
		{Total: 10, FromStart: 5},
		{Total: 10, FromStart: 3},
		{Total: 10, FromStart: 3},
		{Total: 5, FromStart: 2},
	} {
		heap.Push(q, &astarItem{priority: mc})
	}

	want := []MoveCounter{
		{Total: 5, FromStart: 2},
		{Total: 10, FromStart: 3},
		{Total: 10, FromStart: 3},
		{Total: 10, FromStart: 5},
	}

	for i, w := range want {
		got := heap.Pop(q).(*astarItem).priority
		if got != w {
			t.Errorf("pop %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestMoveCounterLess(t *testing.T) {
	lowerF := MoveCounter{Total: 3, FromStart: 9}
	higherF := MoveCounter{Total: 4, FromStart: 0}
	if !lowerF.Less(higherF) {
		t.Error("lower total should sort first regardless of FromStart")
	}

	sameFLowerG := MoveCounter{Total: 5, FromStart: 1}
	sameFHigherG := MoveCounter{Total: 5, FromStart: 2}
	if !sameFLowerG.Less(sameFHigherG) {
		t.Error("equal total should break ties on lower FromStart")
	}
}
