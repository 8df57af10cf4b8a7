package search

import (
	"testing"

	"github.com/elektrokombinacija/ricochet-solver/internal/board"
)

func TestAddNodeOutcomes(t *testing.T) {
	v := NewVisitedNodes[BasicVisitedNode](16)
	start := board.NewRobotPositions([4][2]board.Coordinate{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	a := board.NewRobotPositions([4][2]board.Coordinate{{5, 0}, {1, 1}, {2, 2}, {3, 3}})
	move := board.Move{Robot: board.Red, Direction: board.Right}

	if outcome := v.AddNode(a, start, 1, move, NewBasicVisitedNode); outcome != New {
		t.Fatalf("first insert = %v, want New", outcome)
	}

	// Equal cost: the existing (first-discovered) predecessor must win.
	otherMove := board.Move{Robot: board.Red, Direction: board.Down}
	if outcome := v.AddNode(a, start, 1, otherMove, NewBasicVisitedNode); outcome != BetterKnown {
		t.Fatalf("equal-cost rediscovery = %v, want BetterKnown", outcome)
	}
	node, _ := v.Get(a)
	if node.ReachedWith() != move {
		t.Errorf("equal-cost rediscovery overwrote the first-discovered predecessor: got %v, want %v", node.ReachedWith(), move)
	}

	// Strictly worse cost is also discarded.
	if outcome := v.AddNode(a, start, 5, otherMove, NewBasicVisitedNode); outcome != BetterKnown {
		t.Fatalf("worse-cost rediscovery = %v, want BetterKnown", outcome)
	}

	// Strictly better cost overwrites.
	if outcome := v.AddNode(a, start, 0, otherMove, NewBasicVisitedNode); outcome != WorseKnown {
		t.Fatalf("cheaper rediscovery = %v, want WorseKnown", outcome)
	}
	node, _ = v.Get(a)
	if node.ReachedWith() != otherMove {
		t.Error("cheaper rediscovery should overwrite the predecessor")
	}
}

func TestPathToReconstructsMoveOrder(t *testing.T) {
	v := NewVisitedNodes[BasicVisitedNode](16)
	start := board.NewRobotPositions([4][2]board.Coordinate{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	mid := board.NewRobotPositions([4][2]board.Coordinate{{5, 0}, {1, 1}, {2, 2}, {3, 3}})
	end := board.NewRobotPositions([4][2]board.Coordinate{{5, 0}, {5, 1}, {2, 2}, {3, 3}})

	moveToMid := board.Move{Robot: board.Red, Direction: board.Right}
	moveToEnd := board.Move{Robot: board.Blue, Direction: board.Right}

	v.AddNode(mid, start, 1, moveToMid, NewBasicVisitedNode)
	v.AddNode(end, mid, 2, moveToEnd, NewBasicVisitedNode)

	path := v.PathTo(end)
	if path.StartPos != start || path.EndPos != end {
		t.Fatalf("path = %+v, want start %v end %v", path, start, end)
	}
	if len(path.Movements) != 2 || path.Movements[0] != moveToMid || path.Movements[1] != moveToEnd {
		t.Errorf("path.Movements = %v, want [%v %v]", path.Movements, moveToMid, moveToEnd)
	}
}

func TestPathToPanicsOnUnvisitedState(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected PathTo to panic on a state never recorded in the table")
		}
	}()
	v := NewVisitedNodes[BasicVisitedNode](4)
	v.PathTo(board.NewRobotPositions([4][2]board.Coordinate{{0, 0}, {0, 0}, {0, 0}, {0, 0}}))
}
