package board

import "testing"

func TestTargetReachedColoredRequiresMatchingRobot(t *testing.T) {
	b := NewEmptyBoard(8)
	target := Target{Color: GreenTarget, Symbol: Circle}
	targetPos := NewPosition(4, 4)
	round := NewRound(b, target, targetPos)

	onTarget := NewRobotPositions([4][2]Coordinate{{0, 0}, {1, 1}, {4, 4}, {7, 7}})
	if !round.TargetReached(onTarget) {
		t.Error("expected the matching Green robot on the target cell to satisfy the win predicate")
	}

	wrongRobot := NewRobotPositions([4][2]Coordinate{{4, 4}, {1, 1}, {2, 2}, {7, 7}})
	if round.TargetReached(wrongRobot) {
		t.Error("a non-matching robot on the target cell should not satisfy the win predicate")
	}
}

func TestTargetReachedSpiralAcceptsAnyRobot(t *testing.T) {
	b := NewEmptyBoard(8)
	targetPos := NewPosition(2, 2)
	round := NewRound(b, Spiral, targetPos)

	onTarget := NewRobotPositions([4][2]Coordinate{{0, 0}, {1, 1}, {2, 2}, {7, 7}})
	if !round.TargetReached(onTarget) {
		t.Error("expected Spiral to accept any robot on the target cell")
	}
}

func TestNewRoundPanicsOnOutOfBoundsTarget(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected NewRound to panic on an out-of-bounds target position")
		}
	}()
	b := NewEmptyBoard(4)
	NewRound(b, Spiral, NewPosition(9, 9))
}
