package search

import (
	"context"
	"testing"

	"github.com/elektrokombinacija/ricochet-solver/internal/board"
)

// TestLeastMovesBoardSmallLayout checks a 3x3 board with three interior
// walls against its expected moves grid.
func TestLeastMovesBoardSmallLayout(t *testing.T) {
	b := board.NewEmptyBoard(3)
	b.SetWall(board.NewPosition(0, 0), false, true)
	b.SetWall(board.NewPosition(1, 1), true, true)

	h := NewLeastMovesBoard(b, board.NewPosition(0, 0))

	want := [3][3]int{
		{0, 3, 3},
		{1, 2, 3},
		{1, 2, 2},
	}
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			got := h.at(board.NewPosition(board.Coordinate(col), board.Coordinate(row)))
			if got != want[col][row] {
				t.Errorf("moves[%d][%d] = %d, want %d", col, row, got, want[col][row])
			}
		}
	}
}

// TestLeastMovesBoardZeroAtTarget checks the bound is zero when the winning
// robot already sits on the target cell.
func TestLeastMovesBoardZeroAtTarget(t *testing.T) {
	b := board.NewEmptyBoard(6)
	targetPos := board.NewPosition(2, 4)
	h := NewLeastMovesBoard(b, targetPos)

	state := board.NewRobotPositions([4][2]board.Coordinate{{2, 4}, {0, 0}, {5, 5}, {1, 1}})
	target := board.Target{Color: board.RedTarget, Symbol: board.Circle}
	if got := h.MinMoves(state, target); got != 0 {
		t.Errorf("MinMoves with winning robot on target = %d, want 0", got)
	}
}

// TestLeastMovesBoardUnsolvable checks that a fully caged target corner is
// reported unreachable.
func TestLeastMovesBoardUnsolvable(t *testing.T) {
	b := board.NewEmptyBoard(2)
	b.SetWall(board.NewPosition(0, 0), true, true)

	h := NewLeastMovesBoard(b, board.NewPosition(1, 0))
	state := board.NewRobotPositions([4][2]board.Coordinate{{0, 0}, {0, 0}, {0, 0}, {0, 0}})
	target := board.Target{Color: board.RedTarget, Symbol: board.Circle}

	if got := h.MinMoves(state, target); got != 4 {
		t.Errorf("MinMoves = %d, want 4", got)
	}
	if !h.IsUnsolvable(state, target) {
		t.Error("expected IsUnsolvable to be true for a fully caged target")
	}
}

// TestLeastMovesBoardIsAdmissible checks the bound never exceeds the true
// optimal length, against BFS ground truth on the canonical 9-move
// instance.
func TestLeastMovesBoardIsAdmissible(t *testing.T) {
	game := board.CanonicalGame()
	target := board.Target{Color: board.YellowTarget, Symbol: board.Hexagon}
	targetPos, _ := game.TargetPosition(target)
	round := board.NewRound(game.Board(), target, targetPos)
	start := board.NewRobotPositions([4][2]board.Coordinate{{0, 1}, {5, 4}, {7, 1}, {7, 15}})

	path, err := NewBreadthFirst().Solve(context.Background(), round, start)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	h := NewLeastMovesBoard(round.Board(), targetPos)
	if bound := h.MinMoves(start, target); bound > path.Len() {
		t.Errorf("MinMoves = %d exceeds the optimal length %d", bound, path.Len())
	}
}

// TestLeastMovesBoardSpiralTakesMinimumAcrossRobots covers the Spiral
// branch of MinMoves.
func TestLeastMovesBoardSpiralTakesMinimumAcrossRobots(t *testing.T) {
	b := board.NewEmptyBoard(10)
	h := NewLeastMovesBoard(b, board.NewPosition(5, 5))

	state := board.NewRobotPositions([4][2]board.Coordinate{{0, 0}, {5, 5}, {9, 9}, {1, 1}})
	if got := h.MinMoves(state, board.Spiral); got != 0 {
		t.Errorf("Spiral MinMoves = %d, want 0 (Blue already on target)", got)
	}
}
