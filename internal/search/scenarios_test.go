package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/ricochet-solver/internal/board"
)

func allSolvers() []Solver {
	return []Solver{NewBreadthFirst(), NewAStar(), NewIterativeDeepening()}
}

// TestStartOnTargetIsDegenerate checks that a robot already on target wins
// immediately, with an empty move list.
func TestStartOnTargetIsDegenerate(t *testing.T) {
	game := board.CanonicalGame()
	target := board.Target{Color: board.GreenTarget, Symbol: board.Triangle}
	targetPos, ok := game.TargetPosition(target)
	require.True(t, ok, "canonical game should have a Green-Triangle target")

	round := board.NewRound(game.Board(), target, targetPos)
	start := board.NewRobotPositions([4][2]board.Coordinate{
		{0, 1},
		{5, 4},
		{targetPos.Column(), targetPos.Row()},
		{7, 15},
	})

	for _, s := range allSolvers() {
		path, err := s.Solve(context.Background(), round, start)
		require.NoErrorf(t, err, "%s", s.Name())
		require.Truef(t, path.IsEmpty(), "%s: expected an empty-move path", s.Name())
		require.Equalf(t, start, path.EndPos, "%s: end_pos should equal start_pos", s.Name())
	}
}

// TestCanonicalNineMoveSolve requires all three solvers to find an optimal
// path of length 9 on the canonical 16x16 board.
func TestCanonicalNineMoveSolve(t *testing.T) {
	game := board.CanonicalGame()
	target := board.Target{Color: board.YellowTarget, Symbol: board.Hexagon}
	targetPos, ok := game.TargetPosition(target)
	require.True(t, ok, "canonical game should have a Yellow-Hexagon target")

	round := board.NewRound(game.Board(), target, targetPos)
	start := board.NewRobotPositions([4][2]board.Coordinate{{0, 1}, {5, 4}, {7, 1}, {7, 15}})

	var bfsLen int
	for i, s := range allSolvers() {
		path, err := s.Solve(context.Background(), round, start)
		require.NoErrorf(t, err, "%s", s.Name())
		require.Equalf(t, 9, path.Len(), "%s: path length", s.Name())
		require.Truef(t, round.TargetReached(path.EndPos), "%s: end_pos must satisfy the win predicate", s.Name())
		requireReplays(t, round, path)

		if i == 0 {
			bfsLen = path.Len()
		} else {
			require.Equalf(t, bfsLen, path.Len(), "%s should match BFS's optimal length", s.Name())
		}
	}
}

// TestUnsolvableInstanceFailsAcrossSolvers checks that a fully caged target
// is reported unsolvable by every algorithm, not silently returned as an
// empty path.
func TestUnsolvableInstanceFailsAcrossSolvers(t *testing.T) {
	b := board.NewEmptyBoard(2)
	b.SetWall(board.NewPosition(0, 0), true, true)
	target := board.Target{Color: board.RedTarget, Symbol: board.Circle}
	round := board.NewRound(b, target, board.NewPosition(1, 0))
	start := board.NewRobotPositions([4][2]board.Coordinate{{0, 0}, {0, 0}, {0, 0}, {0, 0}})

	for _, s := range allSolvers() {
		_, err := s.Solve(context.Background(), round, start)
		require.ErrorIsf(t, err, ErrUnsolvable, "%s", s.Name())
	}
}

// TestSolveIsDeterministic checks that repeated solves of the same instance
// return a bit-identical path.
func TestSolveIsDeterministic(t *testing.T) {
	game := board.CanonicalGame()
	target := board.Target{Color: board.YellowTarget, Symbol: board.Hexagon}
	targetPos, _ := game.TargetPosition(target)
	round := board.NewRound(game.Board(), target, targetPos)
	start := board.NewRobotPositions([4][2]board.Coordinate{{0, 1}, {5, 4}, {7, 1}, {7, 15}})

	for _, s := range allSolvers() {
		first, err := s.Solve(context.Background(), round, start)
		require.NoError(t, err)
		second, err := s.Solve(context.Background(), round, start)
		require.NoError(t, err)
		require.Equalf(t, first, second, "%s: repeated solves diverged", s.Name())
	}
}

// requireReplays asserts that replaying a path's moves from its start
// reproduces its recorded end_pos.
func requireReplays(t *testing.T, round *board.Round, path Path) {
	t.Helper()
	pos := path.StartPos
	for _, m := range path.Movements {
		pos = pos.Slide(round.Board(), m.Robot, m.Direction)
	}
	require.Equal(t, path.EndPos, pos, "replaying movements should reproduce end_pos")
}
