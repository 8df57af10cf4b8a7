package search

import (
	"context"

	"github.com/elektrokombinacija/ricochet-solver/internal/board"
)

// BreadthFirst finds an optimal solution by visiting all possible game
// states in order of moves needed to reach them.
type BreadthFirst struct {
	visited *VisitedNodes[BasicVisitedNode]
	budget  expansionBudget
}

// NewBreadthFirst creates a new solver which uses a breadth-first search to
// find an optimal solution.
func NewBreadthFirst() *BreadthFirst {
	return &BreadthFirst{visited: NewVisitedNodes[BasicVisitedNode](65536)}
}

// NewBreadthFirstWithBudget creates a breadth-first solver that fails with
// ErrBudgetExceeded after maxExpansions state expansions.
func NewBreadthFirstWithBudget(maxExpansions int) *BreadthFirst {
	s := NewBreadthFirst()
	s.budget.limit = maxExpansions
	return s
}

func (s *BreadthFirst) Name() string {
	return "breadth-first"
}

func (s *BreadthFirst) Solve(ctx context.Context, round *board.Round, start board.RobotPositions) (Path, error) {
	if round.TargetReached(start) {
		return NewStartOnTargetPath(start), nil
	}
	s.visited.Clear()
	s.budget.reset()
	return s.start(ctx, round, start)
}

func (s *BreadthFirst) start(ctx context.Context, round *board.Round, startPos board.RobotPositions) (Path, error) {
	current := []board.RobotPositions{startPos}
	next := make([]board.RobotPositions, 0, 16*16*16)

	for moveN := 0; len(current) > 0; moveN++ {
		if err := checkContext(ctx); err != nil {
			return Path{}, err
		}
		for _, pos := range current {
			if err := s.budget.spend(); err != nil {
				return Path{}, err
			}
			reached, found := s.evalState(round, pos, moveN, &next)
			if found {
				return s.visited.PathTo(reached), nil
			}
		}
		current, next = next, current[:0]
	}

	return Path{}, ErrUnsolvable
}

// evalState calculates all unseen reachable positions from initialPos and
// adds them to the visited table. moves is the number of moves needed to
// reach initialPos.
func (s *BreadthFirst) evalState(round *board.Round, initialPos board.RobotPositions, moves int, next *[]board.RobotPositions) (board.RobotPositions, bool) {
	for _, succ := range initialPos.ReachablePositions(round.Board()) {
		outcome := s.visited.AddNode(succ.Positions, initialPos, moves+1, succ.Move, NewBasicVisitedNode)
		if outcome.WasDiscarded() {
			continue
		}
		if round.TargetReached(succ.Positions) {
			return succ.Positions, true
		}
		*next = append(*next, succ.Positions)
	}
	return board.RobotPositions{}, false
}
