package search

import (
	"context"

	"github.com/elektrokombinacija/ricochet-solver/internal/board"
)

// IterativeDeepening finds an optimal solution with a depth-limited
// depth-first search whose bound grows each iteration, pruned by the same
// admissible heuristic A* uses. It trades A*'s memory use (no frontier to
// keep resident) for repeated re-exploration of shallow states.
type IterativeDeepening struct {
	visited *VisitedNodes[BasicVisitedNode]
	budget  expansionBudget
}

// NewIterativeDeepening creates a new IDA* solver.
func NewIterativeDeepening() *IterativeDeepening {
	return &IterativeDeepening{visited: NewVisitedNodes[BasicVisitedNode](65536)}
}

// NewIterativeDeepeningWithBudget creates an IDA* solver that fails with
// ErrBudgetExceeded after maxExpansions state expansions, counted across
// all depth iterations of a single solve.
func NewIterativeDeepeningWithBudget(maxExpansions int) *IterativeDeepening {
	s := NewIterativeDeepening()
	s.budget.limit = maxExpansions
	return s
}

func (s *IterativeDeepening) Name() string {
	return "iterative-deepening"
}

// noBound marks "no state exceeded the current bound" - the reachable
// space was exhausted without finding the target, so it is unsolvable.
const noBound = -1

func (s *IterativeDeepening) Solve(ctx context.Context, round *board.Round, start board.RobotPositions) (Path, error) {
	if round.TargetReached(start) {
		return NewStartOnTargetPath(start), nil
	}

	heuristic := NewLeastMovesBoard(round.Board(), round.TargetPosition())
	if heuristic.IsUnsolvable(start, round.Target()) {
		return Path{}, ErrUnsolvable
	}

	s.budget.reset()
	bound := heuristic.MinMoves(start, round.Target())
	for {
		s.visited.Clear()
		goal, nextBound, err := s.searchBound(ctx, round, heuristic, start, bound)
		if err != nil {
			return Path{}, err
		}
		if goal != nil {
			return s.visited.PathTo(*goal), nil
		}
		if nextBound == noBound {
			return Path{}, ErrUnsolvable
		}
		bound = nextBound
	}
}

// searchBound runs one depth-limited iteration, using a total-cost bound
// rather than a raw depth bound (matching A*'s f = g + h pruning rule). It
// returns the positions the target was reached at, if found; otherwise the
// smallest f value that exceeded bound during the iteration, to try next.
func (s *IterativeDeepening) searchBound(ctx context.Context, round *board.Round, heuristic *LeastMovesBoard, start board.RobotPositions, bound int) (goal *board.RobotPositions, nextBound int, err error) {
	nextBound = noBound

	var dfs func(pos board.RobotPositions, g int) (*board.RobotPositions, error)
	dfs = func(pos board.RobotPositions, g int) (*board.RobotPositions, error) {
		if err := checkContext(ctx); err != nil {
			return nil, err
		}
		if err := s.budget.spend(); err != nil {
			return nil, err
		}

		for _, succ := range pos.ReachablePositions(round.Board()) {
			nextG := g + 1

			if round.TargetReached(succ.Positions) {
				outcome := s.visited.AddNode(succ.Positions, pos, nextG, succ.Move, NewBasicVisitedNode)
				if outcome.WasDiscarded() {
					continue
				}
				found := succ.Positions
				return &found, nil
			}

			h := heuristic.MinMoves(succ.Positions, round.Target())
			f := nextG + h
			if f > bound {
				if nextBound == noBound || f < nextBound {
					nextBound = f
				}
				continue
			}

			outcome := s.visited.AddNode(succ.Positions, pos, nextG, succ.Move, NewBasicVisitedNode)
			if outcome.WasDiscarded() {
				continue
			}

			found, err := dfs(succ.Positions, nextG)
			if err != nil || found != nil {
				return found, err
			}
		}
		return nil, nil
	}

	goal, err = dfs(start, 0)
	return goal, nextBound, err
}
