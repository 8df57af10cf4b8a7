package search

import (
	"context"
	"errors"

	"github.com/elektrokombinacija/ricochet-solver/internal/board"
)

// ErrUnsolvable is returned when the target cannot be reached from the
// starting positions: the heuristic reports min_moves >= side*side, or the
// search runs out of states to explore without reaching the target.
var ErrUnsolvable = errors.New("search: target is unreachable from the given starting positions")

// ErrBudgetExceeded is returned when a caller-supplied step budget is spent
// before a solution is found. No partial path is returned alongside it.
var ErrBudgetExceeded = errors.New("search: step budget exceeded before a solution was found")

// Solver finds an optimal-length path to a round's target from a starting
// configuration of robots. BFS, A*, and IDA* are the three variants
// defined by this package; callers pick one at construction, and no
// runtime dispatch is needed on the hot path.
type Solver interface {
	// Solve returns the minimum-length Path from start to a state
	// satisfying round's win predicate. ctx is checked between state
	// expansions; a cancelled or expired ctx aborts the search and
	// returns its error unwrapped. It returns ErrUnsolvable if the
	// target is unreachable from start.
	Solve(ctx context.Context, round *board.Round, start board.RobotPositions) (Path, error)
	// Name identifies the algorithm, for logging and benchmarking.
	Name() string
}

// checkContext returns ctx.Err() if ctx has been cancelled or its deadline
// has passed, so a long-running search can be aborted between expansions.
func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// expansionBudget caps the number of state expansions a solve may perform.
// The zero value is an unlimited budget.
type expansionBudget struct {
	limit int
	spent int
}

func (b *expansionBudget) reset() {
	b.spent = 0
}

// spend consumes one expansion. It returns ErrBudgetExceeded once the cap
// has been crossed; no partial path accompanies the error.
func (b *expansionBudget) spend() error {
	if b.limit <= 0 {
		return nil
	}
	b.spent++
	if b.spent > b.limit {
		return ErrBudgetExceeded
	}
	return nil
}
