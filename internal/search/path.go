// Package search implements the move generator, the admissible heuristic
// precomputation, and the optimal-path search algorithms (breadth-first,
// A*, iterative-deepening A*) for the single-target Ricochet Robots puzzle.
package search

import "github.com/elektrokombinacija/ricochet-solver/internal/board"

// Path is a solver's result: the start and end states, and the ordered
// list of moves connecting them. Replaying Movements from StartPos on the
// round's board yields exactly EndPos, and EndPos satisfies the round's win
// predicate. For the degenerate case where the start already wins,
// Movements is empty and StartPos == EndPos.
type Path struct {
	StartPos  board.RobotPositions
	EndPos    board.RobotPositions
	Movements []board.Move
}

// NewPath builds a Path, asserting the invariant that an empty movement
// list only ever pairs with start == end.
func NewPath(start, end board.RobotPositions, movements []board.Move) Path {
	if len(movements) == 0 && start != end {
		panic("search: empty-move path must have start == end")
	}
	return Path{StartPos: start, EndPos: end, Movements: movements}
}

// NewStartOnTargetPath builds the degenerate Path used when the starting
// positions already satisfy the round's win predicate.
func NewStartOnTargetPath(start board.RobotPositions) Path {
	return Path{StartPos: start, EndPos: start, Movements: nil}
}

// Len returns the number of moves in the path.
func (p Path) Len() int {
	return len(p.Movements)
}

// IsEmpty reports whether the path has no moves.
func (p Path) IsEmpty() bool {
	return len(p.Movements) == 0
}
