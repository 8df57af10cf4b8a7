package search

import "github.com/elektrokombinacija/ricochet-solver/internal/board"

// LeastMovesBoard holds, for every cell, an admissible lower bound on the
// number of moves needed to land the winning robot on the target cell. The
// bound assumes the robot moves alone, obeying only walls - ignoring other
// robots can only relax constraints, so any actual path length is at least
// this bound.
//
// If a cell's bound equals side*side, the target cannot be reached from
// that cell at all (a legal board's optimal path is always shorter than the
// number of cells on it).
type LeastMovesBoard struct {
	moves          [][]int
	targetPosition board.Position
}

// NewLeastMovesBoard computes the bound for every cell via a multi-source
// BFS seeded at targetPosition, walking in slide-space (i.e. through every
// intermediate cell of a slide, not just where it would stop) since a
// helper robot may later stop the winning robot early at any of them.
func NewLeastMovesBoard(b *board.Board, targetPosition board.Position) *LeastMovesBoard {
	side := int(b.SideLength())
	moves := make([][]int, side)
	for c := range moves {
		moves[c] = make([]int, side)
		for r := range moves[c] {
			moves[c][r] = side * side
		}
	}
	moves[targetPosition.Column()][targetPosition.Row()] = 0

	current := []board.Position{targetPosition}
	for step := 1; len(current) > 0; step++ {
		var next []board.Position
		for _, p := range current {
			for _, d := range board.Directions {
				check := p
				for !b.HasWallAdjacent(check, d) {
					check = check.Step(d, board.Coordinate(side))
					if moves[check.Column()][check.Row()] > step {
						moves[check.Column()][check.Row()] = step
						next = append(next, check)
					}
				}
			}
		}
		current = next
	}

	return &LeastMovesBoard{moves: moves, targetPosition: targetPosition}
}

// at returns the precomputed bound for p.
func (h *LeastMovesBoard) at(p board.Position) int {
	return h.moves[p.Column()][p.Row()]
}

// MinMoves returns the admissible lower bound on the number of moves needed
// to satisfy target from state. For a colored target this is the bound at
// that robot's cell; for Spiral it is the minimum over all four robots.
func (h *LeastMovesBoard) MinMoves(state board.RobotPositions, target board.Target) int {
	if robot, ok := target.Color.Robot(); ok {
		return h.at(state.Get(robot))
	}
	best := h.at(state.Get(board.Red))
	for _, r := range board.Robots[1:] {
		if m := h.at(state.Get(r)); m < best {
			best = m
		}
	}
	return best
}

// IsUnsolvable reports whether target cannot be reached from state: the
// bound reported by MinMoves is at least the number of cells on the board.
func (h *LeastMovesBoard) IsUnsolvable(state board.RobotPositions, target board.Target) bool {
	side := len(h.moves)
	return h.MinMoves(state, target) >= side*side
}
