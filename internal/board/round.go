package board

// Round is an immutable bundle of a board, a target, and the target's cell.
// It is created once per puzzle and shared by reference throughout a
// search.
type Round struct {
	board          *Board
	target         Target
	targetPosition Position
}

// NewRound builds a Round. It panics if board is nil, if targetPosition
// is out of bounds, or if board's outer edges are not all walled, per this
// package's "malformed input is fatal at construction" error policy. Every
// Board built by this package's constructors is already enclosed (see
// Board.enclose), so the enclosure check only fails for a hand-assembled
// Board.
func NewRound(b *Board, target Target, targetPosition Position) *Round {
	if b == nil {
		panic("board: round requires a non-nil board")
	}
	if targetPosition.Column() >= b.SideLength() || targetPosition.Row() >= b.SideLength() {
		panic("board: target position out of bounds")
	}
	last := b.side - 1
	for i := Coordinate(0); i < b.side; i++ {
		if !b.walls[i][last].Down || !b.walls[last][i].Right {
			panic("board: round requires an enclosed board")
		}
	}
	return &Round{board: b, target: target, targetPosition: targetPosition}
}

// Board returns the round's board.
func (r *Round) Board() *Board {
	return r.board
}

// Target returns the round's target.
func (r *Round) Target() Target {
	return r.target
}

// TargetPosition returns the target's cell.
func (r *Round) TargetPosition() Position {
	return r.targetPosition
}

// TargetReached is the round's win predicate: if the target is Spiral, any
// robot on the target cell wins; otherwise only the matching colored robot
// does.
func (r *Round) TargetReached(rp RobotPositions) bool {
	if robot, ok := r.target.Color.Robot(); ok {
		return rp.ColoredAt(robot, r.targetPosition)
	}
	return rp.AnyAt(r.targetPosition)
}
