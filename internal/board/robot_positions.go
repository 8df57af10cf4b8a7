package board

// RobotPositions is an ordered 4-tuple of Positions in the canonical robot
// order (red, blue, green, yellow). It is the search state: cheap to copy,
// comparable, and usable directly as a map key.
type RobotPositions struct {
	Red, Blue, Green, Yellow Position
}

// NewRobotPositions builds a RobotPositions from four (column, row) tuples
// given in red/blue/green/yellow order.
func NewRobotPositions(coords [4][2]Coordinate) RobotPositions {
	return RobotPositions{
		Red:    NewPosition(coords[0][0], coords[0][1]),
		Blue:   NewPosition(coords[1][0], coords[1][1]),
		Green:  NewPosition(coords[2][0], coords[2][1]),
		Yellow: NewPosition(coords[3][0], coords[3][1]),
	}
}

// Get returns the position of r.
func (rp RobotPositions) Get(r Robot) Position {
	switch r {
	case Red:
		return rp.Red
	case Blue:
		return rp.Blue
	case Green:
		return rp.Green
	case Yellow:
		return rp.Yellow
	}
	panic("board: unknown robot")
}

// With returns a new RobotPositions with r moved to p. This is a functional
// update: the receiver is left unchanged, matching the rest of the engine's
// treatment of states as plain values.
func (rp RobotPositions) With(r Robot, p Position) RobotPositions {
	switch r {
	case Red:
		rp.Red = p
	case Blue:
		rp.Blue = p
	case Green:
		rp.Green = p
	case Yellow:
		rp.Yellow = p
	default:
		panic("board: unknown robot")
	}
	return rp
}

// AnyAt reports whether any robot occupies p.
func (rp RobotPositions) AnyAt(p Position) bool {
	return rp.Red == p || rp.Blue == p || rp.Green == p || rp.Yellow == p
}

// ColoredAt reports whether r specifically occupies p.
func (rp RobotPositions) ColoredAt(r Robot, p Position) bool {
	return rp.Get(r) == p
}

// ToArray returns the four positions in canonical robot order.
func (rp RobotPositions) ToArray() [4]Position {
	return [4]Position{rp.Red, rp.Blue, rp.Green, rp.Yellow}
}

// Slide moves r one slide in direction d on board: the robot advances until
// blocked by a wall or by another robot, then stops. Slide is total (never
// fails) and pure; the result equals rp unchanged if r is already blocked.
func (rp RobotPositions) Slide(b *Board, r Robot, d Direction) RobotPositions {
	side := b.SideLength()
	p := rp.Get(r)
	for {
		if b.HasWallAdjacent(p, d) {
			break
		}
		next := p.Step(d, side)
		if rp.AnyAt(next) {
			break
		}
		p = next
	}
	return rp.With(r, p)
}

// Move is a single (robot, direction) action, as recorded in a Path or used
// to reach a state in the visited-node table.
type Move struct {
	Robot     Robot
	Direction Direction
}

// Successor is one reachable next state together with the move that
// produced it.
type Successor struct {
	Positions RobotPositions
	Move      Move
}

// ReachablePositions yields every (next_state, move) pair such that
// next_state = slide(board, rp, robot, direction) and next_state != rp, in
// canonical (robot order) x (direction order) iteration order. Ordering
// matters only for deterministic tie-breaking in reconstructed paths.
func (rp RobotPositions) ReachablePositions(b *Board) []Successor {
	successors := make([]Successor, 0, 16)
	for _, r := range Robots {
		for _, d := range Directions {
			moved := rp.Slide(b, r, d)
			if moved == rp {
				continue
			}
			successors = append(successors, Successor{Positions: moved, Move: Move{Robot: r, Direction: d}})
		}
	}
	return successors
}
