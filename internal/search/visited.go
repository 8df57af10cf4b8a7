package search

import "github.com/elektrokombinacija/ricochet-solver/internal/board"

// AddNodeOutcome is the result of attempting to record a newly reached
// state in a VisitedNodes table.
type AddNodeOutcome int

const (
	// New: the state was previously unknown and has been added.
	New AddNodeOutcome = iota
	// WorseKnown: the state had been seen before at a higher cost; the
	// table has been updated with the new, cheaper predecessor.
	WorseKnown
	// BetterKnown: the state has been seen before at an equal or lower
	// cost; the new arrival has been discarded.
	BetterKnown
)

// WasAdded reports whether the state was recorded (New or WorseKnown).
func (o AddNodeOutcome) WasAdded() bool {
	return o != BetterKnown
}

// WasDiscarded reports whether the state was left alone (BetterKnown).
func (o AddNodeOutcome) WasDiscarded() bool {
	return o == BetterKnown
}

// VisitedNode is the information a visited-node record must expose,
// independent of how richly a particular algorithm chooses to annotate it.
type VisitedNode interface {
	MovesToReach() int
	PreviousPosition() board.RobotPositions
	ReachedWith() board.Move
}

// BasicVisitedNode is the lean record used by BFS, A*, and IDA*: just
// enough to reconstruct a path. Algorithms needing richer per-node data
// (e.g. a future MCTS variant) should define a second record type rather
// than fattening this one.
type BasicVisitedNode struct {
	movesToReach     int
	previousPosition board.RobotPositions
	move             board.Move
}

// NewBasicVisitedNode builds a BasicVisitedNode.
func NewBasicVisitedNode(moves int, previous board.RobotPositions, move board.Move) BasicVisitedNode {
	return BasicVisitedNode{movesToReach: moves, previousPosition: previous, move: move}
}

func (n BasicVisitedNode) MovesToReach() int                      { return n.movesToReach }
func (n BasicVisitedNode) PreviousPosition() board.RobotPositions { return n.previousPosition }
func (n BasicVisitedNode) ReachedWith() board.Move                { return n.move }

// VisitedNodes wraps a map from RobotPositions to a visited-node record,
// providing the add/path-reconstruction operations every search algorithm
// shares.
type VisitedNodes[N VisitedNode] struct {
	nodes map[board.RobotPositions]N
}

// NewVisitedNodes builds an empty table sized for capacity entries.
func NewVisitedNodes[N VisitedNode](capacity int) *VisitedNodes[N] {
	return &VisitedNodes[N]{nodes: make(map[board.RobotPositions]N, capacity)}
}

// Clear empties the table. Used between solves and between IDA* depth
// iterations.
func (v *VisitedNodes[N]) Clear() {
	for k := range v.nodes {
		delete(v.nodes, k)
	}
}

// Get returns the visit record for positions, if any.
func (v *VisitedNodes[N]) Get(positions board.RobotPositions) (N, bool) {
	n, ok := v.nodes[positions]
	return n, ok
}

// AddNode attempts to record that positions was reached from from in moves
// steps via move. If a cheaper or equal-cost record already exists, the
// state is discarded (BetterKnown) and the table is left untouched -
// equal-cost discoveries do not overwrite, so the first-discovered
// predecessor wins and the search stays deterministic.
func (v *VisitedNodes[N]) AddNode(positions, from board.RobotPositions, moves int, move board.Move, newNode func(int, board.RobotPositions, board.Move) N) AddNodeOutcome {
	if existing, ok := v.nodes[positions]; ok {
		if existing.MovesToReach() <= moves {
			return BetterKnown
		}
		v.nodes[positions] = newNode(moves, from, move)
		return WorseKnown
	}
	v.nodes[positions] = newNode(moves, from, move)
	return New
}

// PathTo walks the predecessor chain backward from positions to the search
// start, and returns the replayable Path. It panics if positions has never
// been visited - a caller asking for the path to an unvisited state is a
// programming error, not a data error.
func (v *VisitedNodes[N]) PathTo(positions board.RobotPositions) Path {
	moves := make([]board.Move, 0, 32)
	current := positions

	for {
		node, ok := v.nodes[current]
		if !ok {
			panic("search: failed to find a supposed source position")
		}
		moves = append(moves, node.ReachedWith())
		current = node.PreviousPosition()
		if node.MovesToReach() == 1 {
			break
		}
	}

	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return NewPath(current, positions, moves)
}
