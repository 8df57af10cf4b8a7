package search

import (
	"container/heap"
	"context"

	"github.com/elektrokombinacija/ricochet-solver/internal/board"
)

// MoveCounter orders search-frontier entries by total estimated cost f, and
// breaks ties by preferring the lower cost-so-far g (with f equal, that is
// the entry with the larger remaining estimate h).
type MoveCounter struct {
	Total     int
	FromStart int
}

// Less reports whether m sorts before other: lower Total first, then lower
// FromStart.
func (m MoveCounter) Less(other MoveCounter) bool {
	if m.Total != other.Total {
		return m.Total < other.Total
	}
	return m.FromStart < other.FromStart
}

// astarItem is one entry in the A* priority queue.
type astarItem struct {
	positions board.RobotPositions
	priority  MoveCounter
	index     int
}

// astarQueue implements container/heap.Interface over astarItems, ordered
// by MoveCounter.Less (lowest first - a min-heap).
type astarQueue []*astarItem

func (q astarQueue) Len() int           { return len(q) }
func (q astarQueue) Less(i, j int) bool { return q[i].priority.Less(q[j].priority) }
func (q astarQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (q *astarQueue) Push(x any) {
	item := x.(*astarItem)
	item.index = len(*q)
	*q = append(*q, item)
}
func (q *astarQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// AStar finds an optimal solution using an admissible heuristic to prune
// the search frontier.
type AStar struct {
	visited *VisitedNodes[BasicVisitedNode]
	budget  expansionBudget
}

// NewAStar creates a new A* solver.
func NewAStar() *AStar {
	return &AStar{visited: NewVisitedNodes[BasicVisitedNode](65536)}
}

// NewAStarWithBudget creates an A* solver that fails with
// ErrBudgetExceeded after maxExpansions state expansions.
func NewAStarWithBudget(maxExpansions int) *AStar {
	s := NewAStar()
	s.budget.limit = maxExpansions
	return s
}

func (s *AStar) Name() string {
	return "a-star"
}

func (s *AStar) Solve(ctx context.Context, round *board.Round, start board.RobotPositions) (Path, error) {
	if round.TargetReached(start) {
		return NewStartOnTargetPath(start), nil
	}

	heuristic := NewLeastMovesBoard(round.Board(), round.TargetPosition())
	if heuristic.IsUnsolvable(start, round.Target()) {
		return Path{}, ErrUnsolvable
	}

	s.visited.Clear()
	s.budget.reset()

	open := &astarQueue{}
	heap.Init(open)
	heap.Push(open, &astarItem{
		positions: start,
		priority:  MoveCounter{Total: heuristic.MinMoves(start, round.Target()), FromStart: 0},
	})

	const noSolution = -1
	bestCost := noSolution
	var bestGoal board.RobotPositions

	for open.Len() > 0 {
		if err := checkContext(ctx); err != nil {
			return Path{}, err
		}
		if err := s.budget.spend(); err != nil {
			return Path{}, err
		}

		item := heap.Pop(open).(*astarItem)
		if bestCost != noSolution && item.priority.Total >= bestCost {
			break
		}

		g := item.priority.FromStart
		for _, succ := range item.positions.ReachablePositions(round.Board()) {
			nextG := g + 1
			outcome := s.visited.AddNode(succ.Positions, item.positions, nextG, succ.Move, NewBasicVisitedNode)
			if outcome.WasDiscarded() {
				continue
			}

			if round.TargetReached(succ.Positions) {
				if bestCost == noSolution || nextG < bestCost {
					bestCost = nextG
					bestGoal = succ.Positions
				}
				continue
			}

			h := heuristic.MinMoves(succ.Positions, round.Target())
			heap.Push(open, &astarItem{
				positions: succ.Positions,
				priority:  MoveCounter{Total: nextG + h, FromStart: nextG},
			})
		}
	}

	if bestCost == noSolution {
		return Path{}, ErrUnsolvable
	}
	return s.visited.PathTo(bestGoal), nil
}
