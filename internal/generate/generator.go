// Package generate synthesizes Boards and Games with randomized quadrant
// walls, for callers that do not want to assemble the fixed quadrant
// catalog. It is a non-core collaborator (see the search package's
// contract): the search engine never depends on how a board was produced.
package generate

import (
	"math/rand"
	"time"

	"github.com/elektrokombinacija/ricochet-solver/internal/board"
)

// centerWallsFromSideLength is the smallest side length that gets a center
// wall block, matching the physical board's fixed center piece.
const centerWallsFromSideLength = 10

// Generator synthesizes boards of a fixed side length. A Generator tracks
// which fields are already "occupied" by a wall's immediate neighborhood,
// so repeated calls spread walls out instead of clustering them.
type Generator struct {
	rng        *rand.Rand
	sideLength board.Coordinate
	candidates []board.Position
	occupied   map[board.Position]bool
}

// New creates a Generator seeded from the current time.
func New(sideLength board.Coordinate) *Generator {
	return NewSeeded(sideLength, time.Now().UnixNano())
}

// NewSeeded creates a Generator with a reproducible seed.
func NewSeeded(sideLength board.Coordinate, seed int64) *Generator {
	if sideLength < 3 {
		panic("generate: side length must be at least 3")
	}
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		sideLength: sideLength,
	}
}

// GenerateBoard synthesizes a new enclosed board and records the cells
// adjacent to a generated wall as candidate target positions.
func (g *Generator) GenerateBoard() *board.Board {
	b := board.NewEmptyBoard(g.sideLength)
	g.candidates = nil
	g.occupied = make(map[board.Position]bool)

	if g.sideLength >= centerWallsFromSideLength {
		setCenterWalls(b, g.sideLength)
		half := g.sideLength/2 - 1
		for _, colAdd := range [2]board.Coordinate{0, 1} {
			for _, rowAdd := range [2]board.Coordinate{0, 1} {
				g.markOccupied(board.NewPosition(half+colAdd, half+rowAdd))
			}
		}
	}

	g.addOuterWallProtrusions(b)
	g.addQuadrantWalls(b)

	return board.NewBoard(b.Walls())
}

// GenerateGame synthesizes a board and assigns every catalog target a
// random position among the cells a generated wall made interesting. Some
// targets may land on the same field.
func (g *Generator) GenerateGame() *board.Game {
	b := g.GenerateBoard()
	pool := append([]board.Position(nil), g.candidates...)
	if len(pool) == 0 {
		pool = []board.Position{board.NewPosition(0, 0)}
	}

	targets := make(map[board.Target]board.Position, len(board.Targets))
	for _, target := range board.Targets {
		if len(pool) == 0 {
			pool = append(pool, g.candidates...)
		}
		targets[target] = pool[g.rng.Intn(len(pool))]
	}
	return board.NewGame(b, targets)
}

// quadrantSpec is one quarter of the board to scatter walls in, expressed
// as a (column, row) origin and a (width, height) extent.
type quadrantSpec struct {
	col, row, width, height board.Coordinate
}

func (g *Generator) quadrants() [4]quadrantSpec {
	firstLen := g.sideLength / 2
	otherLen := firstLen
	if g.sideLength%2 == 1 {
		otherLen++
	}
	return [4]quadrantSpec{
		{1, 1, firstLen - 1, firstLen - 1},
		{1, firstLen, firstLen - 1, otherLen - 1},
		{firstLen, 1, otherLen - 1, firstLen - 1},
		{firstLen, firstLen, otherLen - 1, otherLen - 1},
	}
}

// addQuadrantWalls scatters a handful of corner walls across each quadrant,
// one per unoccupied field up to fieldsPerQuad attempts.
func (g *Generator) addQuadrantWalls(b *board.Board) {
	fieldsPerQuad := int(float64(g.sideLength)/4.0 + 0.5)

	for _, quad := range g.quadrants() {
		for i := 0; i < fieldsPerQuad; i++ {
			free := g.freeFieldsIn(quad)
			if len(free) == 0 {
				break
			}
			chosen := free[g.rng.Intn(len(free))]
			g.wallsAroundField(b, chosen)
			g.candidates = append(g.candidates, chosen)
			g.markOccupied(chosen)
		}
	}

	// One more wall anywhere in the interior, if there is room left.
	full := quadrantSpec{1, 1, g.sideLength - 2, g.sideLength - 2}
	if free := g.freeFieldsIn(full); len(free) > 0 {
		chosen := free[g.rng.Intn(len(free))]
		g.wallsAroundField(b, chosen)
		g.candidates = append(g.candidates, chosen)
	}
}

func (g *Generator) freeFieldsIn(quad quadrantSpec) []board.Position {
	var free []board.Position
	for c := quad.col; c < quad.col+quad.width; c++ {
		for r := quad.row; r < quad.row+quad.height; r++ {
			p := board.NewPosition(c, r)
			if !g.occupied[p] {
				free = append(free, p)
			}
		}
	}
	return free
}

// wallsAroundField places one random corner wall touching pos: a pair of
// adjacent right/down walls chosen so the field gains exactly one
// right-angle obstacle, matching the physical board's wall pieces.
func (g *Generator) wallsAroundField(b *board.Board, pos board.Position) {
	col, row := pos.Column(), pos.Row()
	switch board.Directions[g.rng.Intn(4)] {
	case board.Up:
		above := board.NewPosition(col, row-1)
		b.SetWall(above, false, true)
		b.SetWall(pos, true, false)
	case board.Right:
		b.SetWall(pos, true, true)
	case board.Down:
		left := board.NewPosition(col-1, row)
		b.SetWall(pos, false, true)
		b.SetWall(left, true, false)
	case board.Left:
		left := board.NewPosition(col-1, row)
		above := board.NewPosition(col, row-1)
		b.SetWall(left, true, false)
		b.SetWall(above, false, true)
	}
}

// addOuterWallProtrusions adds a handful of walls that stick out from the
// board's outer edge, spaced roughly evenly along each side.
func (g *Generator) addOuterWallProtrusions(b *board.Board) {
	side := int(g.sideLength)
	numPerWall := (side + 7) / 8
	segmentLength := side / numPerWall
	isOddLength := side%2 == 1

	indices := func() []int {
		result := make([]int, 0, numPerWall)
		segmentSum := 0
		for n := 0; n < numPerWall; n++ {
			length := segmentLength
			if isOddLength && (numPerWall-n)%2 == 1 {
				length++
			}
			start := segmentSum
			if n == 0 {
				start++
			}
			segmentSum += length
			end := segmentSum - 1
			if n == numPerWall-1 {
				end = side - 2
			}
			if end <= start {
				end = start + 1
			}
			result = append(result, start+g.rng.Intn(end-start))
		}
		return result
	}

	last := board.Coordinate(side - 1)
	for _, row := range [2]board.Coordinate{0, last} {
		for _, col := range indices() {
			p := board.NewPosition(board.Coordinate(col), row)
			b.SetWall(p, true, false)
			g.markOccupied(p)
		}
	}
	for _, col := range [2]board.Coordinate{0, last} {
		for _, row := range indices() {
			p := board.NewPosition(col, board.Coordinate(row))
			b.SetWall(p, false, true)
			g.markOccupied(p)
		}
	}
}

// markOccupied marks pos and its eight neighbors as occupied, so later
// wall placement keeps a minimum spacing between generated obstacles.
func (g *Generator) markOccupied(pos board.Position) {
	col, row := int(pos.Column()), int(pos.Row())
	for _, colAdd := range [3]int{-1, 0, 1} {
		c := col + colAdd
		if c < 0 || board.Coordinate(c) >= g.sideLength {
			continue
		}
		for _, rowAdd := range [3]int{-1, 0, 1} {
			r := row + rowAdd
			if r < 0 || board.Coordinate(r) >= g.sideLength {
				continue
			}
			g.occupied[board.NewPosition(board.Coordinate(c), board.Coordinate(r))] = true
		}
	}
}

// setCenterWalls walls in the 2x2 block at the center of the board, as the
// physical board's fixed center piece does.
func setCenterWalls(b *board.Board, side board.Coordinate) {
	point := side/2 - 1
	for _, c := range [2]board.Coordinate{point, point + 1} {
		b.SetWall(board.NewPosition(c, point-1), false, true)
		b.SetWall(board.NewPosition(c, point+1), false, true)
	}
	for _, r := range [2]board.Coordinate{point, point + 1} {
		b.SetWall(board.NewPosition(point-1, r), true, false)
		b.SetWall(board.NewPosition(point+1, r), true, false)
	}
}
