package board

// StandardBoardSize is the side length of the standard physical board.
const StandardBoardSize Coordinate = 16

// Orientation is the corner of the assembled board a quadrant has been
// rotated to occupy.
type Orientation int

const (
	UpperLeft Orientation = iota
	UpperRight
	BottomRight
	BottomLeft
)

// Orientations is the canonical assembly order used by the canonical
// 16x16 board (one quadrant per color, rotated in this order).
var Orientations = [4]Orientation{UpperLeft, UpperRight, BottomRight, BottomLeft}

func (o Orientation) String() string {
	return [...]string{"upper left", "upper right", "bottom right", "bottom left"}[o]
}

// rightRotationsTo returns how many clockwise rotations turn o into to.
func (o Orientation) rightRotationsTo(to Orientation) int {
	return (int(to) - int(o) + 4) % 4
}

// QuadColor is the color of a physical quadrant piece.
type QuadColor int

const (
	RedQuad QuadColor = iota
	BlueQuad
	GreenQuad
	YellowQuad
)

// wallDirection is the two wall kinds a quadrant definition stores,
// expressed relative to the quadrant's own (unrotated) coordinate frame.
type wallDirection int

const (
	wallDown wallDirection = iota
	wallRight
)

func (d wallDirection) rotate() wallDirection {
	if d == wallDown {
		return wallRight
	}
	return wallDown
}

type wallEntry struct {
	col, row int
	dir      wallDirection
}

type targetEntry struct {
	col, row int
	target   Target
}

// Quadrant is a quarter of the standard physical board: a color, an
// orientation, and the walls/targets placed within it, relative to its own
// unrotated coordinate frame until RotateTo is applied.
type Quadrant struct {
	Orientation Orientation
	Color       QuadColor
	walls       []wallEntry
	targets     []targetEntry
}

// RotateRight rotates the quadrant one step clockwise in place.
func (q *Quadrant) RotateRight() {
	q.Orientation = (q.Orientation + 1) % 4
	half := int(StandardBoardSize / 2)
	rotated := make([]wallEntry, len(q.walls))
	for i, w := range q.walls {
		switch w.dir {
		case wallRight:
			rotated[i] = wallEntry{col: half - w.row - 1, row: w.col, dir: w.dir.rotate()}
		case wallDown:
			rotated[i] = wallEntry{col: half - 1 - w.row - 1, row: w.col, dir: w.dir.rotate()}
		}
	}
	q.walls = rotated

	rotatedTargets := make([]targetEntry, len(q.targets))
	for i, t := range q.targets {
		rotatedTargets[i] = targetEntry{col: half - t.row - 1, row: t.col, target: t.target}
	}
	q.targets = rotatedTargets
}

// RotateTo rotates the quadrant clockwise until it reaches orient.
func (q *Quadrant) RotateTo(orient Orientation) {
	rotations := q.Orientation.rightRotationsTo(orient)
	for i := 0; i < rotations; i++ {
		q.RotateRight()
	}
}

func quad(color QuadColor, downWalls, rightWalls [][2]int, targets []targetEntry) Quadrant {
	q := Quadrant{Orientation: UpperLeft, Color: color}
	for _, w := range downWalls {
		q.walls = append(q.walls, wallEntry{col: w[0], row: w[1], dir: wallDown})
	}
	for _, w := range rightWalls {
		q.walls = append(q.walls, wallEntry{col: w[0], row: w[1], dir: wallRight})
	}
	q.targets = targets
	return q
}

func t(color TargetColor, sym Symbol) Target {
	return Target{Color: color, Symbol: sym}
}

// GenQuadrants returns the 12 canonical quadrants (3 per color, in
// red/blue/green/yellow order) making up the standard physical board.
func GenQuadrants() []Quadrant {
	return []Quadrant{
		quad(RedQuad,
			[][2]int{{0, 5}, {1, 3}, {3, 6}, {4, 0}, {5, 4}},
			[][2]int{{0, 3}, {1, 0}, {3, 6}, {4, 1}, {4, 5}},
			[]targetEntry{
				{1, 3, t(RedTarget, Triangle)},
				{3, 6, t(BlueTarget, Hexagon)},
				{4, 1, t(GreenTarget, Circle)},
				{5, 5, t(YellowTarget, Square)},
			}),
		quad(RedQuad,
			[][2]int{{0, 5}, {1, 1}, {2, 4}, {6, 1}, {7, 4}},
			[][2]int{{0, 1}, {2, 4}, {3, 0}, {6, 2}, {6, 5}},
			[]targetEntry{
				{1, 1, t(RedTarget, Triangle)},
				{2, 4, t(BlueTarget, Hexagon)},
				{6, 2, t(GreenTarget, Circle)},
				{7, 5, t(YellowTarget, Square)},
			}),
		quad(RedQuad,
			[][2]int{{0, 4}, {1, 5}, {2, 3}, {5, 2}, {7, 5}},
			[][2]int{{0, 6}, {2, 4}, {3, 0}, {5, 2}, {6, 5}},
			[]targetEntry{
				{1, 6, t(YellowTarget, Square)},
				{2, 4, t(GreenTarget, Circle)},
				{5, 2, t(BlueTarget, Hexagon)},
				{7, 5, t(RedTarget, Triangle)},
			}),
		quad(BlueQuad,
			[][2]int{{0, 3}, {2, 3}, {3, 1}, {4, 5}, {5, 3}},
			[][2]int{{2, 2}, {2, 4}, {4, 3}, {4, 5}, {5, 0}},
			[]targetEntry{
				{2, 4, t(RedTarget, Square)},
				{3, 2, t(YellowTarget, Circle)},
				{4, 5, t(GreenTarget, Hexagon)},
				{5, 3, t(BlueTarget, Triangle)},
			}),
		quad(BlueQuad,
			[][2]int{{0, 3}, {1, 2}, {2, 5}, {5, 1}, {6, 3}},
			[][2]int{{0, 2}, {2, 6}, {3, 0}, {5, 1}, {5, 4}},
			[]targetEntry{
				{1, 2, t(RedTarget, Square)},
				{2, 6, t(BlueTarget, Triangle)},
				{5, 1, t(GreenTarget, Hexagon)},
				{6, 4, t(YellowTarget, Circle)},
			}),
		quad(BlueQuad,
			[][2]int{{0, 4}, {1, 6}, {2, 0}, {4, 4}, {6, 3}},
			[][2]int{{1, 1}, {1, 6}, {4, 0}, {4, 5}, {5, 3}},
			[]targetEntry{
				{1, 6, t(GreenTarget, Hexagon)},
				{2, 1, t(YellowTarget, Circle)},
				{4, 5, t(RedTarget, Square)},
				{6, 3, t(BlueTarget, Triangle)},
			}),
		quad(GreenQuad,
			[][2]int{{0, 6}, {1, 4}, {3, 0}, {4, 5}, {6, 3}},
			[][2]int{{0, 4}, {1, 0}, {2, 1}, {4, 6}, {6, 3}},
			[]targetEntry{
				{1, 4, t(RedTarget, Circle)},
				{3, 1, t(GreenTarget, Triangle)},
				{4, 6, t(BlueTarget, Square)},
				{6, 3, t(YellowTarget, Hexagon)},
			}),
		quad(GreenQuad,
			[][2]int{{0, 5}, {1, 1}, {3, 6}, {4, 0}, {6, 3}},
			[][2]int{{1, 0}, {1, 2}, {2, 6}, {3, 1}, {6, 3}},
			[]targetEntry{
				{1, 2, t(GreenTarget, Triangle)},
				{3, 6, t(BlueTarget, Square)},
				{4, 1, t(RedTarget, Circle)},
				{6, 3, t(YellowTarget, Hexagon)},
			}),
		quad(GreenQuad,
			[][2]int{{0, 5}, {1, 1}, {3, 6}, {6, 1}, {6, 4}},
			[][2]int{{0, 2}, {2, 6}, {4, 0}, {6, 1}, {6, 5}},
			[]targetEntry{
				{1, 2, t(GreenTarget, Triangle)},
				{3, 6, t(RedTarget, Circle)},
				{6, 1, t(YellowTarget, Hexagon)},
				{6, 5, t(BlueTarget, Square)},
			}),
		quad(YellowQuad,
			[][2]int{{0, 3}, {1, 5}, {3, 4}, {5, 1}, {6, 4}, {7, 2}},
			[][2]int{{1, 6}, {2, 0}, {3, 4}, {4, 1}, {5, 5}, {7, 2}},
			[]targetEntry{
				{1, 6, t(YellowTarget, Triangle)},
				{3, 4, t(RedTarget, Hexagon)},
				{5, 1, t(BlueTarget, Circle)},
				{6, 5, t(GreenTarget, Square)},
				{7, 2, Spiral},
			}),
		quad(YellowQuad,
			[][2]int{{0, 4}, {1, 3}, {2, 1}, {3, 7}, {5, 5}, {6, 3}},
			[][2]int{{0, 3}, {2, 1}, {3, 7}, {4, 0}, {5, 4}, {5, 6}},
			[]targetEntry{
				{1, 3, t(GreenTarget, Square)},
				{3, 1, t(RedTarget, Hexagon)},
				{3, 7, Spiral},
				{5, 6, t(BlueTarget, Circle)},
				{6, 4, t(YellowTarget, Triangle)},
			}),
		quad(YellowQuad,
			[][2]int{{0, 6}, {1, 2}, {2, 5}, {5, 3}, {6, 1}, {7, 5}},
			[][2]int{{1, 3}, {2, 5}, {3, 0}, {4, 4}, {5, 1}, {7, 5}},
			[]targetEntry{
				{1, 3, t(YellowTarget, Triangle)},
				{2, 5, t(RedTarget, Hexagon)},
				{5, 4, t(GreenTarget, Square)},
				{6, 1, t(BlueTarget, Circle)},
				{7, 5, Spiral},
			}),
	}
}

// Game bundles a fully assembled board with the catalog of target
// positions on it. It is used by the board generator and by the canonical
// board (test fixtures and the viewer), never by the search engine directly.
type Game struct {
	board   *Board
	targets map[Target]Position
}

// GameFromQuadrants assembles a 16x16 Game from four quadrants, one per
// board corner, in the order they appear in quads.
func GameFromQuadrants(quads []Quadrant) *Game {
	walls := make([][]Field, StandardBoardSize)
	for c := range walls {
		walls[c] = make([]Field, StandardBoardSize)
	}
	b := &Board{side: StandardBoardSize, walls: walls}
	setCenterWalls(b)
	g := &Game{board: b, targets: make(map[Target]Position)}
	for _, q := range quads {
		g.addQuadrant(q)
	}
	b.enclose()
	return g
}

// setCenterWalls encloses the 2x2 block in the center of the board, as the
// physical board's fixed center piece does.
func setCenterWalls(b *Board) {
	half := b.side / 2
	point := half - 1
	encloseBlock(b, point, point, 2, 2)
}

// encloseBlock walls in a col/row rectangle of the given width/height,
// wrapping at the board edge exactly like the quadrant-assembly enclosure
// rules do.
func encloseBlock(b *Board, col, row Coordinate, width, height Coordinate) {
	side := b.side
	topRow := row - 1
	if row == 0 {
		topRow = side - 1
	}
	bottomRow := row + height - 1
	if row+height > side {
		bottomRow = side - 1
	}
	leftCol := col - 1
	if col == 0 {
		leftCol = side - 1
	}
	rightCol := col + width - 1
	if col+width > side {
		rightCol = side - 1
	}
	for c := col; c < col+width; c++ {
		b.walls[c][topRow].Down = true
		b.walls[c][bottomRow].Down = true
	}
	for r := row; r < row+height; r++ {
		b.walls[leftCol][r].Right = true
		b.walls[rightCol][r].Right = true
	}
}

func (g *Game) addQuadrant(q Quadrant) {
	var colAdd, rowAdd Coordinate
	switch q.Orientation {
	case UpperLeft:
		colAdd, rowAdd = 0, 0
	case UpperRight:
		colAdd, rowAdd = 8, 0
	case BottomRight:
		colAdd, rowAdd = 8, 8
	case BottomLeft:
		colAdd, rowAdd = 0, 8
	}

	for _, w := range q.walls {
		c := Coordinate(w.col) + colAdd
		r := Coordinate(w.row) + rowAdd
		switch w.dir {
		case wallDown:
			g.board.walls[c][r].Down = true
		case wallRight:
			g.board.walls[c][r].Right = true
		}
	}

	for _, tgt := range q.targets {
		c := Coordinate(tgt.col) + colAdd
		r := Coordinate(tgt.row) + rowAdd
		g.targets[tgt.target] = NewPosition(c, r)
	}
}

// NewGame bundles an already-built board with a target catalog. Used by the
// board generator, which assembles boards outside the fixed quadrant
// catalog.
func NewGame(b *Board, targets map[Target]Position) *Game {
	return &Game{board: b, targets: targets}
}

// Board returns the assembled board.
func (g *Game) Board() *Board {
	return g.board
}

// TargetPosition returns where target sits on the assembled board.
func (g *Game) TargetPosition(target Target) (Position, bool) {
	p, ok := g.targets[target]
	return p, ok
}

// CanonicalQuadrants returns the four quadrants (one per color, red first)
// used to build the canonical standard board the test fixtures and viewer
// default to: the first quadrant of each color, rotated in turn through
// upper-left, upper-right, bottom-right, bottom-left.
func CanonicalQuadrants() []Quadrant {
	all := GenQuadrants()
	chosen := make([]Quadrant, 4)
	for i := 0; i < 4; i++ {
		q := all[i*3]
		q.RotateTo(Orientations[i])
		chosen[i] = q
	}
	return chosen
}

// CanonicalGame assembles the standard 16x16 board: the first quadrant of
// each color in red/blue/green/yellow order, rotated
// upper-left/upper-right/bottom-right/bottom-left.
func CanonicalGame() *Game {
	return GameFromQuadrants(CanonicalQuadrants())
}
