package board

import "strings"

// DrawBoard renders walls as a grid of Unicode box-drawing characters.
// Corners are resolved by board position alone rather than a weighted-edge
// algorithm, so junction glyphs do not vary with which edges are walled.
func DrawBoard(walls [][]Field) string {
	width := len(walls)
	if width == 0 {
		return ""
	}
	height := len(walls[0])

	var out strings.Builder
	for row := 0; row <= height; row++ {
		writeHorizontalLine(&out, walls, row, width, height)
		if row < height {
			writeCellRow(&out, walls, row, width)
		}
	}
	return out.String()
}

func writeHorizontalLine(out *strings.Builder, walls [][]Field, row, width, height int) {
	for col := 0; col < width; col++ {
		out.WriteRune(corner(col, row, width, height))
		if hasHorizontalWall(walls, col, row, height) {
			out.WriteString("───")
		} else {
			out.WriteString("   ")
		}
	}
	out.WriteRune(corner(width, row, width, height))
	out.WriteByte('\n')
}

func writeCellRow(out *strings.Builder, walls [][]Field, row, width int) {
	for col := 0; col < width; col++ {
		if hasVerticalWall(walls, col, row, width) {
			out.WriteRune('│')
		} else {
			out.WriteByte(' ')
		}
		out.WriteString("   ")
	}
	if hasVerticalWall(walls, width, row, width) {
		out.WriteRune('│')
	} else {
		out.WriteByte(' ')
	}
	out.WriteByte('\n')
}

// hasHorizontalWall reports whether the seam above (col, row) is walled. The
// cell above is read with wraparound, the same rule HasWallAdjacent uses, so
// an enclosed board's top edge shows the bottom row's enclosure walls.
func hasHorizontalWall(walls [][]Field, col, row, height int) bool {
	return walls[col][(row+height-1)%height].Down
}

// hasVerticalWall reports whether the seam to the left of (col, row) is
// walled: the right wall of the cell to the west, read with wraparound.
func hasVerticalWall(walls [][]Field, col, row, width int) bool {
	return walls[(col+width-1)%width][row].Right
}

// corner draws a junction picked by board position alone; the simplified
// renderer does not vary corner glyphs by which of the four edges are
// walled.
func corner(col, row, width, height int) rune {
	switch {
	case row == 0 && col == 0:
		return '┌'
	case row == 0 && col == width:
		return '┐'
	case row == height && col == 0:
		return '└'
	case row == height && col == width:
		return '┘'
	case row == 0:
		return '┬'
	case row == height:
		return '┴'
	case col == 0:
		return '├'
	case col == width:
		return '┤'
	default:
		return '┼'
	}
}
