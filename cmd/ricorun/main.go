// Command ricorun reads a puzzle instance from stdin and prints its
// optimal solution length (and, with -v, the numbered move list).
//
// Input format, one item per line:
//
//	side_length
//	row col {d|r}        (repeated; one line per interior wall)
//	(blank line or any single-field line ends the wall list)
//	row col {r|b|g|y}    (the target cell and its color)
//	row col              (repeated exactly four times: red, blue, green, yellow)
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/elektrokombinacija/ricochet-solver/internal/board"
	"github.com/elektrokombinacija/ricochet-solver/internal/search"
)

func main() {
	algoName := flag.String("algo", "ida-star", "search algorithm to use: bfs, a-star, or ida-star")
	verbose := flag.Bool("v", false, "print the numbered move list in addition to the move count")
	flag.Parse()

	solver, err := solverNamed(*algoName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	round, start, err := readInstance(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ricorun:", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Println(board.DrawBoard(round.Board().Walls()))
	}

	path, err := solver.Solve(context.Background(), round, start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ricorun:", err)
		os.Exit(1)
	}

	fmt.Println(path.Len())
	if *verbose {
		for i, m := range path.Movements {
			fmt.Printf(" %2d  %-8s%-6s\n", i+1, m.Robot, m.Direction)
		}
	}
}

func solverNamed(name string) (search.Solver, error) {
	switch name {
	case "bfs":
		return search.NewBreadthFirst(), nil
	case "a-star":
		return search.NewAStar(), nil
	case "ida-star":
		return search.NewIterativeDeepening(), nil
	default:
		return nil, fmt.Errorf("unknown -algo %q (want bfs, a-star, or ida-star)", name)
	}
}

// readInstance parses the stdin protocol into a Round and starting
// RobotPositions.
func readInstance(r io.Reader) (*board.Round, board.RobotPositions, error) {
	scanner := bufio.NewScanner(r)

	side, err := readInt(scanner)
	if err != nil {
		return nil, board.RobotPositions{}, fmt.Errorf("reading side length: %w", err)
	}
	b := board.NewEmptyBoard(board.Coordinate(side))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		parts := strings.Fields(line)
		if len(parts) < 3 {
			break
		}
		row, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, board.RobotPositions{}, fmt.Errorf("parsing wall row: %w", err)
		}
		col, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, board.RobotPositions{}, fmt.Errorf("parsing wall column: %w", err)
		}
		pos := board.NewPosition(board.Coordinate(col), board.Coordinate(row))
		switch parts[2] {
		case "d":
			b.SetWall(pos, false, true)
		case "r":
			b.SetWall(pos, true, false)
		default:
			return nil, board.RobotPositions{}, fmt.Errorf("unknown wall direction %q", parts[2])
		}
	}

	if !scanner.Scan() {
		return nil, board.RobotPositions{}, fmt.Errorf("expected a target line after the wall list")
	}
	targetLine := strings.Fields(strings.TrimSpace(scanner.Text()))
	if len(targetLine) < 3 {
		return nil, board.RobotPositions{}, fmt.Errorf("malformed target line %q", scanner.Text())
	}
	targetRow, _ := strconv.Atoi(targetLine[0])
	targetCol, _ := strconv.Atoi(targetLine[1])
	target, err := targetFromCode(targetLine[2])
	if err != nil {
		return nil, board.RobotPositions{}, err
	}
	targetPos := board.NewPosition(board.Coordinate(targetCol), board.Coordinate(targetRow))

	var coords [4][2]board.Coordinate
	for i := 0; i < 4; i++ {
		if !scanner.Scan() {
			return nil, board.RobotPositions{}, fmt.Errorf("expected four robot lines, got %d", i)
		}
		parts := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(parts) < 2 {
			return nil, board.RobotPositions{}, fmt.Errorf("malformed robot line %q", scanner.Text())
		}
		row, _ := strconv.Atoi(parts[0])
		col, _ := strconv.Atoi(parts[1])
		coords[i] = [2]board.Coordinate{board.Coordinate(col), board.Coordinate(row)}
	}

	round := board.NewRound(b, target, targetPos)
	start := board.NewRobotPositions(coords)
	return round, start, nil
}

func targetFromCode(code string) (board.Target, error) {
	switch code {
	case "r":
		return board.Target{Color: board.RedTarget, Symbol: board.Triangle}, nil
	case "b":
		return board.Target{Color: board.BlueTarget, Symbol: board.Triangle}, nil
	case "g":
		return board.Target{Color: board.GreenTarget, Symbol: board.Triangle}, nil
	case "y":
		return board.Target{Color: board.YellowTarget, Symbol: board.Triangle}, nil
	default:
		return board.Target{}, fmt.Errorf("unknown target color code %q", code)
	}
}

func readInt(scanner *bufio.Scanner) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("unexpected end of input")
	}
	return strconv.Atoi(strings.TrimSpace(scanner.Text()))
}
