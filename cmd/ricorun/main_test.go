package main

import (
	"context"
	"strings"
	"testing"

	"github.com/elektrokombinacija/ricochet-solver/internal/board"
)

func TestReadInstanceParsesProtocol(t *testing.T) {
	input := strings.Join([]string{
		"6",
		"2 2 d",
		"2 2 r",
		"end",
		"4 4 y",
		"0 0",
		"0 5",
		"5 0",
		"5 5",
	}, "\n") + "\n"

	round, start, err := readInstance(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readInstance: %v", err)
	}

	if round.Board().SideLength() != 6 {
		t.Fatalf("side length = %d, want 6", round.Board().SideLength())
	}
	if !round.Board().HasWallAdjacent(board.NewPosition(2, 2), board.Down) {
		t.Error("expected a bottom wall at (col=2,row=2)")
	}
	if !round.Board().HasWallAdjacent(board.NewPosition(2, 2), board.Right) {
		t.Error("expected a right wall at (col=2,row=2)")
	}
	if round.Target().Color != board.YellowTarget {
		t.Errorf("target color = %v, want Yellow", round.Target().Color)
	}
	if start.Get(board.Red) != board.NewPosition(0, 0) {
		t.Errorf("Red = %v, want (0,0)", start.Get(board.Red))
	}
	if start.Get(board.Yellow) != board.NewPosition(5, 5) {
		t.Errorf("Yellow = %v, want (5,5)", start.Get(board.Yellow))
	}
}

func TestSolverNamedRejectsUnknownAlgorithm(t *testing.T) {
	if _, err := solverNamed("dijkstra"); err == nil {
		t.Error("expected an error for an unknown algorithm name")
	}
	for _, name := range []string{"bfs", "a-star", "ida-star"} {
		s, err := solverNamed(name)
		if err != nil {
			t.Errorf("solverNamed(%q): %v", name, err)
		}
		if s.Name() == "" {
			t.Errorf("solverNamed(%q) has an empty Name()", name)
		}
	}
}

func TestParsedInstanceIsSolvable(t *testing.T) {
	input := strings.Join([]string{
		"6",
		"x",
		"4 4 y",
		"0 0",
		"0 5",
		"5 0",
		"5 5",
	}, "\n") + "\n"

	round, start, err := readInstance(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readInstance: %v", err)
	}

	solver, err := solverNamed("ida-star")
	if err != nil {
		t.Fatalf("solverNamed: %v", err)
	}
	if _, err := solver.Solve(context.Background(), round, start); err != nil {
		t.Fatalf("Solve: %v", err)
	}
}
