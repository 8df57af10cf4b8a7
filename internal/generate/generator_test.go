package generate

import (
	"testing"

	"github.com/elektrokombinacija/ricochet-solver/internal/board"
)

func TestSameSeedProducesSameBoard(t *testing.T) {
	a := NewSeeded(9, 42).GenerateBoard()
	b := NewSeeded(9, 42).GenerateBoard()

	for c := 0; c < 9; c++ {
		for r := 0; r < 9; r++ {
			af := a.Walls()[c][r]
			bf := b.Walls()[c][r]
			if af != bf {
				t.Fatalf("walls[%d][%d] = %+v, want %+v (same seed should reproduce the board)", c, r, af, bf)
			}
		}
	}
}

func TestDifferentSeedsTendToDiffer(t *testing.T) {
	a := NewSeeded(16, 1).GenerateBoard()
	b := NewSeeded(16, 2).GenerateBoard()

	identical := true
	for c := 0; c < 16 && identical; c++ {
		for r := 0; r < 16; r++ {
			if a.Walls()[c][r] != b.Walls()[c][r] {
				identical = false
				break
			}
		}
	}
	if identical {
		t.Error("two different seeds produced byte-identical boards")
	}
}

func TestGenerateBoardIsEnclosed(t *testing.T) {
	b := NewSeeded(16, 7).GenerateBoard()
	for c := 0; c < 16; c++ {
		if !b.Walls()[c][15].Down {
			t.Errorf("column %d missing bottom enclosure", c)
		}
		if !b.Walls()[15][c].Right {
			t.Errorf("row %d missing right enclosure", c)
		}
	}
}

func TestGenerateGameAssignsEveryCatalogTarget(t *testing.T) {
	game := NewSeeded(16, 99).GenerateGame()
	for _, target := range board.Targets {
		if _, ok := game.TargetPosition(target); !ok {
			t.Errorf("generated game is missing target %+v", target)
		}
	}
}

func TestNewPanicsOnTinyBoard(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected NewSeeded to panic for a side length below 3")
		}
	}()
	NewSeeded(2, 1)
}
