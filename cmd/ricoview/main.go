// Command ricoview opens a graphical viewer for a solved Ricochet Robots
// round: the canonical board, with arrow keys stepping through an
// IDA*-computed optimal path.
package main

import (
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/ricochet-solver/internal/board"
	"github.com/elektrokombinacija/ricochet-solver/internal/search"
	"github.com/elektrokombinacija/ricochet-solver/internal/view"
)

func main() {
	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("Ricochet Robots Viewer"),
			app.Size(unit.Dp(600), unit.Dp(600)),
		)

		application, err := view.NewApp(demoRound(), demoStart(), search.NewIterativeDeepening())
		if err != nil {
			log.Fatal(err)
		}
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func demoRound() *board.Round {
	game := board.CanonicalGame()
	target := board.Target{Color: board.YellowTarget, Symbol: board.Hexagon}
	targetPos, ok := game.TargetPosition(target)
	if !ok {
		log.Fatal("ricoview: canonical board has no Yellow-Hexagon target")
	}
	return board.NewRound(game.Board(), target, targetPos)
}

func demoStart() board.RobotPositions {
	return board.NewRobotPositions([4][2]board.Coordinate{{0, 1}, {5, 4}, {7, 1}, {7, 15}})
}
