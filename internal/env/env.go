// Package env wraps the move simulator in a step/reset surface suitable
// for reinforcement-learning style training loops. It depends on board's
// state primitives (C2-C5) and on the board generator, and never touches
// the search package:
// an environment step is a single slide, not a search for an optimal path.
package env

import (
	"fmt"
	"math/rand"

	"github.com/elektrokombinacija/ricochet-solver/internal/board"
	"github.com/elektrokombinacija/ricochet-solver/internal/generate"
)

// Action is one step: move robot one slide in direction.
type Action struct {
	Robot     board.Robot
	Direction board.Direction
}

// ActionFromInt decodes a flat action index in [0, 16): the robot is
// index/4 in canonical robot order, the direction index%4 in canonical
// direction order.
func ActionFromInt(index int) (Action, error) {
	if index < 0 || index >= 16 {
		return Action{}, fmt.Errorf("env: action index %d outside [0, 16)", index)
	}
	return Action{
		Robot:     board.Robots[index/4],
		Direction: board.Directions[index%4],
	}, nil
}

// Int encodes the action as its flat index, the inverse of ActionFromInt.
func (a Action) Int() int {
	return int(a.Robot)*4 + int(a.Direction)
}

// Observation is what a caller sees after a step or reset: the board's
// wall layout, the four robot positions in canonical order, and the
// target to reach.
type Observation struct {
	Walls          [][]board.Field
	RobotPositions board.RobotPositions
	TargetPosition board.Position
	Target         board.Target
}

// WallMode controls whether Reset keeps the existing board or synthesizes
// a new one.
type WallMode int

const (
	// FixedWalls keeps the board used at construction across resets.
	FixedWalls WallMode = iota
	// RandomWalls synthesizes a new board on every reset.
	RandomWalls
)

// Config parameterizes a new Environment.
type Config struct {
	BoardSize board.Coordinate
	Walls     WallMode
	Target    board.Target
	Seed      int64
}

// Environment hosts one Round and a mutable current state, exposing Step
// and Reset the way a training loop expects. It is a non-core collaborator:
// it never computes an optimal path, only applies single moves.
type Environment struct {
	config     Config
	generator  *generate.Generator
	rng        *rand.Rand
	round      *board.Round
	starting   board.RobotPositions
	current    board.RobotPositions
	stepsTaken int
}

// New creates an Environment from cfg, seeded for reproducibility.
func New(cfg Config) *Environment {
	e := &Environment{
		config:    cfg,
		generator: generate.NewSeeded(cfg.BoardSize, cfg.Seed),
		rng:       rand.New(rand.NewSource(cfg.Seed + 1)),
	}
	e.round = e.newRound()
	e.starting = e.newStartingPositions()
	e.current = e.starting
	return e
}

// BoardSize returns the side length of the environment's board.
func (e *Environment) BoardSize() board.Coordinate {
	return e.config.BoardSize
}

// Step applies action to the current state and reports whether the
// round's win predicate is now satisfied.
func (e *Environment) Step(action Action) (obs Observation, reward float64, done bool) {
	e.current = e.current.Slide(e.round.Board(), action.Robot, action.Direction)
	e.stepsTaken++

	if e.round.TargetReached(e.current) {
		return e.observation(), 1.0, true
	}
	return e.observation(), 0.0, false
}

// Reset starts a new episode: if the environment was configured with
// RandomWalls, a fresh board is synthesized; either way, a fresh starting
// state is drawn (redrawn until it doesn't already satisfy the win
// predicate, so every episode requires at least one step).
func (e *Environment) Reset() Observation {
	if e.config.Walls == RandomWalls {
		e.round = e.newRound()
	}
	e.starting = e.newStartingPositions()
	e.current = e.starting
	e.stepsTaken = 0
	return e.observation()
}

// State returns the current observation without mutating anything.
func (e *Environment) State() Observation {
	return e.observation()
}

// StepsTaken returns the number of Step calls since the last Reset.
func (e *Environment) StepsTaken() int {
	return e.stepsTaken
}

func (e *Environment) observation() Observation {
	return Observation{
		Walls:          e.round.Board().Walls(),
		RobotPositions: e.current,
		TargetPosition: e.round.TargetPosition(),
		Target:         e.round.Target(),
	}
}

func (e *Environment) newRound() *board.Round {
	game := e.generator.GenerateGame()
	targetPos, ok := game.TargetPosition(e.config.Target)
	if !ok {
		panic("env: target has no assigned position")
	}
	return board.NewRound(game.Board(), e.config.Target, targetPos)
}

func (e *Environment) newStartingPositions() board.RobotPositions {
	for {
		pos := e.randomPositions()
		if !e.round.TargetReached(pos) {
			return pos
		}
	}
}

// randomPositions draws four distinct random cells, in canonical robot
// order, using the environment's own seeded random source so episodes stay
// reproducible from the configured seed.
func (e *Environment) randomPositions() board.RobotPositions {
	side := e.config.BoardSize
	var coords [4][2]board.Coordinate
	used := map[board.Position]bool{}
	for i := range coords {
		for {
			p := board.NewPosition(board.Coordinate(e.rng.Intn(int(side))), board.Coordinate(e.rng.Intn(int(side))))
			if used[p] {
				continue
			}
			used[p] = true
			coords[i] = [2]board.Coordinate{p.Column(), p.Row()}
			break
		}
	}
	return board.NewRobotPositions(coords)
}
