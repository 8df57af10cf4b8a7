// Package view implements a Gio-based visualization of a Ricochet Robots
// round and its solved path.
package view

import (
	"context"
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/ricochet-solver/internal/board"
	"github.com/elektrokombinacija/ricochet-solver/internal/search"
)

const cellSize = 32

var robotColors = map[board.Robot]color.NRGBA{
	board.Red:    {R: 220, G: 60, B: 60, A: 255},
	board.Blue:   {R: 60, G: 110, B: 220, A: 255},
	board.Green:  {R: 60, G: 170, B: 90, A: 255},
	board.Yellow: {R: 220, G: 190, B: 60, A: 255},
}

// App is the viewer's top-level widget: a board, the path a solver found
// for it, and a playback cursor into that path.
type App struct {
	theme  *material.Theme
	round  *board.Round
	path   search.Path
	step   int // number of path.Movements already applied
	state  board.RobotPositions
	camera *Camera
}

// NewApp builds a viewer for round, solving it with solver up front so
// playback has a path to step through.
func NewApp(round *board.Round, start board.RobotPositions, solver search.Solver) (*App, error) {
	path, err := solver.Solve(context.Background(), round, start)
	if err != nil {
		return nil, err
	}
	return &App{
		theme:  material.NewTheme(),
		round:  round,
		path:   path,
		state:  start,
		camera: NewCamera(),
	}, nil
}

// Run starts the viewer's event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}
			for {
				ev, ok := gtx.Event(pointer.Filter{
					Target: tag,
					Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
				})
				if !ok {
					break
				}
				if pe, ok := ev.(pointer.Event); ok {
					a.camera.HandleEvent(pe)
				}
			}

			area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
			event.Op(gtx.Ops, tag)
			area.Pop()

			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case key.NameRightArrow:
		if a.step < len(a.path.Movements) {
			m := a.path.Movements[a.step]
			a.state = a.state.Slide(a.round.Board(), m.Robot, m.Direction)
			a.step++
		}
	case key.NameLeftArrow:
		if a.step > 0 {
			a.step--
			a.state = a.path.StartPos
			for _, m := range a.path.Movements[:a.step] {
				a.state = a.state.Slide(a.round.Board(), m.Robot, m.Direction)
			}
		}
	case key.NameHome:
		a.step = 0
		a.state = a.path.StartPos
	case "R":
		a.camera.Reset()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 24, G: 24, B: 28, A: 255})
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.layoutBoard(gtx)
		}),
	)
}

func (a *App) layoutBoard(gtx layout.Context) layout.Dimensions {
	b := a.round.Board()
	side := int(b.SideLength())

	a.drawGrid(gtx, b, side)
	a.drawTarget(gtx)
	a.drawRobots(gtx)

	size := side * cellSize
	return layout.Dimensions{Size: image.Point{X: size, Y: size}}
}

// cellRect returns the screen rectangle of cell (col, row) under the
// current camera transform.
func (a *App) cellRect(col, row int) image.Rectangle {
	x0, y0 := a.camera.WorldToScreen(float32(col*cellSize), float32(row*cellSize))
	x1, y1 := a.camera.WorldToScreen(float32((col+1)*cellSize), float32((row+1)*cellSize))
	return image.Rect(int(x0), int(y0), int(x1), int(y1))
}

func (a *App) drawGrid(gtx layout.Context, b *board.Board, side int) {
	lineColor := color.NRGBA{R: 90, G: 90, B: 100, A: 255}
	wallColor := color.NRGBA{R: 230, G: 230, B: 235, A: 255}

	for c := 0; c < side; c++ {
		for r := 0; r < side; r++ {
			cell := a.cellRect(c, r)
			paint.FillShape(gtx.Ops, lineColor, clip.Stroke{Path: clip.Rect(cell).Path(), Width: 1}.Op())

			pos := board.NewPosition(board.Coordinate(c), board.Coordinate(r))
			if b.HasWallAdjacent(pos, board.Right) {
				wall := image.Rect(cell.Max.X-2, cell.Min.Y, cell.Max.X+2, cell.Max.Y)
				paint.FillShape(gtx.Ops, wallColor, clip.Rect(wall).Op())
			}
			if b.HasWallAdjacent(pos, board.Down) {
				wall := image.Rect(cell.Min.X, cell.Max.Y-2, cell.Max.X, cell.Max.Y+2)
				paint.FillShape(gtx.Ops, wallColor, clip.Rect(wall).Op())
			}
		}
	}
}

func (a *App) drawTarget(gtx layout.Context) {
	pos := a.round.TargetPosition()
	rect := a.cellRect(int(pos.Column()), int(pos.Row()))
	inset := rect.Dx() / 4
	paint.FillShape(gtx.Ops, targetColor(a.round.Target()), clip.Rect(rect.Inset(inset)).Op())
}

func targetColor(t board.Target) color.NRGBA {
	if robot, ok := t.Color.Robot(); ok {
		c := robotColors[robot]
		c.A = 120
		return c
	}
	return color.NRGBA{R: 200, G: 200, B: 200, A: 120}
}

func (a *App) drawRobots(gtx layout.Context) {
	for _, r := range board.Robots {
		pos := a.state.Get(r)
		cell := a.cellRect(int(pos.Column()), int(pos.Row()))
		disc := clip.Ellipse(cell.Inset(cell.Dx() / 8))
		paint.FillShape(gtx.Ops, robotColors[r], disc.Op(gtx.Ops))
	}
}
