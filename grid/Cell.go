// Package grid implements the discrete geometry that agents move on:
// integer cells, cardinal moves, grid bounds and the vector algebra
// used by the reward model.
package grid

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Cell is a single integer position on the grid
type Cell struct {
	X, Y int
}

// Add returns the cell displaced by d
func (c Cell) Add(d Cell) Cell {
	return Cell{c.X + d.X, c.Y + d.Y}
}

// Sub returns the displacement c - d
func (c Cell) Sub(d Cell) Cell {
	return Cell{c.X - d.X, c.Y - d.Y}
}

// Vec converts the cell to an r2.Vec
func (c Cell) Vec() r2.Vec {
	return r2.Vec{X: float64(c.X), Y: float64(c.Y)}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Dst2 returns the squared euclidean distance between two cells
func Dst2(p1, p2 Cell) float64 {
	return r2.Norm2(r2.Sub(p2.Vec(), p1.Vec()))
}

// Direction enumerates the cardinal moves available to learning agents
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// NumDirections is the cardinality of the action space of learning
// agents
const NumDirections = 4

// Cardinals maps each Direction to its cell displacement. Up decreases
// y, as on screen.
var Cardinals = [NumDirections]Cell{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Delta returns the displacement of the direction. Delta panics if d
// is not one of the four cardinals.
func (d Direction) Delta() Cell {
	if d < 0 || int(d) >= NumDirections {
		panic(fmt.Sprintf("delta: no such direction %d", int(d)))
	}
	return Cardinals[d]
}

// Grid describes the bounds [0, W) x [0, H) of the world
type Grid struct {
	W, H int
}

// New returns a new Grid, or an error if either dimension is not
// positive
func New(w, h int) (Grid, error) {
	if w <= 0 || h <= 0 {
		return Grid{}, fmt.Errorf("new: grid dimensions must be positive "+
			"(have %d x %d)", w, h)
	}
	return Grid{w, h}, nil
}

// Contains returns whether the cell is inside the grid
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Center returns the cell at the middle of the grid, rounding down
func (g Grid) Center() Cell {
	return Cell{g.W / 2, g.H / 2}
}

// Corner returns the cell opposite the origin
func (g Grid) Corner() Cell {
	return Cell{g.W - 1, g.H - 1}
}
