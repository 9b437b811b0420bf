package grid

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Starter samples cells uniformly from a Grid. Each coordinate is drawn
// from its own uniform categorical distribution over (0, 1, ... N-1).
type Starter struct {
	grid Grid
	x, y distuv.Categorical
	rng  *rand.Rand
}

// NewStarter returns a new Starter over g seeded with seed
func NewStarter(g Grid, seed uint64) *Starter {
	source := rand.NewSource(seed)

	return &Starter{
		grid: g,
		x:    distuv.NewCategorical(uniform(g.W), source),
		y:    distuv.NewCategorical(uniform(g.H), source),
		rng:  rand.New(source),
	}
}

// Start returns a random cell of the grid
func (s *Starter) Start() Cell {
	return Cell{int(s.x.Rand()), int(s.y.Rand())}
}

// StartWhere returns a random cell for which allowed returns true, and
// whether such a cell exists. Cells are drawn at random first; if every
// draw is rejected, a cell is chosen uniformly among all allowed cells.
func (s *Starter) StartWhere(allowed func(Cell) bool) (Cell, bool) {
	for i := 0; i < s.grid.W*s.grid.H; i++ {
		if c := s.Start(); allowed(c) {
			return c, true
		}
	}

	var cells []Cell
	for x := 0; x < s.grid.W; x++ {
		for y := 0; y < s.grid.H; y++ {
			if c := (Cell{x, y}); allowed(c) {
				cells = append(cells, c)
			}
		}
	}
	if len(cells) == 0 {
		return Cell{}, false
	}
	return cells[s.rng.Intn(len(cells))], true
}

// Stepper samples bounded random steps, each coordinate of the step
// drawn uniformly from (-1, 0, 1)
type Stepper struct {
	dx, dy distuv.Categorical
}

// NewStepper returns a new Stepper seeded with seed
func NewStepper(seed uint64) *Stepper {
	source := rand.NewSource(seed)

	return &Stepper{
		dx: distuv.NewCategorical(uniform(3), source),
		dy: distuv.NewCategorical(uniform(3), source),
	}
}

// Step returns a random displacement
func (s *Stepper) Step() Cell {
	return Cell{int(s.dx.Rand()) - 1, int(s.dy.Rand()) - 1}
}

// uniform returns the weights of a uniform categorical distribution
// over n outcomes
func uniform(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1.0 / float64(n)
	}
	return weights
}
