package agent

import "github.com/samuelfneumann/bodyguard/grid"

// Positioner is anything with a position on the grid
type Positioner interface {
	Cell() grid.Cell
}

// Body is the position of an agent on a grid
type Body struct {
	grid grid.Grid
	cell grid.Cell
}

// NewBody returns a new Body at cell on g
func NewBody(g grid.Grid, cell grid.Cell) Body {
	return Body{grid: g, cell: cell}
}

// Cell returns the current cell of the body
func (b *Body) Cell() grid.Cell {
	return b.cell
}

// Grid returns the grid the body moves on
func (b *Body) Grid() grid.Grid {
	return b.grid
}

// MoveTo moves the body to cell and returns whether the move was
// committed. A move to the current cell, to a cell outside of the grid,
// or to a cell for which allowed returns false is rejected and leaves
// the body where it is. A nil allowed allows every cell.
func (b *Body) MoveTo(cell grid.Cell, allowed func(grid.Cell) bool) bool {
	if cell == b.cell || !b.grid.Contains(cell) {
		return false
	}
	if allowed != nil && !allowed(cell) {
		return false
	}

	b.cell = cell
	return true
}
