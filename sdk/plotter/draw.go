package plotter

import (
	"github.com/asciiplot/asciiplot/sdk/equation"
)

// Restore clears every cell, axes included.
func (p *Plotter) Restore() {
	for row := range p.grid {
		for col := range p.grid[row] {
			p.grid[row][col] = Blank
		}
	}
}

// Borders paints the row and the column holding math zero. When no cell
// is exactly at zero, the axis is pinned to the first row/column, or to the
// last one when the view is shifted towards it.
func (p *Plotter) Borders() {
	size := p.Size()

	colBorder, rowBorder := -1, -1
	for i := 0; i < size; i++ {
		x, y := p.ToMath(float64(i), float64(i))
		if x == 0 && colBorder < 0 {
			colBorder = i
		}
		if y == 0 && rowBorder < 0 {
			rowBorder = i
		}
	}

	if colBorder < 0 {
		colBorder = 0
		if p.offset.X < 0 {
			colBorder = size - 1
		}
	}
	if rowBorder < 0 {
		rowBorder = 0
		if p.offset.Y > 0 {
			rowBorder = size - 1
		}
	}

	for i := 0; i < size; i++ {
		p.grid[i][colBorder] = Axis
		p.grid[rowBorder][i] = Axis
	}
}

// Plot marks the cells crossed by the graph of f, column by column.
func (p *Plotter) Plot(f equation.Func) {
	for col := 0; col < p.Size(); col++ {
		x, _ := p.ToMath(float64(col), 0)
		p.plotPoint(x, f)
	}
}

// plotPoint samples f half a column before and after x and marks every row
// of x's column whose y lies within that bracket, or equals f(x).
func (p *Plotter) plotPoint(x float64, f equation.Func) {
	margin := 1 / (2 * p.scale.X)

	thisY := f(x)
	prevY := f(x - margin)
	nextY := f(x + margin)

	col, _ := p.ToGrid(x, 0)
	if col < 0 || col >= p.Size() {
		return
	}

	for row := range p.grid {
		_, y := p.ToMath(0, float64(row))
		if between(prevY, y, nextY) || y == thisY {
			p.grid[row][col] = Curve
		}
	}
}

// between reports whether y lies in [a, b] or [b, a]. Any NaN makes it
// false, infinities are valid bounds.
func between(a, y, b float64) bool {
	return (a <= y && y <= b) || (a >= y && y >= b)
}

// Redraw clears the grid, draws the axes then the curve of f. Curve
// marks win over axis marks.
func (p *Plotter) Redraw(f equation.Func) {
	p.Restore()
	p.Borders()
	p.Plot(f)
}
