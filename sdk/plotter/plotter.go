package plotter

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSize is returned when a plotter is created with a non positive size.
	ErrInvalidSize = errors.New("invalid plotter size")
	// ErrInvalidScale is returned when a scale component is not strictly positive.
	ErrInvalidScale = errors.New("invalid plotter scale")
)

// Mark is the content of a grid cell.
type Mark int

const (
	Blank Mark = iota
	Axis
	Curve
)

// Point is a grid cell position.
type Point struct {
	Row int `json:"row" yaml:"row" cli:"row"`
	Col int `json:"col" yaml:"col" cli:"col"`
}

// Vector holds a per axis value.
type Vector struct {
	X float64 `json:"x" yaml:"x" cli:"x"`
	Y float64 `json:"y" yaml:"y" cli:"y"`
}

// Plotter owns a square grid of marks and the transform between grid
// cells and math coordinates.
//
// Offset is expressed in grid cells, Scale in grid cells per math unit.
// The grid is cleared and redrawn from scratch on each Redraw.
type Plotter struct {
	grid   [][]Mark
	origin Point
	offset Vector
	scale  Vector
}

// New returns a plotter of the given size, rounded up to the next odd
// number so that a center cell exists.
func New(size int) (*Plotter, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size must be positive, got %d", size)
	}
	if size%2 == 0 {
		size++
	}

	p := &Plotter{
		scale: Vector{X: 1, Y: 1},
	}
	p.grid = make([][]Mark, size)
	for row := range p.grid {
		p.grid[row] = make([]Mark, size)
	}

	// Rows and columns are 0-indexed: the center of an odd size s is s/2.
	p.origin = Point{Row: size / 2, Col: size / 2}
	return p, nil
}

// Size returns the number of rows (and columns) of the grid.
func (p *Plotter) Size() int {
	return len(p.grid)
}

// Origin returns the cell mapped to math (0,0) when offset is zero.
func (p *Plotter) Origin() Point {
	return p.origin
}

// Offset returns the current pan offset, in grid cells.
func (p *Plotter) Offset() Vector {
	return p.offset
}

// SetOffset pans the view.
func (p *Plotter) SetOffset(v Vector) {
	p.offset = v
}

// Scale returns the current scale, in grid cells per math unit.
func (p *Plotter) Scale() Vector {
	return p.scale
}

// SetScale changes the zoom. Both components must be strictly positive.
func (p *Plotter) SetScale(v Vector) error {
	if !(v.X > 0) || !(v.Y > 0) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
		return errors.Wrapf(ErrInvalidScale, "scale must be positive and finite, got %vx %vy", v.X, v.Y)
	}
	p.scale = v
	return nil
}

// Cell returns the mark at the given position. Out of grid positions are Blank.
func (p *Plotter) Cell(row, col int) Mark {
	if !p.inside(row, col) {
		return Blank
	}
	return p.grid[row][col]
}

func (p *Plotter) inside(row, col int) bool {
	return row >= 0 && col >= 0 && row < len(p.grid) && col < len(p.grid)
}

// ToMath converts a grid position to math coordinates. Rows grow
// downwards while y grows upwards.
func (p *Plotter) ToMath(col, row float64) (x, y float64) {
	x = (col - float64(p.origin.Col) + p.offset.X) / p.scale.X
	y = -(row - float64(p.origin.Row) - p.offset.Y) / p.scale.Y
	return x, y
}

// ToGrid converts math coordinates to a grid position. It is the inverse
// of ToMath, floored to the cell; y is negated back since rows grow
// downwards.
func (p *Plotter) ToGrid(x, y float64) (col, row int) {
	col = int(math.Floor(x*p.scale.X + float64(p.origin.Col) - p.offset.X))
	row = int(math.Floor(-y*p.scale.Y + float64(p.origin.Row) + p.offset.Y))
	return col, row
}

// Bounds describes the math window covered by the grid.
type Bounds struct {
	MinX float64 `json:"min_x" yaml:"min_x" cli:"min_x"`
	MaxX float64 `json:"max_x" yaml:"max_x" cli:"max_x"`
	MinY float64 `json:"min_y" yaml:"min_y" cli:"min_y"`
	MaxY float64 `json:"max_y" yaml:"max_y" cli:"max_y"`
}

// Bounds returns the math coordinates of the first and last cells.
func (p *Plotter) Bounds() Bounds {
	last := float64(p.Size() - 1)
	minX, maxY := p.ToMath(0, 0)
	maxX, minY := p.ToMath(last, last)
	return Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}
