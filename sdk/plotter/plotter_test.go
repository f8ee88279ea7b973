package plotter

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/mgutz/ansi"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asciiplot/asciiplot/sdk/equation"
)

func newPlotter(t *testing.T, size int) *Plotter {
	p, err := New(size)
	require.NoError(t, err)
	return p
}

func TestNewRoundsUpToOddSize(t *testing.T) {
	tests := []struct {
		size       int
		wantSize   int
		wantOrigin int
	}{
		{1, 1, 0},
		{2, 3, 1},
		{10, 11, 5},
		{11, 11, 5},
		{43, 43, 21},
	}
	for _, tt := range tests {
		p := newPlotter(t, tt.size)
		assert.Equal(t, tt.wantSize, p.Size(), "size for %d", tt.size)
		assert.Equal(t, 1, p.Size()%2)
		assert.Equal(t, Point{Row: tt.wantOrigin, Col: tt.wantOrigin}, p.Origin(), "origin for %d", tt.size)
	}
}

func TestNewInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -10} {
		p, err := New(size)
		require.Error(t, err)
		assert.Nil(t, p)
		assert.Equal(t, ErrInvalidSize, errors.Cause(err))
	}
}

func TestSetScale(t *testing.T) {
	p := newPlotter(t, 5)
	require.NoError(t, p.SetScale(Vector{X: 0.5, Y: 4}))
	assert.Equal(t, Vector{X: 0.5, Y: 4}, p.Scale())

	for _, v := range []Vector{{X: 0, Y: 1}, {X: 1, Y: -2}, {X: math.NaN(), Y: 1}, {X: 1, Y: math.Inf(1)}} {
		err := p.SetScale(v)
		require.Error(t, err)
		assert.Equal(t, ErrInvalidScale, errors.Cause(err))
	}
	assert.Equal(t, Vector{X: 0.5, Y: 4}, p.Scale())
}

func TestToMath(t *testing.T) {
	p := newPlotter(t, 11)

	x, y := p.ToMath(5, 5)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	x, y = p.ToMath(10, 0)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 5.0, y)

	require.NoError(t, p.SetScale(Vector{X: 2, Y: 4}))
	p.SetOffset(Vector{X: 1, Y: -1})
	x, y = p.ToMath(10, 0)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 1.0, y)
}

func TestRoundTrip(t *testing.T) {
	scales := []Vector{{X: 1, Y: 1}, {X: 2, Y: 4}, {X: 0.5, Y: 0.25}, {X: 8, Y: 0.125}}
	offsets := []Vector{{}, {X: 3, Y: -7}, {X: -11, Y: 5}, {X: 22, Y: 22}}

	p := newPlotter(t, 11)
	for _, s := range scales {
		for _, o := range offsets {
			require.NoError(t, p.SetScale(s))
			p.SetOffset(o)
			for r := 0; r < p.Size(); r++ {
				for c := 0; c < p.Size(); c++ {
					x, y := p.ToMath(float64(c), float64(r))
					col, row := p.ToGrid(x, y)
					require.Equal(t, c, col, "col with scale %v offset %v", s, o)
					require.Equal(t, r, row, "row with scale %v offset %v", s, o)
				}
			}
		}
	}
}

func TestToGridFloorsToTheCell(t *testing.T) {
	p := newPlotter(t, 11)
	col, row := p.ToGrid(0.75, -0.25)
	assert.Equal(t, 5, col)
	assert.Equal(t, 5, row)

	col, _ = p.ToGrid(-5.5, 0)
	assert.Equal(t, -1, col)
}

func TestBordersOnFreshPlotter(t *testing.T) {
	p := newPlotter(t, 10)
	p.Borders()

	for i := 0; i < p.Size(); i++ {
		assert.Equal(t, Axis, p.Cell(5, i), "row 5 col %d", i)
		assert.Equal(t, Axis, p.Cell(i, 5), "row %d col 5", i)
	}
	assert.Equal(t, Blank, p.Cell(0, 0))
	assert.Equal(t, Blank, p.Cell(4, 6))
}

func TestBordersFollowOffset(t *testing.T) {
	p := newPlotter(t, 11)
	p.SetOffset(Vector{X: 2, Y: -3})
	p.Borders()

	// x = 0 at col = origin - offset.X, y = 0 at row = origin + offset.Y
	for i := 0; i < p.Size(); i++ {
		assert.Equal(t, Axis, p.Cell(i, 3))
		assert.Equal(t, Axis, p.Cell(2, i))
	}
}

// When no cell lies exactly on zero the axis is pinned to an edge. This
// fallback is implementation defined.
func TestBordersFallback(t *testing.T) {
	tests := []struct {
		name    string
		offset  Vector
		wantRow int
		wantCol int
	}{
		{"fractional positive offset", Vector{X: 0.5, Y: 0.5}, 10, 0},
		{"fractional negative offset", Vector{X: -0.5, Y: -0.5}, 0, 10},
		{"zero out of view on the left and top", Vector{X: 100, Y: -100}, 0, 0},
		{"zero out of view on the right and bottom", Vector{X: -100, Y: 100}, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlotter(t, 11)
			p.SetOffset(tt.offset)
			p.Borders()
			for i := 0; i < p.Size(); i++ {
				assert.Equal(t, Axis, p.Cell(tt.wantRow, i))
				assert.Equal(t, Axis, p.Cell(i, tt.wantCol))
			}
		})
	}
}

func TestPlotIdentity(t *testing.T) {
	p := newPlotter(t, 11)
	p.Redraw(func(x float64) float64 { return x })

	assert.Equal(t, Curve, p.Cell(5, 5), "curve goes through the origin and wins over the axes")

	lastRow := p.Size()
	for col := 0; col < p.Size(); col++ {
		var rows []int
		for row := 0; row < p.Size(); row++ {
			if p.Cell(row, col) == Curve {
				rows = append(rows, row)
			}
		}
		require.Len(t, rows, 1, "col %d", col)
		assert.Equal(t, 10-col, rows[0])
		assert.Less(t, rows[0], lastRow)
		lastRow = rows[0]
	}

	assert.Equal(t, Axis, p.Cell(5, 0))
	assert.Equal(t, Axis, p.Cell(0, 5))
}

func TestPlotWithZoom(t *testing.T) {
	p := newPlotter(t, 11)
	require.NoError(t, p.SetScale(Vector{X: 2, Y: 1}))
	p.Plot(func(x float64) float64 { return 2 * x })

	// x = (col-5)/2, y = 2x = col-5, row = 5-y
	for col := 0; col < p.Size(); col++ {
		assert.Equal(t, Curve, p.Cell(10-col, col), "col %d", col)
	}
}

func TestPlotSteepSlopeMarksSeveralRows(t *testing.T) {
	p := newPlotter(t, 11)
	p.Plot(func(x float64) float64 { return 4 * x })

	// bracket [4x-2, 4x+2] at the origin column spans rows 3 to 7
	for row := 3; row <= 7; row++ {
		assert.Equal(t, Curve, p.Cell(row, 5), "row %d", row)
	}
	assert.Equal(t, Blank, p.Cell(2, 5))
	assert.Equal(t, Blank, p.Cell(8, 5))
}

func TestPlotNaNMarksNothing(t *testing.T) {
	p := newPlotter(t, 11)
	p.Plot(func(x float64) float64 { return math.NaN() })

	for row := 0; row < p.Size(); row++ {
		for col := 0; col < p.Size(); col++ {
			assert.Equal(t, Blank, p.Cell(row, col))
		}
	}
}

func TestPlotInfinitiesAreBounds(t *testing.T) {
	p := newPlotter(t, 11)
	p.Plot(func(x float64) float64 {
		switch {
		case x < 0:
			return math.Inf(-1)
		case x > 0:
			return math.Inf(1)
		}
		return 0
	})

	for row := 0; row < p.Size(); row++ {
		assert.Equal(t, Curve, p.Cell(row, 5), "whole column around the jump")
		assert.Equal(t, Blank, p.Cell(row, 4))
		assert.Equal(t, Blank, p.Cell(row, 6))
	}
}

func TestPlotTangentPole(t *testing.T) {
	p := newPlotter(t, 43)
	require.NoError(t, p.SetScale(Vector{X: 0.125, Y: 1}))
	p.Plot(equation.Trig)

	marked := func(col int) []int {
		var rows []int
		for row := 0; row < p.Size(); row++ {
			if p.Cell(row, col) == Curve {
				rows = append(rows, row)
			}
		}
		return rows
	}

	// col 32 is x = 88, its bracket [84, 92] spans the pole at 90: every
	// y between tan(92°) = -28.6 and tan(84°) = 9.5 is marked.
	rows := marked(32)
	require.Len(t, rows, 31)
	assert.Equal(t, 12, rows[0])
	assert.Equal(t, 42, rows[len(rows)-1])

	// same on the other side, x = -88 with y from -9.5 to 28.6
	rows = marked(10)
	require.Len(t, rows, 31)
	assert.Equal(t, 0, rows[0])
	assert.Equal(t, 30, rows[len(rows)-1])

	// away from the poles the tangent stays a thin curve
	assert.Equal(t, []int{21}, marked(21))
}

func TestRestore(t *testing.T) {
	p := newPlotter(t, 5)
	p.Redraw(func(x float64) float64 { return x })
	p.Restore()
	for row := 0; row < p.Size(); row++ {
		for col := 0; col < p.Size(); col++ {
			assert.Equal(t, Blank, p.Cell(row, col))
		}
	}
	assert.Equal(t, Blank, p.Cell(-1, 99))
}

func TestRender(t *testing.T) {
	p := newPlotter(t, 3)
	p.Borders()
	theme := PlainTheme()

	side := "   " + "  ·" + "   " + "\n"
	middle := "  ·  ·  ·\n"
	assert.Equal(t, side+middle+side, p.Render(theme))

	p.Restore()
	p.Borders()
	p.Plot(func(x float64) float64 { return 0 })
	assert.Equal(t, side+"  •  •  •\n"+side, p.Render(theme))

	buf := new(bytes.Buffer)
	require.NoError(t, p.Display(buf, theme))
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))
}

func TestNewTheme(t *testing.T) {
	plain := NewTheme(ThemeConf{AxisMarker: "+", CurveMarker: "*", NoColor: true})
	assert.Equal(t, Theme{Blank: " ", Axis: "+", Curve: "*"}, plain)

	colored := NewTheme(ThemeConf{AxisColor: "black+h", CurveColor: "reset"})
	assert.Contains(t, colored.Axis, "·")
	assert.True(t, strings.HasSuffix(colored.Axis, ansi.Reset))
	assert.True(t, strings.HasPrefix(colored.Curve, ansi.Reset))
	assert.NotEqual(t, "·", colored.Axis)
}

func TestBounds(t *testing.T) {
	p := newPlotter(t, 11)
	assert.Equal(t, Bounds{MinX: -5, MaxX: 5, MinY: -5, MaxY: 5}, p.Bounds())

	require.NoError(t, p.SetScale(Vector{X: 2, Y: 0.5}))
	p.SetOffset(Vector{X: 5, Y: 0})
	assert.Equal(t, Bounds{MinX: 0, MaxX: 5, MinY: -10, MaxY: 10}, p.Bounds())
}
