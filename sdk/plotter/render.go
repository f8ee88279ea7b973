package plotter

import (
	"io"
	"strings"

	"github.com/mgutz/ansi"
	"github.com/pkg/errors"
)

// separator is printed before every cell of a row.
const separator = "  "

// ThemeConf describes how marks are printed.
type ThemeConf struct {
	AxisMarker  string `toml:"axis_marker" mapstructure:"axis_marker" default:"·" json:"axis_marker"`
	AxisColor   string `toml:"axis_color" mapstructure:"axis_color" default:"black+h" json:"axis_color" comment:"mgutz/ansi style, e.g. black+h, red+b"`
	CurveMarker string `toml:"curve_marker" mapstructure:"curve_marker" default:"·" json:"curve_marker"`
	CurveColor  string `toml:"curve_color" mapstructure:"curve_color" default:"reset" json:"curve_color"`
	NoColor     bool   `toml:"no_color" mapstructure:"no_color" json:"no_color"`
}

// Theme holds the printed form of each mark.
type Theme struct {
	Blank string
	Axis  string
	Curve string
}

// NewTheme builds a theme from its configuration, coloring markers with
// ANSI escape sequences unless NoColor is set.
func NewTheme(c ThemeConf) Theme {
	axis, curve := c.AxisMarker, c.CurveMarker
	if axis == "" {
		axis = "·"
	}
	if curve == "" {
		curve = "·"
	}
	if c.NoColor {
		return Theme{Blank: " ", Axis: axis, Curve: curve}
	}
	return Theme{
		Blank: " ",
		Axis:  ansi.Color(axis, c.AxisColor),
		Curve: ansi.Color(curve, c.CurveColor),
	}
}

// PlainTheme prints marks without any escape sequence.
func PlainTheme() Theme {
	return Theme{Blank: " ", Axis: "·", Curve: "•"}
}

func (t Theme) marker(m Mark) string {
	switch m {
	case Axis:
		return t.Axis
	case Curve:
		return t.Curve
	default:
		return t.Blank
	}
}

// Render returns the grid as text, one line per row.
func (p *Plotter) Render(theme Theme) string {
	var b strings.Builder
	for _, row := range p.grid {
		for _, m := range row {
			b.WriteString(separator)
			b.WriteString(theme.marker(m))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Display writes the rendered grid to w.
func (p *Plotter) Display(w io.Writer, theme Theme) error {
	if _, err := io.WriteString(w, p.Render(theme)); err != nil {
		return errors.Wrap(err, "unable to display plotter")
	}
	return nil
}
