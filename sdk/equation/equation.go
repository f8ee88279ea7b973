package equation

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Func is a unary numeric function y = f(x) that can be plotted.
type Func func(x float64) float64

// ErrUnknownEquation is returned by Get when no equation has the given name.
var ErrUnknownEquation = errors.New("unknown equation")

// DefaultName is the equation plotted when none is configured.
const DefaultName = "trig"

// Equation is a named, documented Func.
type Equation struct {
	Name        string `cli:"name,key" json:"name" yaml:"name"`
	Formula     string `cli:"formula" json:"formula" yaml:"formula"`
	Description string `cli:"description" json:"description" yaml:"description"`
	F           Func   `cli:"-" json:"-" yaml:"-"`
}

// Line is y = x.
func Line(x float64) float64 {
	a := 1.0
	b := 0.0
	return a*x + b
}

// Trig is y = tan(x) with x read in degrees.
func Trig(x float64) float64 {
	a := 1.0
	b := 1.0 / (180 / math.Pi)
	c := 0.0
	return a*math.Tan(b*x) + c
}

// Quad is y = x².
func Quad(x float64) float64 {
	a, b, c := 1.0, 0.0, 0.0
	return a*x*x + b*x + c
}

// Cube is y = x³.
func Cube(x float64) float64 {
	a, b, c, d := 1.0, 0.0, 0.0, 0.0
	return a*x*x*x + b*x*x + c*x + d
}

// Exp is y = eˣ.
func Exp(x float64) float64 {
	return math.Pow(math.E, x)
}

var all = []Equation{
	{Name: "line", Formula: "y = x", Description: "identity line", F: Line},
	{Name: "trig", Formula: "y = tan(x°)", Description: "tangent, x in degrees", F: Trig},
	{Name: "quad", Formula: "y = x^2", Description: "parabola", F: Quad},
	{Name: "cube", Formula: "y = x^3", Description: "cubic", F: Cube},
	{Name: "exp", Formula: "y = e^x", Description: "natural exponential", F: Exp},
}

// All returns the known equations in a stable order.
func All() []Equation {
	res := make([]Equation, len(all))
	copy(res, all)
	return res
}

// Names returns the names of the known equations.
func Names() []string {
	names := make([]string, 0, len(all))
	for _, e := range all {
		names = append(names, e.Name)
	}
	return names
}

// Get returns the equation with the given name, case insensitive.
func Get(name string) (Equation, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, e := range all {
		if e.Name == n {
			return e, nil
		}
	}
	return Equation{}, errors.Wrapf(ErrUnknownEquation, "%q (available: %s)", name, strings.Join(Names(), ", "))
}
