package main

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asciiplot/asciiplot/cli"
	"github.com/asciiplot/asciiplot/sdk/equation"
	"github.com/asciiplot/asciiplot/sdk/plotter"
	"github.com/asciiplot/asciiplot/sdk/session"
)

// viewFlags move the view before it is printed or described.
var viewFlags = []cli.Flag{
	{
		Name:      "size",
		ShortHand: "s",
		Usage:     "Rows and columns of the grid",
		IsValid:   isSize,
	},
	{
		Name:    "zoom-x",
		Usage:   "Zoom exponent along x, the scale being 2^zoom",
		IsValid: isInt,
	},
	{
		Name:    "zoom-y",
		Usage:   "Zoom exponent along y, the scale being 2^zoom",
		IsValid: isInt,
	},
	{
		Name:    "shift-x",
		Usage:   "Move the view along x by this many half grids",
		IsValid: isInt,
	},
	{
		Name:    "shift-y",
		Usage:   "Move the view along y by this many half grids",
		IsValid: isInt,
	},
	{
		Name:      "commands",
		ShortHand: "c",
		Type:      cli.FlagArray,
		Usage:     "Session command line to replay, can be repeated. Example: -c +x+x -c x-",
	},
}

// equationArg is the optional equation name of render and view.
var equationArg = cli.Arg{Name: "equation", IsValid: isEquation}

func isEquation(s string) bool {
	if s == "" {
		return true
	}
	_, err := equation.Get(s)
	return err == nil
}

func isInt(s string) bool {
	if s == "" {
		return true
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

func isSize(s string) bool {
	if s == "" {
		return true
	}
	i, err := strconv.Atoi(s)
	return err == nil && i > 0
}

var viewCmd = cli.Command{
	Name:  "view",
	Short: "Describe the plotted area",
	Long: `Print the grid geometry and the mathematical bounds of the view,
once zoom, shift and commands are applied.`,
	Example:      "asciiplot view quad --zoom-x 2 -c y-",
	OptionalArgs: []cli.Arg{equationArg},
	Flags:        viewFlags,
}

func view() *cobra.Command {
	return cli.NewGetCommand(viewCmd, viewRun, nil)
}

type viewDetails struct {
	Equation string         `cli:"equation,key" json:"equation" yaml:"equation"`
	Formula  string         `cli:"formula" json:"formula" yaml:"formula"`
	Size     int            `cli:"size" json:"size" yaml:"size"`
	Origin   plotter.Point  `cli:"origin" json:"origin" yaml:"origin"`
	Scale    plotter.Vector `cli:"scale" json:"scale" yaml:"scale"`
	Offset   plotter.Vector `cli:"offset" json:"offset" yaml:"offset"`
	Bounds   plotter.Bounds `cli:"bounds" json:"bounds" yaml:"bounds"`
}

func viewRun(v cli.Values) (interface{}, error) {
	ctx, conf, err := setup(v)
	if err != nil {
		return nil, err
	}
	eq, p, err := prepare(ctx, conf, v)
	if err != nil {
		return nil, err
	}

	return viewDetails{
		Equation: eq.Name,
		Formula:  eq.Formula,
		Size:     p.Size(),
		Origin:   p.Origin(),
		Scale:    p.Scale(),
		Offset:   p.Offset(),
		Bounds:   p.Bounds(),
	}, nil
}

// prepare builds the plotter of the configured equation, then applies the
// zoom, shift and commands flags through a silent session.
func prepare(ctx context.Context, conf *Configuration, v cli.Values) (equation.Equation, *plotter.Plotter, error) {
	eq, err := equation.Get(conf.Equation)
	if err != nil {
		return eq, nil, cli.WrapError(err, "unable to plot")
	}
	p, err := plotter.New(conf.Size)
	if err != nil {
		return eq, nil, cli.WrapError(err, "unable to plot")
	}

	var zoom, shift [2]int
	for i, name := range []string{"zoom-x", "zoom-y", "shift-x", "shift-y"} {
		n, err := v.GetInt(name)
		if err != nil {
			return eq, nil, err
		}
		if i < 2 {
			zoom[i] = n
		} else {
			shift[i-2] = n
		}
	}

	s := session.New(p, eq.F, session.WithOutput(io.Discard))
	if zoom[0] != 0 || zoom[1] != 0 {
		if err := s.Zoom(ctx, zoom[0], zoom[1]); err != nil {
			return eq, nil, cli.WrapError(err, "unable to zoom")
		}
	}
	if shift[0] != 0 || shift[1] != 0 {
		if err := s.Shift(ctx, shift[0], shift[1]); err != nil {
			return eq, nil, cli.WrapError(err, "unable to shift")
		}
	}

	for _, line := range v["commands"] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		active, err := s.Handle(ctx, line)
		if err != nil {
			return eq, nil, cli.WrapError(err, "command %q failed", line)
		}
		if !active {
			break
		}
	}

	p.Redraw(eq.F)
	return eq, p, nil
}
