package main

import (
	"github.com/spf13/cobra"

	"github.com/asciiplot/asciiplot/cli"
	"github.com/asciiplot/asciiplot/sdk/plotter"
)

var renderCmd = cli.Command{
	Name:  "render",
	Short: "Print the plot of an equation and exit",
	Example: `asciiplot render quad --size 21
asciiplot render exp --no-color -c +y+y -c x- > exp.txt`,
	OptionalArgs: []cli.Arg{equationArg},
	Flags:        viewFlags,
}

func render() *cobra.Command {
	return cli.NewCommand(renderCmd, renderRun, nil, cli.CommandWithoutExtraFlags)
}

func renderRun(v cli.Values) error {
	ctx, conf, err := setup(v)
	if err != nil {
		return err
	}
	_, p, err := prepare(ctx, conf, v)
	if err != nil {
		return err
	}
	return p.Display(stdout, plotter.NewTheme(conf.Theme))
}
