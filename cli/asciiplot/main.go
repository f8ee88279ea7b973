package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/asciiplot/asciiplot/cli"
)

// stdout receives everything the commands print besides the get/list
// output handled by the cli package.
var stdout io.Writer = os.Stdout

func main() {
	root := rootFromSubCommands([]*cobra.Command{
		configuration(),
		equations(),
		render(),
		version(),
		view(),
	})
	if err := root.Execute(); err != nil {
		cli.ExitOnError(err)
	}
}

func rootFromSubCommands(cmds []*cobra.Command) *cobra.Command {
	root := cli.NewCommand(mainCmd, interactiveRun, cmds, cli.CommandWithoutExtraFlags)

	root.PersistentFlags().StringP("file", "f", "", "set configuration file")
	root.PersistentFlags().BoolP("verbose", "", false, "Enable verbose output")
	root.PersistentFlags().BoolP("no-color", "", false, "Disable colors")

	return root
}

var mainCmd = cli.Command{
	Name:  "asciiplot",
	Short: "Plot equations as ASCII art in your terminal",
	Long: `
Without subcommand, asciiplot draws the configured equation and waits for commands:

	+x -x +y -y   zoom in or out along an axis
	x+ x- y+ y-   move the view along an axis
	-h            print the help
	--            quit

Several commands can be chained on one line, e.g. "+x+y x-".

## Configuration

asciiplot reads the file given with --file, else ./.asciiplot.toml, else ~/.asciiplot.toml.
Generate one with:

	asciiplot config new > ~/.asciiplot.toml

Every key can be overridden with an ASCIIPLOT_ environment variable:

	ASCIIPLOT_SIZE=21 ASCIIPLOT_THEME_NO_COLOR=true asciiplot
`,
	Flags: []cli.Flag{
		{
			Name:      "size",
			ShortHand: "s",
			Usage:     "Rows and columns of the grid",
			IsValid:   isSize,
		},
		{
			Name:      "equation",
			ShortHand: "e",
			Usage:     "Equation to plot: line, trig, quad, cube or exp",
			IsValid:   isEquation,
		},
	},
}
