package main

import (
	"github.com/spf13/cobra"

	"github.com/asciiplot/asciiplot/cli"
	"github.com/asciiplot/asciiplot/sdk/equation"
)

var equationCmd = cli.Command{
	Name:    "equation",
	Aliases: []string{"equations", "eq"},
	Short:   "Manage plottable equations",
}

func equations() *cobra.Command {
	return cli.NewCommand(equationCmd, nil, []*cobra.Command{
		cli.NewListCommand(equationListCmd, equationListRun, nil),
		cli.NewGetCommand(equationShowCmd, equationShowRun, nil),
	})
}

var equationListCmd = cli.Command{
	Name:    "list",
	Aliases: []string{"ls"},
	Short:   "List available equations",
}

func equationListRun(v cli.Values) (cli.ListResult, error) {
	return cli.AsListResult(equation.All()), nil
}

var equationShowCmd = cli.Command{
	Name:  "show",
	Short: "Show an equation",
	Args: []cli.Arg{
		{Name: "name"},
	},
}

func equationShowRun(v cli.Values) (interface{}, error) {
	eq, err := equation.Get(v.GetString("name"))
	if err != nil {
		return nil, cli.WrapError(err, "unable to show equation")
	}
	return eq, nil
}
