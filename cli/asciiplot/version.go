package main

import (
	"github.com/spf13/cobra"

	"github.com/asciiplot/asciiplot/cli"
	"github.com/asciiplot/asciiplot/sdk"
)

var versionCmd = cli.Command{
	Name:  "version",
	Short: "show asciiplot version",
}

func version() *cobra.Command {
	return cli.NewGetCommand(versionCmd, versionRun, nil)
}

func versionRun(v cli.Values) (interface{}, error) {
	return sdk.VersionCurrent(), nil
}
