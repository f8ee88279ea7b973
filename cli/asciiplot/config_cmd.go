package main

import (
	"fmt"

	toml "github.com/pelletier/go-toml"
	"github.com/spf13/cobra"

	"github.com/asciiplot/asciiplot/cli"
)

var configCmd = cli.Command{
	Name:  "config",
	Short: "Manage asciiplot configuration",
}

func configuration() *cobra.Command {
	return cli.NewCommand(configCmd, nil, []*cobra.Command{
		cli.NewCommand(configNewCmd, configNewRun, nil, cli.CommandWithoutExtraFlags),
		cli.NewCommand(configCheckCmd, configCheckRun, nil, cli.CommandWithoutExtraFlags),
	})
}

var configNewCmd = cli.Command{
	Name:  "new",
	Short: "Generate a configuration file with default values",
	Long: `
Generate the whole configuration file
	$ asciiplot config new > ~/.asciiplot.toml

or the matching environment variables
	$ asciiplot config new --env
`,
	Flags: []cli.Flag{
		{
			Name:  "env",
			Type:  cli.FlagBool,
			Usage: "Print configuration as environment variable",
		},
	},
}

func configNewRun(v cli.Values) error {
	conf := defaultConfig()
	if v.GetBool("env") {
		return configPrintToEnv(conf, stdout)
	}

	btes, err := toml.Marshal(conf)
	if err != nil {
		return cli.WrapError(err, "unable to marshal configuration")
	}
	fmt.Fprintln(stdout, string(btes))
	return nil
}

var configCheckCmd = cli.Command{
	Name:  "check",
	Short: "Check a configuration file",
	Args: []cli.Arg{
		{Name: "path"},
	},
}

func configCheckRun(v cli.Values) error {
	path := v.GetString("path")
	if _, _, err := loadConfig(cli.Values{"file": {path}}); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: configuration OK\n", path)
	return nil
}
