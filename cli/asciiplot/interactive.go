package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/rockbears/log"

	"github.com/asciiplot/asciiplot/cli"
	"github.com/asciiplot/asciiplot/sdk/equation"
	"github.com/asciiplot/asciiplot/sdk/plotter"
	"github.com/asciiplot/asciiplot/sdk/session"
)

const prompt = "> "

func interactiveRun(v cli.Values) error {
	ctx, conf, err := setup(v)
	if err != nil {
		return err
	}

	eq, err := equation.Get(conf.Equation)
	if err != nil {
		return cli.WrapError(err, "unable to start session")
	}
	p, err := plotter.New(conf.Size)
	if err != nil {
		return cli.WrapError(err, "unable to start session")
	}

	out := int(os.Stdout.Fd())
	if w := cli.TerminalWidth(out); w > 0 && w < 3*p.Size() {
		log.Warn(ctx, "terminal is %d columns wide, the plot needs %d", w, 3*p.Size())
	}

	if conf.Theme.NoColor {
		color.NoColor = true
	}

	opts := []session.Option{
		session.WithOutput(stdout),
		session.WithTheme(plotter.NewTheme(conf.Theme)),
	}

	var r cli.LineReader
	if cli.IsTerminal(int(os.Stdin.Fd())) {
		r, err = cli.NewReadline(prompt, conf.HistoryFile, os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		if conf.ClearScreen && cli.IsTerminal(out) {
			opts = append(opts, session.WithClearScreen(cli.ClearScreen))
		}
	} else {
		r = cli.NewPlainReader(prompt, os.Stdin, stdout)
	}
	defer r.Close() //nolint

	log.Info(ctx, "plotting %s (%s) on a %dx%d grid", eq.Name, eq.Formula, p.Size(), p.Size())
	return session.New(p, eq.F, opts...).Run(ctx, r)
}
