package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asciiplot/asciiplot/cli"
	"github.com/asciiplot/asciiplot/sdk"
	"github.com/asciiplot/asciiplot/sdk/equation"
	"github.com/asciiplot/asciiplot/sdk/plotter"
)

func TestRenderRun(t *testing.T) {
	isolate(t)
	buf := new(bytes.Buffer)
	stdout = buf
	defer func() { stdout = os.Stdout }()

	require.NoError(t, renderRun(cli.Values{
		"equation": {"line"},
		"size":     {"5"},
		"no-color": {"true"},
	}))

	out := buf.String()
	assert.NotContains(t, out, "\x1b")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		assert.Len(t, []rune(l), 15)
	}
	assert.Equal(t, strings.Repeat("  ·", 5), lines[2])
}

func TestRenderRunUnknownEquation(t *testing.T) {
	isolate(t)
	err := renderRun(cli.Values{"equation": {"sin"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown equation")
}

func TestViewRun(t *testing.T) {
	isolate(t)

	i, err := viewRun(cli.Values{
		"equation": {"quad"},
		"size":     {"11"},
		"zoom-x":   {"1"},
		"shift-x":  {"1"},
		"commands": {"-y"},
	})
	require.NoError(t, err)

	d, ok := i.(viewDetails)
	require.True(t, ok)
	assert.Equal(t, "quad", d.Equation)
	assert.Equal(t, 11, d.Size)
	assert.Equal(t, plotter.Point{Row: 5, Col: 5}, d.Origin)
	assert.Equal(t, plotter.Vector{X: 2, Y: 0.5}, d.Scale)
	assert.Equal(t, plotter.Vector{X: 5, Y: 0}, d.Offset)
	assert.Equal(t, plotter.Bounds{MinX: 0, MaxX: 5, MinY: -10, MaxY: 10}, d.Bounds)
}

func TestViewRunStopsAtExit(t *testing.T) {
	isolate(t)

	i, err := viewRun(cli.Values{
		"size":     {"11"},
		"commands": {"+x", "--", "+x+y"},
	})
	require.NoError(t, err)

	d := i.(viewDetails)
	assert.Equal(t, equation.DefaultName, d.Equation)
	assert.Equal(t, plotter.Vector{X: 2, Y: 1}, d.Scale)
}

func TestViewRunInvalidZoom(t *testing.T) {
	isolate(t)
	_, err := viewRun(cli.Values{"zoom-x": {"twice"}})
	assert.Error(t, err)
}

func TestEquationCommands(t *testing.T) {
	res, err := equationListRun(cli.Values{})
	require.NoError(t, err)
	assert.Len(t, res, len(equation.All()))

	i, err := equationShowRun(cli.Values{"name": {" QUAD "}})
	require.NoError(t, err)
	assert.Equal(t, "quad", i.(equation.Equation).Name)

	_, err = equationShowRun(cli.Values{"name": {"sin"}})
	assert.Error(t, err)
}

func TestVersionRun(t *testing.T) {
	i, err := versionRun(cli.Values{})
	require.NoError(t, err)
	assert.Equal(t, sdk.VersionCurrent(), i)
}

func newRoot() *cobra.Command {
	return rootFromSubCommands([]*cobra.Command{
		configuration(),
		equations(),
		render(),
		version(),
		view(),
	})
}

func TestRootCommand(t *testing.T) {
	root := newRoot()
	assert.Equal(t, "asciiplot", root.Use)
	assert.NotNil(t, root.Run)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"config", "equation", "render", "version", "view"}, names)

	for _, f := range []string{"file", "verbose", "no-color"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(f), f)
	}
	for _, f := range []string{"size", "equation"} {
		assert.NotNil(t, root.Flags().Lookup(f), f)
	}
}

func TestRootEquationList(t *testing.T) {
	isolate(t)
	root := newRoot()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs([]string{"equation", "list", "--format", "json"})
	require.NoError(t, root.Execute())

	var res []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	require.Len(t, res, len(equation.All()))
	assert.Equal(t, "line", res[0]["name"])
}

func TestRootViewYAML(t *testing.T) {
	isolate(t)
	root := newRoot()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs([]string{"view", "cube", "--size", "21", "--format", "yaml"})
	require.NoError(t, root.Execute())

	assert.Contains(t, buf.String(), "equation: cube\n")
	assert.Contains(t, buf.String(), "size: \"21\"\n")
	assert.Contains(t, buf.String(), "origin_row: \"10\"\n")
}

// plainOutput parses the "key value" lines of a get command.
func plainOutput(t *testing.T, out string) map[string]string {
	res := map[string]string{}
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(l)
		require.NotEmpty(t, fields, "line %q", l)
		res[fields[0]] = strings.Join(fields[1:], " ")
	}
	return res
}

func TestRootViewPlain(t *testing.T) {
	isolate(t)
	root := newRoot()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs([]string{"view", "--size", "11", "--zoom-x", "1", "-c", "x+", "-c", "-y"})
	require.NoError(t, root.Execute())

	res := plainOutput(t, buf.String())
	assert.Equal(t, "trig", res["equation"])
	assert.Equal(t, "11", res["size"])
	assert.Equal(t, "5", res["origin_row"])
	assert.Equal(t, "5", res["origin_col"])
	assert.Equal(t, "2", res["scale_x"])
	assert.Equal(t, "0.5", res["scale_y"])
	assert.Equal(t, "5", res["offset_x"])
	assert.Equal(t, "0", res["offset_y"])
	assert.Equal(t, "0", res["bounds_minx"])
	assert.Equal(t, "5", res["bounds_maxx"])
	assert.Equal(t, "-10", res["bounds_miny"])
	assert.Equal(t, "10", res["bounds_maxy"])
	assert.NotContains(t, res, "origin")
}

func TestRootVersionPlain(t *testing.T) {
	root := newRoot()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())

	res := plainOutput(t, buf.String())
	assert.Equal(t, sdk.VERSION, res["version"])
	assert.Equal(t, sdk.GOOS, res["os"])
	assert.Equal(t, sdk.GOARCH, res["architecture"])
}

func TestRootRejectsInvalidValues(t *testing.T) {
	var code int
	cli.OSExit = func(c int) { code = c }
	defer func() { cli.OSExit = os.Exit }()

	for _, args := range [][]string{
		{"view", "sin"},
		{"view", "--size", "0"},
		{"view", "--zoom-y", "twice"},
		{"render", "--shift-x", "1.5"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			isolate(t)
			code = 0
			root := newRoot()
			buf := new(bytes.Buffer)
			root.SetOut(buf)
			root.SetArgs(args)
			require.NoError(t, root.Execute())
			assert.Equal(t, 1, code)
			assert.Contains(t, buf.String(), "is invalid")
			assert.NotContains(t, buf.String(), "origin_row")
		})
	}
}
