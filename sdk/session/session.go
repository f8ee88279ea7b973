// Package session drives a plotter from short interactive commands.
//
// A command line is cut into 2-character tokens once lower-cased and
// stripped of spaces:
//
//	+x -x +y -y   zoom in/out along an axis (scale = 2^exponent)
//	x+ x- y+ y-   pan along an axis by one origin width
//	-h            print the help
//	--            leave the session
//
// Unknown tokens are ignored.
package session

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rockbears/log"

	"github.com/asciiplot/asciiplot/sdk/equation"
	plotlog "github.com/asciiplot/asciiplot/sdk/log"
	"github.com/asciiplot/asciiplot/sdk/plotter"
)

const helpText = `Modify Plotter Zoom lvl: (+ or -) followed by (x or y)
Modify Plotter Position: (x or y) followed by (+ or -)
Output help menu: -h
Exit the program: --
`

// LineReader reads one command line at a time. It returns io.EOF when
// there is nothing left to read.
type LineReader interface {
	Readline() (string, error)
}

// Option configures a Session.
type Option func(*Session)

// WithOutput sets where the grid and the reports are written.
func WithOutput(w io.Writer) Option {
	return func(s *Session) { s.out = w }
}

// WithTheme sets how grid marks are printed.
func WithTheme(t plotter.Theme) Option {
	return func(s *Session) { s.theme = t }
}

// WithClearScreen registers a func called before each redraw.
func WithClearScreen(f func()) Option {
	return func(s *Session) { s.clear = f }
}

// Session holds the state of an interactive plotting session: the
// plotter, the plotted function and the accumulated zoom exponents.
type Session struct {
	plotter *plotter.Plotter
	f       equation.Func
	zoomX   int
	zoomY   int
	out     io.Writer
	theme   plotter.Theme
	clear   func()
	report  *color.Color
}

// New returns a session plotting f on p.
func New(p *plotter.Plotter, f equation.Func, opts ...Option) *Session {
	s := &Session{
		plotter: p,
		f:       f,
		out:     os.Stdout,
		theme:   plotter.PlainTheme(),
		report:  color.New(color.FgCyan),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Plotter returns the plotter driven by the session.
func (s *Session) Plotter() *plotter.Plotter {
	return s.plotter
}

// ZoomExponents returns the accumulated zoom exponents.
func (s *Session) ZoomExponents() (x, y int) {
	return s.zoomX, s.zoomY
}

// Tokenize cuts a command line into 2-character tokens. The last token
// is shorter when the stripped line has an odd length.
func Tokenize(line string) []string {
	line = strings.ReplaceAll(strings.TrimSpace(strings.ToLower(line)), " ", "")
	runes := []rune(line)

	var tokens []string
	for i := 0; i < len(runes); i += 2 {
		end := i + 2
		if end > len(runes) {
			end = len(runes)
		}
		tokens = append(tokens, string(runes[i:end]))
	}
	return tokens
}

// Start draws the plotter and prints the help.
func (s *Session) Start(ctx context.Context) error {
	if err := s.Display(ctx); err != nil {
		return err
	}
	return s.Help()
}

// Help prints the available commands.
func (s *Session) Help() error {
	_, err := io.WriteString(s.out, helpText)
	return errors.WithStack(err)
}

// Handle interprets a command line. It returns false once the session
// must stop.
//
// Within a line the last zoom (or pan) token of an axis wins. "-h" and
// "--" end the line immediately, dropping what was read before them.
// Zoom is applied before pan, each followed by a redraw.
func (s *Session) Handle(ctx context.Context, line string) (bool, error) {
	ctx = context.WithValue(ctx, plotlog.Command, line)

	var zoomX, zoomY, shiftX, shiftY int
	for _, token := range Tokenize(line) {
		switch token {
		case "+x":
			zoomX = 1
		case "-x":
			zoomX = -1
		case "+y":
			zoomY = 1
		case "-y":
			zoomY = -1
		case "x+":
			shiftX = 1
		case "x-":
			shiftX = -1
		case "y+":
			shiftY = 1
		case "y-":
			shiftY = -1
		case "-h":
			return true, s.Help()
		case "--":
			log.Debug(ctx, "session: exit requested")
			return false, nil
		default:
			log.Debug(ctx, "session: ignoring token %q", token)
		}
	}

	if zoomX != 0 || zoomY != 0 {
		if err := s.Zoom(ctx, zoomX, zoomY); err != nil {
			return true, err
		}
	}
	if shiftX != 0 || shiftY != 0 {
		if err := s.Shift(ctx, shiftX, shiftY); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Zoom adds dx and dy to the zoom exponents, then redraws.
func (s *Session) Zoom(ctx context.Context, dx, dy int) error {
	zoomX, zoomY := s.zoomX+dx, s.zoomY+dy
	scale := plotter.Vector{
		X: math.Pow(2, float64(zoomX)),
		Y: math.Pow(2, float64(zoomY)),
	}
	if err := s.plotter.SetScale(scale); err != nil {
		return errors.Wrapf(err, "unable to zoom to 2^%d x 2^%d", zoomX, zoomY)
	}
	s.zoomX, s.zoomY = zoomX, zoomY
	log.Debug(ctx, "session: zoom exponents x=%d y=%d", zoomX, zoomY)

	if err := s.Display(ctx); err != nil {
		return err
	}

	s.report.Fprintf(s.out, "Plotter scale => %sx -> %sy\n", formatFloat(scale.X), formatFloat(scale.Y))
	fmt.Fprintf(s.out, "X-Axis: %.2f, i.e 1x => %.2f, units\n", scale.X, 1/scale.X)
	fmt.Fprintf(s.out, "Y-Axis: %.2f, i.e 1y => %.2f, units\n", scale.Y, 1/scale.Y)
	return nil
}

// Shift pans the view by dx and dy origin widths, then redraws.
func (s *Session) Shift(ctx context.Context, dx, dy int) error {
	origin := s.plotter.Origin()
	offset := s.plotter.Offset()
	offset.X += float64(dx * origin.Col)
	offset.Y += float64(dy * origin.Row)
	s.plotter.SetOffset(offset)
	log.Debug(ctx, "session: offset x=%v y=%v", offset.X, offset.Y)

	if err := s.Display(ctx); err != nil {
		return err
	}

	scale := s.plotter.Scale()
	s.report.Fprintf(s.out, "Plotter shift => X: %s, Y: %s\n", formatFloat(offset.X), formatFloat(offset.Y))
	fmt.Fprintf(s.out, "X-Axis: moved %.2f units away from centre\n", offset.X/scale.X)
	fmt.Fprintf(s.out, "Y-Axis: moved %.2f units away from centre\n", offset.Y/scale.Y)
	return nil
}

// formatFloat prints f without exponent nor trailing zeros.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Display redraws the plotter from scratch and prints it.
func (s *Session) Display(ctx context.Context) error {
	if s.clear != nil {
		s.clear()
	}
	s.plotter.Redraw(s.f)
	log.Debug(ctx, "session: redraw %dx%d", s.plotter.Size(), s.plotter.Size())
	return s.plotter.Display(s.out, s.theme)
}

// Run starts the session then handles lines from r until "--", the end
// of the input or the cancellation of ctx.
func (s *Session) Run(ctx context.Context, r LineReader) error {
	if err := s.Start(ctx); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := r.Readline()
		if err == io.EOF {
			log.Debug(ctx, "session: end of input")
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "unable to read command")
		}

		active, err := s.Handle(ctx, line)
		if err != nil {
			log.Error(ctx, "session: %v", err)
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		if !active {
			return nil
		}
	}
}
