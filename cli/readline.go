package cli

import (
	"bufio"
	"io"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
)

// LineReader reads the lines typed by the user.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// NewReadline returns a LineReader with line edition and history on an
// interactive terminal. Ctrl-C and Ctrl-D both end the input with io.EOF.
func NewReadline(prompt, historyFile string, stdin io.ReadCloser, stdout io.Writer) (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		Stdin:           stdin,
		Stdout:          stdout,
		InterruptPrompt: "^C",
		EOFPrompt:       "--",
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to initialize readline")
	}
	return &readlineReader{rl: rl}, nil
}

type readlineReader struct {
	rl *readline.Instance
}

func (r *readlineReader) Readline() (string, error) {
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", io.EOF
	}
	return line, err
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

// NewPlainReader returns a LineReader reading newline delimited input, for
// piped stdin. The prompt is written before each read.
func NewPlainReader(prompt string, in io.Reader, out io.Writer) LineReader {
	return &plainReader{prompt: prompt, in: bufio.NewReader(in), out: out}
}

type plainReader struct {
	prompt string
	in     *bufio.Reader
	out    io.Writer
}

func (r *plainReader) Readline() (string, error) {
	if r.prompt != "" && r.out != nil {
		io.WriteString(r.out, r.prompt) // nolint
	}
	line, err := r.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return trimEOL(line), nil
	}
	if err != nil {
		return "", err
	}
	return trimEOL(line), nil
}

func (r *plainReader) Close() error {
	return nil
}

func trimEOL(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
