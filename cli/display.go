package cli

import (
	tm "github.com/buger/goterm"
	"golang.org/x/crypto/ssh/terminal"
)

// IsTerminal returns whether the given file descriptor is a terminal.
func IsTerminal(fd int) bool {
	return terminal.IsTerminal(fd)
}

// TerminalWidth returns the number of columns of the terminal behind fd,
// 0 if it can't be known.
func TerminalWidth(fd int) int {
	w, _, err := terminal.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

// ClearScreen clears the terminal and moves the cursor to the top left corner.
func ClearScreen() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}
