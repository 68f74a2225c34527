//go:build linux || darwin || freebsd || netbsd || openbsd

package quicklog

import (
	"io"

	"golang.org/x/term"
)

// fdWriter is the subset of *os.File the terminal check needs.
type fdWriter interface {
	Fd() uintptr
}

// isTerminal reports whether w is an interactive terminal. WriterPrinter
// consults it once, at construction, to pick direct or buffered writes.
func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
