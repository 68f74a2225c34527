//go:build windows

package quicklog

import (
	"io"
	"syscall"
)

// fdWriter is the subset of *os.File the terminal check needs.
type fdWriter interface {
	Fd() uintptr
}

// isTerminal reports whether w is a console handle. WriterPrinter
// consults it once, at construction, to pick direct or buffered writes.
func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	var mode uint32
	return syscall.GetConsoleMode(syscall.Handle(f.Fd()), &mode) == nil
}
