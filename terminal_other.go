//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package quicklog

import "io"

// No terminal detection here; WriterPrinter buffers everywhere.
func isTerminal(io.Writer) bool {
	return false
}
