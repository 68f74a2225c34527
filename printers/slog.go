package printers

import (
	"fmt"
	"log/slog"

	"pkt.systems/quicklog"
)

// Slog emits every operation through l at info level. The operation is
// rendered first; slog sees the final message with no attributes.
func Slog(l *slog.Logger) quicklog.Printer {
	return quicklog.PrintFunc(func(format string, args ...any) {
		l.Info(fmt.Sprintf(format, args...))
	})
}
