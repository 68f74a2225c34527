package printers

import (
	"fmt"

	"pkt.systems/pslog"
	"pkt.systems/quicklog"
)

// Pslog emits every operation through l at info level. The operation is
// rendered first; pslog sees the final message with no key/value pairs.
func Pslog(l pslog.Logger) quicklog.Printer {
	return quicklog.PrintFunc(func(format string, args ...any) {
		l.Info(fmt.Sprintf(format, args...))
	})
}
