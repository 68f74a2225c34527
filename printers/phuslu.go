package printers

import (
	plog "github.com/phuslu/log"

	"pkt.systems/quicklog"
)

// Phuslu emits every operation through l at info level.
func Phuslu(l *plog.Logger) quicklog.Printer {
	return quicklog.PrintFunc(func(format string, args ...any) {
		l.Info().Msgf(format, args...)
	})
}
