package printers

import (
	"github.com/rs/zerolog"

	"pkt.systems/quicklog"
)

// Zerolog emits every operation through l at info level.
func Zerolog(l zerolog.Logger) quicklog.Printer {
	return quicklog.PrintFunc(func(format string, args ...any) {
		l.Info().Msgf(format, args...)
	})
}
