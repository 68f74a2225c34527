package printers

import (
	"go.uber.org/zap"

	"pkt.systems/quicklog"
)

// Zap emits every operation through s at info level. The sugared
// logger's Infof signature matches Print exactly, so arguments pass
// through untouched.
func Zap(s *zap.SugaredLogger) quicklog.Printer {
	return quicklog.PrintFunc(s.Infof)
}
