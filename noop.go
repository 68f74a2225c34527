package quicklog

type noopPrinter struct{}

func (noopPrinter) Print(string, ...any) {}

// Noop returns a Printer that drops everything. Useful as the sink when
// only capture cost matters, as in benchmarks.
func Noop() Printer {
	return noopPrinter{}
}
