package quicklog

import "sync/atomic"

// CountingPrinter wraps a Printer and counts the operations passing
// through, so delivery can be observed without changing the sink.
type CountingPrinter struct {
	next Printer
	n    atomic.Uint64
}

// NewCountingPrinter wraps next with an operation counter. A nil next
// counts and drops.
func NewCountingPrinter(next Printer) *CountingPrinter {
	if next == nil {
		next = Noop()
	}
	return &CountingPrinter{next: next}
}

func (p *CountingPrinter) Print(format string, args ...any) {
	p.n.Add(1)
	p.next.Print(format, args...)
}

// Count reports operations emitted so far.
func (p *CountingPrinter) Count() uint64 {
	return p.n.Load()
}

// Flush forwards to the wrapped printer when it batches.
func (p *CountingPrinter) Flush() error {
	if f, ok := p.next.(Flusher); ok {
		return f.Flush()
	}
	return nil
}
