package quicklog

import (
	"bufio"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/valyala/bytebufferpool"
)

// Printer receives captured operations from the server. Print is called
// once per operation, on the server goroutine, with the original format
// string and the arguments in their original order. String and byte-slice
// arguments are views into engine memory: use them during the call, copy
// them to keep them. Print must not call back into the engine.
type Printer interface {
	Print(format string, args ...any)
}

// PrintFunc adapts a function to the Printer interface.
type PrintFunc func(format string, args ...any)

func (f PrintFunc) Print(format string, args ...any) { f(format, args...) }

// Flusher is implemented by printers that batch output. After every sweep
// that emitted operations the server calls Flush, bounding how long an
// entry can sit in a sink buffer.
type Flusher interface {
	Flush() error
}

const writerBufferSize = 8 << 10

// WriterPrinter renders each operation with fmt and writes it to w as one
// line, appending a newline unless the rendered text already ends with
// one. A terminal gets every line as it drains; any other destination is
// wrapped in a buffered writer that the server flushes at sweep
// boundaries. Write errors do not stop the drain, they are counted and
// the line is dropped.
type WriterPrinter struct {
	out      io.Writer
	buffered *bufio.Writer // nil when out is a terminal
	failures atomic.Uint64
}

// NewWriterPrinter returns a WriterPrinter on w.
func NewWriterPrinter(w io.Writer) *WriterPrinter {
	p := &WriterPrinter{}
	if isTerminal(w) {
		p.out = w
		return p
	}
	p.buffered = bufio.NewWriterSize(w, writerBufferSize)
	p.out = p.buffered
	return p
}

func (p *WriterPrinter) Print(format string, args ...any) {
	b := bytebufferpool.Get()
	fmt.Fprintf(b, format, args...)
	if n := len(b.B); n == 0 || b.B[n-1] != '\n' {
		b.B = append(b.B, '\n')
	}
	if _, err := p.out.Write(b.B); err != nil {
		p.failures.Add(1)
	}
	bytebufferpool.Put(b)
}

// Flush drains the internal buffer. A no-op on terminals.
func (p *WriterPrinter) Flush() error {
	if p.buffered == nil {
		return nil
	}
	return p.buffered.Flush()
}

// Failures reports how many writes have returned an error so far.
func (p *WriterPrinter) Failures() uint64 {
	return p.failures.Load()
}
