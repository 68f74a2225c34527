package quicklog

import (
	"fmt"
	"sync/atomic"
)

const (
	defaultArenas    = 8
	defaultArenaSize = 16 * 1024

	minArenaSize = 2 * entryAlign
	maxArenaSize = 1 << 30
)

// LoggerOptions configure a Logger. The zero value gives 8 arenas of
// 16 KiB each.
type LoggerOptions struct {
	// Arenas is how many fixed-size regions the logger rotates through.
	// Clamped to [2, 255]: the availability counter is eight bits wide,
	// and with a single arena a rotation could hand the producer a
	// region the server still owns.
	Arenas int

	// ArenaSize is each region's capacity in bytes, rounded up to the
	// entry alignment. An operation that does not fit in an empty arena
	// of this size is rejected with ErrEntryTooLarge.
	ArenaSize int
}

// Logger is a per-producer front end. Exactly one goroutine calls Log and
// Flush; the server of the Logger drains what it publishes. Register the
// Logger with a Server before the first arena fills.
type Logger struct {
	arenas   []arena
	writeIdx int // producer side
	readIdx  int // server side
	pending  availCounter
	srv      *Server
	dropped  atomic.Uint64
}

// New returns a Logger with default options.
func New() *Logger {
	return NewWithOptions(LoggerOptions{})
}

// NewWithOptions returns a Logger with opts applied. Zero fields fall
// back to defaults, out-of-range fields are clamped.
func NewWithOptions(opts LoggerOptions) *Logger {
	n := opts.Arenas
	if n == 0 {
		n = defaultArenas
	}
	n = min(max(n, 2), 255)
	size := opts.ArenaSize
	if size == 0 {
		size = defaultArenaSize
	}
	size = alignedSize(min(max(size, minArenaSize), maxArenaSize))
	l := &Logger{arenas: make([]arena, n)}
	for i := range l.arenas {
		l.arenas[i].buf = make([]byte, size)
	}
	return l
}

// Log captures format and args by value and returns without formatting,
// writing or blocking. The format string is interpreted later by the
// server's Printer. Arguments are copied whole at call time: mutating a
// byte slice after Log returns does not change what gets emitted, and
// types outside the fast set are rendered with fmt.Sprint immediately.
//
// ErrBackpressure means every arena is pending with the server and the
// entry was dropped. ErrEntryTooLarge means the entry cannot fit even in
// an empty arena; it reaches ErrorHandler first. Either way the logger
// remains usable.
func (l *Logger) Log(format string, args ...any) error {
	if l.pending.peek() == uint8(len(l.arenas)) {
		l.dropped.Add(1)
		return ErrBackpressure
	}
	if l.arenas[l.writeIdx].appendEntry(format, args) {
		return nil
	}
	if err := l.rotate(); err != nil {
		return err
	}
	if l.pending.peek() == uint8(len(l.arenas)) {
		l.dropped.Add(1)
		return ErrBackpressure
	}
	if l.arenas[l.writeIdx].appendEntry(format, args) {
		return nil
	}
	err := fmt.Errorf("%w: %d byte arenas cannot hold %q with %d args",
		ErrEntryTooLarge, len(l.arenas[l.writeIdx].buf), format, len(args))
	ErrorHandler(err)
	return err
}

// Flush publishes the current arena when it holds anything, so entries
// that never fill an arena still reach the server. Flushing when the
// arena is empty, or when every arena is already pending and nothing
// unpublished exists, does nothing and raises no signal.
func (l *Logger) Flush() error {
	if l.pending.peek() == uint8(len(l.arenas)) {
		return nil
	}
	if l.arenas[l.writeIdx].isEmpty() {
		return nil
	}
	return l.rotate()
}

// Dropped reports how many operations were rejected with ErrBackpressure
// since construction.
func (l *Logger) Dropped() uint64 {
	return l.dropped.Load()
}

// rotate publishes the current arena and moves the producer to the next
// one. Callers ensure at least one arena is free. Logging before
// registration is detected here, on the first full arena, keeping the
// common path free of the check.
func (l *Logger) rotate() error {
	if l.srv == nil {
		err := fmt.Errorf("%w: rotation requires a server", ErrNotRegistered)
		ErrorHandler(err)
		return err
	}
	l.writeIdx++
	if l.writeIdx == len(l.arenas) {
		l.writeIdx = 0
	}
	l.pending.put()
	l.srv.platform.Notify()
	return nil
}

// drainOne drains the oldest pending arena through p if there is one,
// reporting whether it did work. Server goroutine only. The availability
// get comes after the arena reset, so the producer never sees a slot it
// could clobber mid-drain.
func (l *Logger) drainOne(p Printer, scratch []any) ([]any, bool) {
	if l.pending.peek() == 0 {
		return scratch, false
	}
	scratch = l.arenas[l.readIdx].drainAll(p, scratch)
	l.readIdx++
	if l.readIdx == len(l.arenas) {
		l.readIdx = 0
	}
	l.pending.get()
	return scratch, true
}
