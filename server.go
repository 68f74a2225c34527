package quicklog

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"
)

const defaultMaxLoggers = 64

// ServerOptions configure a Server. The zero value gives a registry of 64
// loggers, a NotifyPlatform and a WriterPrinter on standard output.
type ServerOptions struct {
	// MaxLoggers caps the registry. The cap is fixed at construction;
	// registering past it is a wiring fault.
	MaxLoggers int

	// Platform supplies wait, notify and mutual exclusion. Defaults to
	// NewNotifyPlatform().
	Platform Platform

	// Printer receives every captured operation, one call per entry, on
	// the server goroutine. Defaults to NewWriterPrinter(os.Stdout).
	Printer Printer
}

// Server drains registered loggers on one goroutine and emits their
// operations through a single Printer. Construct it, register loggers,
// start Run on a dedicated goroutine, and stop with Shutdown followed by
// a receive from Done:
//
//	srv := quicklog.NewServer()
//	go srv.Run()
//	...
//	srv.Shutdown()
//	<-srv.Done()
type Server struct {
	platform Platform
	printer  Printer
	flusher  Flusher // printer's optional batching, nil when absent

	loggers []*Logger // guarded by the platform lock, capacity fixed
	running atomic.Bool
	started atomic.Bool
	stop    sync.Once
	done    chan struct{}
	scratch []any
}

// NewServer returns a Server with default options.
func NewServer() *Server {
	return NewServerWithOptions(ServerOptions{})
}

// NewServerWithOptions returns a Server with opts applied. Zero fields
// fall back to defaults.
func NewServerWithOptions(opts ServerOptions) *Server {
	maxLoggers := opts.MaxLoggers
	if maxLoggers <= 0 {
		maxLoggers = defaultMaxLoggers
	}
	platform := opts.Platform
	if platform == nil {
		platform = NewNotifyPlatform()
	}
	printer := opts.Printer
	if printer == nil {
		printer = NewWriterPrinter(os.Stdout)
	}
	s := &Server{
		platform: platform,
		printer:  printer,
		loggers:  make([]*Logger, 0, maxLoggers),
		done:     make(chan struct{}),
		scratch:  make([]any, 0, 16),
	}
	s.flusher, _ = printer.(Flusher)
	s.running.Store(true)
	return s
}

// Register adds l to the sweep set and binds it to s. It may be called
// before or after Run starts, from any goroutine, but must complete
// before the owning goroutine logs: the producer reads the binding
// without a lock. A full registry, a second registration or a logger
// bound elsewhere are wiring faults.
func (s *Server) Register(l *Logger) error {
	s.platform.Lock()
	defer s.platform.Unlock()
	if l.srv != nil {
		ErrorHandler(ErrAlreadyRegistered)
		return ErrAlreadyRegistered
	}
	if len(s.loggers) == cap(s.loggers) {
		ErrorHandler(ErrRegistryFull)
		return ErrRegistryFull
	}
	l.srv = s
	s.loggers = append(s.loggers, l)
	return nil
}

// Run waits on the platform and sweeps until Shutdown, then sweeps once
// more so everything published before the stop is emitted, and closes
// Done. Call it exactly once, normally on a dedicated goroutine.
func (s *Server) Run() {
	if !s.started.CompareAndSwap(false, true) {
		ErrorHandler(errors.New("quicklog: Run called twice"))
		return
	}
	for s.running.Load() {
		s.platform.Wait()
		s.sweep()
	}
	s.sweep()
	close(s.done)
}

// Shutdown stops the drain loop and wakes the server. Producers should
// stop logging and Flush before calling it; entries captured but never
// published cannot reach the final sweep. Safe to call more than once,
// from any goroutine.
func (s *Server) Shutdown() {
	s.stop.Do(func() {
		s.running.Store(false)
		s.platform.Notify()
	})
}

// Done is closed when Run has finished its final sweep.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// sweep repeats full passes over the registry until a pass drains
// nothing, so arenas published while earlier loggers were draining are
// picked up before the server sleeps again. Runs under the platform
// lock; registration waits for the sweep to finish. A sweep that emitted
// anything ends by flushing a batching printer.
func (s *Server) sweep() {
	s.platform.Lock()
	worked := false
	for {
		progress := false
		for _, l := range s.loggers {
			var did bool
			s.scratch, did = l.drainOne(s.printer, s.scratch)
			progress = progress || did
		}
		if !progress {
			break
		}
		worked = true
	}
	s.platform.Unlock()
	if worked && s.flusher != nil {
		// write errors stay with the sink; see WriterPrinter.Failures
		_ = s.flusher.Flush()
	}
}
