// Package quicklog defers the cost of logging. A producer calling Log
// pays for a bounds-checked copy of the format string and its arguments
// into a preallocated arena, nothing more: formatting, I/O and locking
// all happen later on a single server goroutine. The log call never
// blocks, so it can sit on latency-critical paths that a write to a
// pipe, or even a mutex, would disturb.
//
// # Design overview
//
//   - Capture by value: arguments are encoded as tagged bytes in the
//     arena at call time. Scalars, strings, byte slices, times and
//     durations are copied whole without allocating; any other type is
//     rendered with fmt.Sprint at capture time. Either way, what gets
//     emitted is the value as it was when Log ran.
//   - Arena rotation: each Logger owns a fixed ring of arenas. When one
//     fills, the producer publishes it through an eight-bit availability
//     counter, wakes the server and keeps writing into the next one.
//   - Single drain: one server goroutine sweeps all registered loggers
//     to a fixed point, formats each captured operation and hands it to
//     an injected Printer. Per-logger ordering is preserved; formatting
//     cost lands on the server, never the producer.
//   - No hidden services: blocking, wakeup and mutual exclusion come
//     from a pluggable Platform, output from a pluggable Printer, and
//     goroutine wiring stays with the caller.
//
// # Usage
//
//	srv := quicklog.NewServer()
//	go srv.Run()
//
//	lg := quicklog.New()
//	srv.Register(lg)
//
//	lg.Log("conn %d ready in %v", id, elapsed)
//	...
//	lg.Flush()
//	srv.Shutdown()
//	<-srv.Done()
//
// Producers that outrun the server get ErrBackpressure instead of a
// stall; the dropped count is available from Logger.Dropped.
//
// # Integration notes
//
//   - The printers subpackage adapts zerolog, zap, phuslu/log, pslog and
//     slog as Printer backends.
//   - WriterPrinter writes straight through on terminals and batches
//     behind bufio elsewhere; the server flushes it at sweep boundaries.
//   - LoggerFromEnv and ServerFromEnv read QUICKLOG_* variables for
//     deployments that configure through the environment.
//
// Wiring faults, such as logging through an unregistered Logger or
// overflowing the registry, surface through the package-level
// ErrorHandler, which exits by default. The engine never reports its own
// failures through its own pipeline.
package quicklog
