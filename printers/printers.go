// Package printers adapts common Go logging backends to the
// quicklog.Printer interface, so the print capability can be swapped
// without touching producers.
//
// Backends with a printf-style entry point (zerolog, zap, phuslu)
// receive the format string and arguments untouched. Structured-only
// backends (pslog, slog) receive the operation rendered to its final
// message. Every adapter emits at a fixed info level; quicklog has no
// level model of its own.
package printers
