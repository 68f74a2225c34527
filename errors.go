package quicklog

import (
	"errors"
	"fmt"
	"os"
)

// Error values reported by Logger and Server operations. Log returns
// ErrBackpressure and ErrEntryTooLarge to the producer; the remaining
// values describe wiring faults and reach ErrorHandler first.
var (
	// ErrBackpressure means every arena was pending with the server and
	// the entry was dropped. The producer is outrunning the drain side;
	// the engine never blocks the producer.
	ErrBackpressure = errors.New("quicklog: all arenas pending, entry dropped")

	// ErrEntryTooLarge means a single captured operation exceeds the
	// capacity of a whole arena.
	ErrEntryTooLarge = errors.New("quicklog: entry exceeds arena capacity")

	// ErrRegistryFull means the server already holds its configured
	// maximum number of loggers.
	ErrRegistryFull = errors.New("quicklog: server registry full")

	// ErrNotRegistered means a logger tried to hand an arena to a server
	// it was never registered with.
	ErrNotRegistered = errors.New("quicklog: logger not registered with a server")

	// ErrAlreadyRegistered means a logger was offered to a server twice,
	// or to a second server.
	ErrAlreadyRegistered = errors.New("quicklog: logger already registered")

	// ErrCounterUnderflow means the availability counter was consumed
	// with nothing pending. Only a broken Platform or a second drain
	// goroutine can cause it.
	ErrCounterUnderflow = errors.New("quicklog: availability counter underflow")
)

// ErrorHandler receives wiring faults: conditions that mean the engine was
// assembled or driven incorrectly rather than merely saturated. A logging
// engine cannot log its own failures through itself, so these surface here.
// The default handler writes the error to standard error and exits the
// process. Replace it before constructing loggers or servers; a replacement
// that returns lets the failing call return the same error to its caller.
var ErrorHandler = func(err error) {
	fmt.Fprintln(os.Stderr, err)
	exitProcess(1)
}

// exitProcess is swapped out by tests exercising the default handler.
var exitProcess = os.Exit
