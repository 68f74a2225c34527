package quicklog

import "sync/atomic"

// availCounter counts arenas a producer has handed to the server and not
// yet gotten back. It is a single-producer, single-consumer construct:
// exactly one goroutine calls put and exactly one calls get; peek is safe
// from either side. Neither precondition is enforced at runtime.
//
// The two counters only ever increase; the pending count is their
// difference reduced to eight bits, so it stays correct across wraparound
// as long as no more than 255 arenas are outstanding at once. put is the
// publish point for everything the producer wrote before it, and get
// releases a reset arena back to the producer; the atomic operations carry
// that ordering.
type availCounter struct {
	puts atomic.Uint32
	gets atomic.Uint32
}

// put marks one more arena pending. Producer side only.
func (c *availCounter) put() { c.puts.Add(1) }

// get consumes one pending arena. Consumer side only. Calling get with
// nothing pending is a wiring fault.
func (c *availCounter) get() {
	if c.peek() == 0 {
		ErrorHandler(ErrCounterUnderflow)
		return
	}
	c.gets.Add(1)
}

// peek reports how many arenas are pending.
func (c *availCounter) peek() uint8 {
	return uint8(c.puts.Load() - c.gets.Load())
}
