package quicklog

import (
	"runtime"
	"sync"
)

// Platform supplies the blocking and mutual-exclusion services the engine
// itself never hardcodes. Wait blocks the server until work may be
// pending; spurious returns are fine, the sweep finds nothing and the
// server waits again. Notify wakes a waiter and must be cheap, never
// blocking and safe from any goroutine: producers call it on the logging
// path. Lock and Unlock guard the registry and the sweep.
type Platform interface {
	Wait()
	Notify()
	Lock()
	Unlock()
}

// NotifyPlatform parks the server on a channel and wakes it with a
// buffered non-blocking send, so any number of notifies between waits
// collapse into one wakeup and none of them ever block a producer. The
// default Platform.
type NotifyPlatform struct {
	mu   sync.Mutex
	wake chan struct{}
}

// NewNotifyPlatform returns a ready NotifyPlatform.
func NewNotifyPlatform() *NotifyPlatform {
	return &NotifyPlatform{wake: make(chan struct{}, 1)}
}

func (p *NotifyPlatform) Wait() { <-p.wake }

func (p *NotifyPlatform) Notify() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *NotifyPlatform) Lock()   { p.mu.Lock() }
func (p *NotifyPlatform) Unlock() { p.mu.Unlock() }

// YieldPlatform busy-polls: Wait yields the processor once and returns,
// Notify does nothing. The server burns a core sweeping but reacts to
// published arenas with the lowest possible latency. The zero value is
// ready to use.
type YieldPlatform struct {
	mu sync.Mutex
}

func (p *YieldPlatform) Wait()   { runtime.Gosched() }
func (p *YieldPlatform) Notify() {}
func (p *YieldPlatform) Lock()   { p.mu.Lock() }
func (p *YieldPlatform) Unlock() { p.mu.Unlock() }
