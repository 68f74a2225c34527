package quicklog

import (
	"errors"
	"testing"
)

func TestAvailCounterPendingAcrossWraparound(t *testing.T) {
	var c availCounter
	for cycle := 0; cycle < 600; cycle++ {
		if got := c.peek(); got != 0 {
			t.Fatalf("cycle %d: pending before put: got %d want 0", cycle, got)
		}
		c.put()
		if got := c.peek(); got != 1 {
			t.Fatalf("cycle %d: pending after put: got %d want 1", cycle, got)
		}
		c.get()
	}
	if got := c.peek(); got != 0 {
		t.Fatalf("pending after all cycles: got %d want 0", got)
	}
}

func TestAvailCounterHoldsMaximumGap(t *testing.T) {
	var c availCounter
	for i := 0; i < 255; i++ {
		c.put()
	}
	if got := c.peek(); got != 255 {
		t.Fatalf("pending at maximum: got %d want 255", got)
	}
	for i := 0; i < 255; i++ {
		c.get()
	}
	if got := c.peek(); got != 0 {
		t.Fatalf("pending after draining maximum: got %d want 0", got)
	}
}

func TestAvailCounterGetOnEmptyIsAFault(t *testing.T) {
	faults := swapErrorHandler(t)
	var c availCounter
	c.get()
	if len(*faults) != 1 || !errors.Is((*faults)[0], ErrCounterUnderflow) {
		t.Fatalf("expected one underflow fault, got %v", *faults)
	}
	if got := c.peek(); got != 0 {
		t.Fatalf("underflowing get must not change pending: got %d want 0", got)
	}
}
