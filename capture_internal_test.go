package quicklog

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

type pointerStringer struct {
	v *int
}

func (s pointerStringer) String() string { return fmt.Sprintf("val=%d", *s.v) }

func TestCaptureRendersExoticTypesAtCallTime(t *testing.T) {
	a := arena{buf: make([]byte, 256)}
	n := 1
	if !a.appendEntry("%v", []any{pointerStringer{v: &n}}) {
		t.Fatalf("append failed")
	}
	n = 2
	rec := &recordPrinter{}
	a.drainAll(rec, nil)
	if rec.lines[0] != "val=1" {
		t.Fatalf("exotic argument not captured at call time: got %q want %q", rec.lines[0], "val=1")
	}
}

func TestCaptureCopiesByteSlices(t *testing.T) {
	a := arena{buf: make([]byte, 256)}
	payload := []byte("before")
	if !a.appendEntry("%s", []any{payload}) {
		t.Fatalf("append failed")
	}
	copy(payload, "AFTER!")
	rec := &recordPrinter{}
	a.drainAll(rec, nil)
	if rec.lines[0] != "before" {
		t.Fatalf("byte slice not copied at capture: got %q want %q", rec.lines[0], "before")
	}
}

func TestCaptureMatchesEagerFormatting(t *testing.T) {
	when := time.Date(2026, time.March, 14, 9, 26, 53, 589793238, time.FixedZone("CEST", 2*3600))
	args := []any{
		true, false, nil,
		-1, int8(-8), int16(-16), int32(-32), int64(-64),
		uint(1), uint8(8), uint16(16), uint32(32), uint64(64), uintptr(0xbeef),
		float32(1.5), 2.25,
		"text", []byte{0xde, 0xad},
		when, 1500 * time.Millisecond,
		errors.New("wrapped failure"),
	}
	format := strings.TrimSpace(strings.Repeat("%v ", len(args)))
	want := fmt.Sprintf(format, args...)

	a := arena{buf: make([]byte, 1024)}
	if !a.appendEntry(format, args) {
		t.Fatalf("append failed")
	}
	rec := &recordPrinter{}
	a.drainAll(rec, nil)
	if rec.lines[0] != want {
		t.Fatalf("deferred formatting diverged from eager:\n got %q\nwant %q", rec.lines[0], want)
	}
}

func TestCaptureUTCTimeRoundTrips(t *testing.T) {
	when := time.Unix(1766400000, 123456789).UTC()
	want := fmt.Sprintf("%v", when)

	a := arena{buf: make([]byte, 256)}
	if !a.appendEntry("%v", []any{when}) {
		t.Fatalf("append failed")
	}
	rec := &recordPrinter{}
	a.drainAll(rec, nil)
	if rec.lines[0] != want {
		t.Fatalf("UTC time diverged: got %q want %q", rec.lines[0], want)
	}
}

func TestCaptureClampsAbsurdZoneNames(t *testing.T) {
	name := strings.Repeat("Z", 300)
	when := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.FixedZone(name, 3600))
	// a name that cannot fit the length byte degrades to the numeric offset
	want := fmt.Sprintf("%v", when.In(time.FixedZone("", 3600)))

	a := arena{buf: make([]byte, 512)}
	if !a.appendEntry("%v", []any{when}) {
		t.Fatalf("append failed")
	}
	rec := &recordPrinter{}
	a.drainAll(rec, nil)
	if rec.lines[0] != want {
		t.Fatalf("zone name not clamped: got %q want %q", rec.lines[0], want)
	}
}

func TestDecodeUnknownTagPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic")
		}
	}()
	decodeValue([]byte{0xff}, 0)
}
