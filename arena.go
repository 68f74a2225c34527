package quicklog

import (
	"encoding/binary"
	"math"
)

// Entry framing inside an arena: an 8-byte header holding the raw entry
// size, the argument count and the format length, then the format string
// bytes, then the tagged arguments. Headers sit on entryAlign boundaries;
// the size field records the raw size and the cursor advances by the
// aligned size.
const (
	entryAlign      = 8
	entryHeaderSize = 8

	maxFormatLen = math.MaxUint16
	maxArgs      = math.MaxUint16
)

// alignedSize rounds n up to the next multiple of entryAlign.
func alignedSize(n int) int {
	return (n + entryAlign - 1) &^ (entryAlign - 1)
}

// arena is one fixed-capacity byte region packing captured operations back
// to back. The producer appends, the server drains. Ownership alternates
// through the logger's availability counter; the two sides never touch an
// arena at the same time. len(buf) is always a multiple of entryAlign, so
// a committed entry's aligned cursor never passes the end.
type arena struct {
	buf   []byte
	pos   int
	count int
}

// appendEntry captures format and args at the write position. The header
// is written last, so on failure nothing is committed and the cursor
// stays put; bytes past the cursor are scratch.
func (a *arena) appendEntry(format string, args []any) bool {
	if len(format) > maxFormatLen || len(args) > maxArgs {
		return false
	}
	base := a.pos
	pos := base + entryHeaderSize + len(format)
	if pos > len(a.buf) {
		return false
	}
	copy(a.buf[base+entryHeaderSize:], format)
	var ok bool
	for _, v := range args {
		if pos, ok = encodeValue(a.buf, pos, v); !ok {
			return false
		}
	}
	size := pos - base
	binary.LittleEndian.PutUint32(a.buf[base:], uint32(size))
	binary.LittleEndian.PutUint16(a.buf[base+4:], uint16(len(args)))
	binary.LittleEndian.PutUint16(a.buf[base+6:], uint16(len(format)))
	a.pos = base + alignedSize(size)
	a.count++
	return true
}

func (a *arena) isEmpty() bool { return a.count == 0 }

// reset makes the arena reusable. Contents are not zeroed; the next
// append overwrites.
func (a *arena) reset() {
	a.pos = 0
	a.count = 0
}

// drainAll emits every captured operation in write order through p, then
// resets the arena. scratch carries the decoded argument slice between
// entries so one backing array serves the whole drain; the possibly grown
// slice is returned for reuse.
func (a *arena) drainAll(p Printer, scratch []any) []any {
	off := 0
	for i := 0; i < a.count; i++ {
		size := int(binary.LittleEndian.Uint32(a.buf[off:]))
		argc := int(binary.LittleEndian.Uint16(a.buf[off+4:]))
		flen := int(binary.LittleEndian.Uint16(a.buf[off+6:]))
		pos := off + entryHeaderSize
		format := unsafeString(a.buf[pos : pos+flen])
		pos += flen
		scratch = scratch[:0]
		for j := 0; j < argc; j++ {
			var v any
			v, pos = decodeValue(a.buf, pos)
			scratch = append(scratch, v)
		}
		p.Print(format, scratch...)
		off += alignedSize(size)
	}
	a.reset()
	return scratch
}
