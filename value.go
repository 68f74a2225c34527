package quicklog

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
	"unsafe"
)

// Captured arguments are stored as a one-byte tag followed by a fixed or
// length-prefixed payload. The set below covers every shape that can be
// copied whole into an arena; anything else is rendered with fmt.Sprint at
// capture time and stored as a string, which keeps capture-by-value
// semantics for reference types at the cost of one allocation.
const (
	tagNil uint8 = iota
	tagFalse
	tagTrue
	tagInt
	tagInt8
	tagInt16
	tagInt32
	tagInt64
	tagUint
	tagUint8
	tagUint16
	tagUint32
	tagUint64
	tagUintptr
	tagFloat32
	tagFloat64
	tagString
	tagBytes
	tagTime
	tagDuration
)

// encodeValue writes one tagged argument at pos and returns the next free
// position. The value is copied whole; nothing in b refers back to caller
// memory afterwards. When the remaining space cannot hold the value it
// returns false without writing past pos.
func encodeValue(b []byte, pos int, v any) (int, bool) {
	switch v := v.(type) {
	case nil:
		return putTag(b, pos, tagNil)
	case bool:
		if v {
			return putTag(b, pos, tagTrue)
		}
		return putTag(b, pos, tagFalse)
	case int:
		return putScalar64(b, pos, tagInt, uint64(v))
	case int8:
		return putScalar8(b, pos, tagInt8, uint8(v))
	case int16:
		return putScalar16(b, pos, tagInt16, uint16(v))
	case int32:
		return putScalar32(b, pos, tagInt32, uint32(v))
	case int64:
		return putScalar64(b, pos, tagInt64, uint64(v))
	case uint:
		return putScalar64(b, pos, tagUint, uint64(v))
	case uint8:
		return putScalar8(b, pos, tagUint8, v)
	case uint16:
		return putScalar16(b, pos, tagUint16, v)
	case uint32:
		return putScalar32(b, pos, tagUint32, v)
	case uint64:
		return putScalar64(b, pos, tagUint64, v)
	case uintptr:
		return putScalar64(b, pos, tagUintptr, uint64(v))
	case float32:
		return putScalar32(b, pos, tagFloat32, math.Float32bits(v))
	case float64:
		return putScalar64(b, pos, tagFloat64, math.Float64bits(v))
	case string:
		return putString(b, pos, tagString, v)
	case []byte:
		return putBytes(b, pos, v)
	case time.Time:
		return putTime(b, pos, v)
	case time.Duration:
		return putScalar64(b, pos, tagDuration, uint64(v))
	default:
		return putString(b, pos, tagString, fmt.Sprint(v))
	}
}

func putTag(b []byte, pos int, tag uint8) (int, bool) {
	if pos+1 > len(b) {
		return pos, false
	}
	b[pos] = tag
	return pos + 1, true
}

func putScalar8(b []byte, pos int, tag uint8, v uint8) (int, bool) {
	if pos+2 > len(b) {
		return pos, false
	}
	b[pos] = tag
	b[pos+1] = v
	return pos + 2, true
}

func putScalar16(b []byte, pos int, tag uint8, v uint16) (int, bool) {
	if pos+3 > len(b) {
		return pos, false
	}
	b[pos] = tag
	binary.LittleEndian.PutUint16(b[pos+1:], v)
	return pos + 3, true
}

func putScalar32(b []byte, pos int, tag uint8, v uint32) (int, bool) {
	if pos+5 > len(b) {
		return pos, false
	}
	b[pos] = tag
	binary.LittleEndian.PutUint32(b[pos+1:], v)
	return pos + 5, true
}

func putScalar64(b []byte, pos int, tag uint8, v uint64) (int, bool) {
	if pos+9 > len(b) {
		return pos, false
	}
	b[pos] = tag
	binary.LittleEndian.PutUint64(b[pos+1:], v)
	return pos + 9, true
}

func putString(b []byte, pos int, tag uint8, v string) (int, bool) {
	if pos+5+len(v) > len(b) {
		return pos, false
	}
	b[pos] = tag
	binary.LittleEndian.PutUint32(b[pos+1:], uint32(len(v)))
	copy(b[pos+5:], v)
	return pos + 5 + len(v), true
}

func putBytes(b []byte, pos int, v []byte) (int, bool) {
	if pos+5+len(v) > len(b) {
		return pos, false
	}
	b[pos] = tagBytes
	binary.LittleEndian.PutUint32(b[pos+1:], uint32(len(v)))
	copy(b[pos+5:], v)
	return pos + 5 + len(v), true
}

// Wall-clock seconds, nanoseconds, zone offset and zone name are enough to
// reproduce the time's formatted output; the monotonic reading is dropped.
func putTime(b []byte, pos int, t time.Time) (int, bool) {
	name, off := t.Zone()
	if len(name) > math.MaxUint8 {
		name = ""
	}
	if pos+18+len(name) > len(b) {
		return pos, false
	}
	b[pos] = tagTime
	binary.LittleEndian.PutUint64(b[pos+1:], uint64(t.Unix()))
	binary.LittleEndian.PutUint32(b[pos+9:], uint32(t.Nanosecond()))
	binary.LittleEndian.PutUint32(b[pos+13:], uint32(int32(off)))
	b[pos+17] = uint8(len(name))
	copy(b[pos+18:], name)
	return pos + 18 + len(name), true
}

// decodeValue reads the tagged argument at pos, boxed for fmt, and returns
// the position of the next value. String and byte results alias b and stay
// valid only until the arena resets.
func decodeValue(b []byte, pos int) (any, int) {
	tag := b[pos]
	pos++
	switch tag {
	case tagNil:
		return nil, pos
	case tagFalse:
		return false, pos
	case tagTrue:
		return true, pos
	case tagInt:
		return int(binary.LittleEndian.Uint64(b[pos:])), pos + 8
	case tagInt8:
		return int8(b[pos]), pos + 1
	case tagInt16:
		return int16(binary.LittleEndian.Uint16(b[pos:])), pos + 2
	case tagInt32:
		return int32(binary.LittleEndian.Uint32(b[pos:])), pos + 4
	case tagInt64:
		return int64(binary.LittleEndian.Uint64(b[pos:])), pos + 8
	case tagUint:
		return uint(binary.LittleEndian.Uint64(b[pos:])), pos + 8
	case tagUint8:
		return b[pos], pos + 1
	case tagUint16:
		return binary.LittleEndian.Uint16(b[pos:]), pos + 2
	case tagUint32:
		return binary.LittleEndian.Uint32(b[pos:]), pos + 4
	case tagUint64:
		return binary.LittleEndian.Uint64(b[pos:]), pos + 8
	case tagUintptr:
		return uintptr(binary.LittleEndian.Uint64(b[pos:])), pos + 8
	case tagFloat32:
		return math.Float32frombits(binary.LittleEndian.Uint32(b[pos:])), pos + 4
	case tagFloat64:
		return math.Float64frombits(binary.LittleEndian.Uint64(b[pos:])), pos + 8
	case tagString:
		n := int(binary.LittleEndian.Uint32(b[pos:]))
		pos += 4
		return unsafeString(b[pos : pos+n]), pos + n
	case tagBytes:
		n := int(binary.LittleEndian.Uint32(b[pos:]))
		pos += 4
		return b[pos : pos+n : pos+n], pos + n
	case tagTime:
		return decodeTime(b, pos)
	case tagDuration:
		return time.Duration(binary.LittleEndian.Uint64(b[pos:])), pos + 8
	}
	panic("quicklog: corrupt arena")
}

func decodeTime(b []byte, pos int) (time.Time, int) {
	sec := int64(binary.LittleEndian.Uint64(b[pos:]))
	nsec := int64(binary.LittleEndian.Uint32(b[pos+8:]))
	off := int(int32(binary.LittleEndian.Uint32(b[pos+12:])))
	n := int(b[pos+16])
	pos += 17
	name := string(b[pos : pos+n])
	pos += n
	var loc *time.Location
	switch {
	case name == "UTC" && off == 0:
		loc = time.UTC
	default:
		loc = time.FixedZone(name, off)
	}
	return time.Unix(sec, nsec).In(loc), pos
}

// unsafeString views b as a string without copying. The result aliases b.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
