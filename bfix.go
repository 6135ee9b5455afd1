/*

Bit-field insert and extract.

*/

package bfix

import (
	"github.com/zedseven/binmani"
)

const (
	// MaxBits is the widest field a single call can handle.
	MaxBits = 64

	// Padding is the number of trailing pad bytes the C library required past the
	// last field. The Go codec never reads or writes outside SpanBytes, so it is only
	// useful to callers sharing buffer layouts with C code.
	Padding = 7

	maxInt = int(^uint(0) >> 1)
)

// Insert writes the n lowest bits of v into buf, starting at the 1-based bit offset.
// Higher bits of v are ignored.
//
// Bits outside the field are preserved. All arguments are validated before buf is
// modified; on error buf is unchanged.
func Insert(buf []byte, offset, n int, v uint64, e Endian) error {
	if err := check(len(buf), offset, n, e); err != nil {
		return err
	}

	pos := locate(offset)
	if e == BigEndian || n <= 8 {
		putBits(buf, pos, n, v)
		return nil
	}

	// Little endian: lowest byte first, each byte MSB first.
	for shift := 0; n > 0; shift += 8 {
		w := 8
		if n < w {
			w = n
		}
		putBits(buf, pos, w, v>>uint(shift))
		pos += w
		n -= w
	}
	return nil
}

// InsertInt is like Insert, but takes a signed value. The two's complement
// representation of v is truncated to n bits.
func InsertInt(buf []byte, offset, n int, v int64, e Endian) error {
	return Insert(buf, offset, n, uint64(v), e)
}

// Extract reads the n bits starting at the 1-based bit offset of buf.
// The first bit read becomes the most significant bit of the result
// (for LittleEndian fields: of the lowest byte).
//
// If err is not nil, the returned value is 0 and must not be used.
func Extract(buf []byte, offset, n int, e Endian) (u uint64, err error) {
	if err = check(len(buf), offset, n, e); err != nil {
		return 0, err
	}

	pos := locate(offset)
	if e == BigEndian || n <= 8 {
		return getBits(buf, pos, n), nil
	}

	for shift := 0; n > 0; shift += 8 {
		w := 8
		if n < w {
			w = n
		}
		u |= getBits(buf, pos, w) << uint(shift)
		pos += w
		n -= w
	}
	return u, nil
}

// ExtractInt is like Extract, but interprets the field as a two's complement
// signed number and sign extends it to 64 bits.
func ExtractInt(buf []byte, offset, n int, e Endian) (int64, error) {
	u, err := Extract(buf, offset, n, e)
	if err != nil {
		return 0, err
	}
	shift := uint(MaxBits - n)
	return int64(u<<shift) >> shift, nil
}

// SpanBytes returns the number of bytes (counted from the start of the buffer)
// a field at the 1-based bit offset with n bits occupies.
// It is 0 if offset or n is less than 1, and saturates at the largest int.
func SpanBytes(offset, n int) int {
	if offset < 1 || n < 1 {
		return 0
	}
	pos := locate(offset)
	head := pos&7 + 7 // used bits of the first byte, plus rounding up
	if n > maxInt-head {
		return maxInt
	}
	// Computed per byte so offsets near maxInt do not overflow.
	return pos>>3 + (head+n)>>3
}

// check validates a field descriptor against a buffer of bufLen bytes.
// The order of the checks matters: it decides which status is reported
// when several arguments are bad.
func check(bufLen, offset, n int, e Endian) error {
	var s Status
	switch {
	case offset < 1:
		s = StatusInvalidOffset
	case n < 1:
		s = StatusInvalidLengthTooSmall
	case n > MaxBits:
		s = StatusInvalidLengthTooLarge
	case !e.IsValid():
		s = StatusInvalidEndian
	case SpanBytes(offset, n) > bufLen:
		s = StatusShortBuffer
	default:
		return nil
	}
	return &FieldError{Status: s, Offset: offset, Len: n, Endian: e, BufLen: bufLen}
}

// locate converts a 1-based bit offset to a 0-based bit position.
// The byte index of the position is pos>>3, the bit within the byte
// (0 being the most significant) is pos&7.
func locate(offset int) (pos int) {
	return offset - 1
}

// putBits writes the n lowest bits of v MSB first, starting at the 0-based bit
// position pos. The caller must ensure buf is long enough.
func putBits(buf []byte, pos, n int, v uint64) {
	i, used := pos>>3, pos&7
	for n > 0 {
		free := 8 - used // bits available in buf[i]
		take := free
		if n < take {
			take = n
		}
		// The top take bits of the remaining n go to the low free bits of buf[i],
		// aligned so that the rest of the byte stays untouched.
		chunk := binmani.ReadFrom(uint16(v>>uint(n-take)), 0, uint8(take))
		buf[i] = byte(binmani.WriteTo(uint16(buf[i]), uint8(free-take), uint8(take), chunk))
		n -= take
		i, used = i+1, 0
	}
}

// getBits reads n bits MSB first, starting at the 0-based bit position pos,
// and returns them as the lowest n bits of u.
func getBits(buf []byte, pos, n int) (u uint64) {
	i, used := pos>>3, pos&7
	for n > 0 {
		free := 8 - used
		take := free
		if n < take {
			take = n
		}
		u = u<<uint(take) | uint64(binmani.ReadFrom(uint16(buf[i]), uint8(free-take), uint8(take)))
		n -= take
		i, used = i+1, 0
	}
	return
}
