/*

Reader definition and implementation.

*/

package bfix

import (
	"errors"
	"io"
)

// Reader extracts consecutive fields from a byte slice, keeping track of the
// bit position. It does not copy the slice.
type Reader struct {
	buf []byte
	pos int // 0-based position of the next bit

	// TryError holds the first error occurred in TryXXX() methods.
	TryError error
}

// NewReader returns a new Reader reading from buf, starting at bit 1.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// BitPosition returns the 1-based offset of the next bit to be read.
func (r *Reader) BitPosition() int {
	return r.pos + 1
}

// remaining returns the number of unread bits.
func (r *Reader) remaining() int {
	return len(r.buf)*8 - r.pos
}

// ReadBitsEndian reads the next n bits as a field of the given endianness.
// Invalid n or e are reported first; after that io.EOF is returned if there
// are no bits left at all, and a StatusShortBuffer error if there are some,
// but less than n.
func (r *Reader) ReadBitsEndian(n byte, e Endian) (u uint64, err error) {
	if u, err = Extract(r.buf, r.BitPosition(), int(n), e); err != nil {
		if r.remaining() == 0 && errors.Is(err, ErrShortBuffer) {
			err = io.EOF
		}
		return 0, err
	}
	r.pos += int(n)
	return u, nil
}

// ReadBits reads the next n bits (big endian) and returns them as the lowest n bits of u.
func (r *Reader) ReadBits(n byte) (u uint64, err error) {
	return r.ReadBitsEndian(n, BigEndian)
}

// ReadBool reads the next bit, and returns true if it is 1.
func (r *Reader) ReadBool() (b bool, err error) {
	u, err := r.ReadBits(1)
	return u == 1, err
}

// ReadByte implements io.ByteReader. It reads the next 8 bits, which
// do not have to be aligned to a byte boundary.
func (r *Reader) ReadByte() (b byte, err error) {
	u, err := r.ReadBits(8)
	return byte(u), err
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (n int, err error) {
	if r.pos&7 == 0 {
		// Aligned: plain copy.
		if r.remaining() == 0 && len(p) > 0 {
			return 0, io.EOF
		}
		n = copy(p, r.buf[r.pos>>3:])
		r.pos += n * 8
		return n, nil
	}

	for ; n < len(p); n++ {
		if r.remaining() < 8 {
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
		if p[n], err = r.ReadByte(); err != nil {
			return
		}
	}
	return
}

// Align aligns the bit position to a byte boundary,
// so the next read starts at the next byte.
// Returns the number of skipped bits.
func (r *Reader) Align() (skipped byte) {
	if used := r.pos & 7; used > 0 {
		skipped = byte(8 - used)
		r.pos += int(skipped)
	}
	return
}

// TryReadBits tries to read n bits.
//
// If there was a previous TryError, it does nothing. Else it calls ReadBits(),
// returns the data it provides and stores the error in the TryError field.
func (r *Reader) TryReadBits(n byte) (u uint64) {
	if r.TryError == nil {
		u, r.TryError = r.ReadBits(n)
	}
	return
}

// TryReadBitsEndian is the TryXXX() flavor of ReadBitsEndian.
func (r *Reader) TryReadBitsEndian(n byte, e Endian) (u uint64) {
	if r.TryError == nil {
		u, r.TryError = r.ReadBitsEndian(n, e)
	}
	return
}

// TryReadBool tries to read one bit.
//
// If there was a previous TryError, it does nothing. Else it calls ReadBool(),
// returns the data it provides and stores the error in the TryError field.
func (r *Reader) TryReadBool() (b bool) {
	if r.TryError == nil {
		b, r.TryError = r.ReadBool()
	}
	return
}

// TryReadByte tries to read the next 8 bits.
//
// If there was a previous TryError, it does nothing. Else it calls ReadByte(),
// returns the data it provides and stores the error in the TryError field.
func (r *Reader) TryReadByte() (b byte) {
	if r.TryError == nil {
		b, r.TryError = r.ReadByte()
	}
	return
}
