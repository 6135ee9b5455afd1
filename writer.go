/*

Writer definition and implementation.

*/

package bfix

// Writer inserts consecutive fields into a caller supplied byte slice, keeping
// track of the bit position. It never grows the slice: writing past its end
// fails with a StatusShortBuffer error and leaves the slice untouched.
type Writer struct {
	buf []byte
	pos int // 0-based position of the next bit

	// TryError holds the first error occurred in TryXXX() methods.
	TryError error
}

// NewWriter returns a new Writer writing into buf, starting at bit 1.
// Bits of buf not covered by writes keep their values.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// BitPosition returns the 1-based offset of the next bit to be written.
func (w *Writer) BitPosition() int {
	return w.pos + 1
}

// Bytes returns the part of the buffer written so far, including a partially
// written last byte.
func (w *Writer) Bytes() []byte {
	return w.buf[:SpanBytes(1, w.pos)]
}

// WriteBitsEndian writes the n lowest bits of r as a field of the given endianness.
func (w *Writer) WriteBitsEndian(r uint64, n byte, e Endian) (err error) {
	if err = Insert(w.buf, w.BitPosition(), int(n), r, e); err != nil {
		return
	}
	w.pos += int(n)
	return nil
}

// WriteBits writes the n lowest bits of r (big endian).
func (w *Writer) WriteBits(r uint64, n byte) (err error) {
	return w.WriteBitsEndian(r, n, BigEndian)
}

// WriteBool writes one bit: 1 if param is true, 0 otherwise.
func (w *Writer) WriteBool(b bool) (err error) {
	var r uint64
	if b {
		r = 1
	}
	return w.WriteBits(r, 1)
}

// WriteByte implements io.ByteWriter. It writes 8 bits,
// not necessarily aligned to a byte boundary.
func (w *Writer) WriteByte(b byte) (err error) {
	return w.WriteBits(uint64(b), 8)
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.pos&7 == 0 {
		// Aligned: plain copy.
		if len(w.buf)-w.pos>>3 < len(p) {
			return 0, &FieldError{Status: StatusShortBuffer, Offset: w.BitPosition(), Len: len(p) * 8, BufLen: len(w.buf)}
		}
		n = copy(w.buf[w.pos>>3:], p)
		w.pos += n * 8
		return n, nil
	}

	for i, b := range p {
		if err = w.WriteByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Align aligns the bit position to a byte boundary,
// so the next write starts at the next byte.
// The skipped bits are cleared.
// Returns the number of skipped bits.
func (w *Writer) Align() (skipped byte, err error) {
	if used := w.pos & 7; used > 0 {
		n := byte(8 - used)
		if err = w.WriteBits(0, n); err != nil {
			return
		}
		skipped = n
	}
	return
}

// TryWriteBits tries to write out the n lowest bits of r.
//
// If there was a previous TryError, it does nothing. Else it calls WriteBits(),
// and stores the error in the TryError field.
func (w *Writer) TryWriteBits(r uint64, n byte) {
	if w.TryError == nil {
		w.TryError = w.WriteBits(r, n)
	}
}

// TryWriteBitsEndian is the TryXXX() flavor of WriteBitsEndian.
func (w *Writer) TryWriteBitsEndian(r uint64, n byte, e Endian) {
	if w.TryError == nil {
		w.TryError = w.WriteBitsEndian(r, n, e)
	}
}

// TryWriteBool tries to write out one bit.
//
// If there was a previous TryError, it does nothing. Else it calls WriteBool(),
// and stores the error in the TryError field.
func (w *Writer) TryWriteBool(b bool) {
	if w.TryError == nil {
		w.TryError = w.WriteBool(b)
	}
}

// TryWriteByte tries to write 8 bits.
//
// If there was a previous TryError, it does nothing. Else it calls WriteByte(),
// and stores the error in the TryError field.
func (w *Writer) TryWriteByte(b byte) {
	if w.TryError == nil {
		w.TryError = w.WriteByte(b)
	}
}

// TryAlign tries to align the bit position to a byte boundary.
//
// If there was a previous TryError, it does nothing. Else it calls Align(),
// returns the data it provides and stores the error in the TryError field.
func (w *Writer) TryAlign() (skipped byte) {
	if w.TryError == nil {
		skipped, w.TryError = w.Align()
	}
	return
}
