package bfix

import "fmt"

// Field describes one bit field of a buffer.
// The zero value is not valid: Offset is 1-based.
type Field struct {
	Offset int    // 1-based offset of the first bit.
	Len    int    // Number of bits, 1..MaxBits.
	Endian Endian // Byte order of multi-byte fields.
}

// Validate checks the descriptor without looking at a buffer.
func (f Field) Validate() error {
	// Buffer length is irrelevant here, pass one that always fits.
	return check(SpanBytes(f.Offset, f.Len), f.Offset, f.Len, f.Endian)
}

// Put inserts v into buf. See Insert.
func (f Field) Put(buf []byte, v uint64) error {
	return Insert(buf, f.Offset, f.Len, v, f.Endian)
}

// Get extracts the field from buf. See Extract.
func (f Field) Get(buf []byte) (uint64, error) {
	return Extract(buf, f.Offset, f.Len, f.Endian)
}

// PutInt inserts a signed value into buf. See InsertInt.
func (f Field) PutInt(buf []byte, v int64) error {
	return InsertInt(buf, f.Offset, f.Len, v, f.Endian)
}

// GetInt extracts the field from buf as a signed value. See ExtractInt.
func (f Field) GetInt(buf []byte) (int64, error) {
	return ExtractInt(buf, f.Offset, f.Len, f.Endian)
}

// End returns the 1-based offset of the first bit after the field,
// which is where an adjacent field would start.
func (f Field) End() int {
	return f.Offset + f.Len
}

// Bytes returns the buffer size needed to hold the field.
func (f Field) Bytes() int {
	return SpanBytes(f.Offset, f.Len)
}

func (f Field) String() string {
	return fmt.Sprintf("{%d %d %v}", f.Offset, f.Len, f.Endian)
}
