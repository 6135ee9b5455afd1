package bfix

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/icza/mighty"
)

func TestWriter(t *testing.T) {
	b := make([]byte, 11)

	w := NewWriter(b)

	expected := []byte{0xc1, 0x7f, 0xac, 0x89, 0x24, 0x78, 0x01, 0x02, 0xf8, 0x08, 0xf0}

	eq, expEq := mighty.EqExpEq(t)

	eq(1, w.BitPosition())
	eq(nil, w.WriteByte(0xc1))
	eq(9, w.BitPosition())
	eq(nil, w.WriteBool(false))
	eq(nil, w.WriteBits(0x3f, 6))
	eq(16, w.BitPosition())
	eq(nil, w.WriteBool(true))
	eq(nil, w.WriteByte(0xac))
	eq(nil, w.WriteBits(0x01, 1))
	eq(nil, w.WriteBits(0x1248f, 20))
	eq(46, w.BitPosition())
	eq(6, len(w.Bytes()))

	expEq(byte(3))(w.Align())
	eq(49, w.BitPosition())
	expEq(2)(w.Write([]byte{0x01, 0x02}))
	eq(nil, w.WriteBits(0x0f, 4))
	expEq(2)(w.Write([]byte{0x80, 0x8f}))
	eq(85, w.BitPosition())
	expEq(byte(4))(w.Align())
	expEq(byte(0))(w.Align())
	eq(89, w.BitPosition())

	eq(true, bytes.Equal(w.Bytes(), expected))
	eq(true, bytes.Equal(b, expected))

	// Buffer is full.
	eq(true, errors.Is(w.WriteBool(true), ErrShortBuffer))
	_, err := w.Write([]byte{1})
	eq(true, errors.Is(err, ErrShortBuffer))
	eq(89, w.BitPosition())
	eq(true, bytes.Equal(b, expected))
}

func TestWriterAlignClears(t *testing.T) {
	b := []byte{0xff, 0xff}

	w := NewWriter(b)
	eq, expEq := mighty.EqExpEq(t)

	eq(nil, w.WriteBits(0x5, 3))
	expEq(byte(5))(w.Align())
	eq(true, bytes.Equal(b, []byte{0xa0, 0xff}))
}

func TestWriterUnalignedWrite(t *testing.T) {
	b := make([]byte, 3)

	w := NewWriter(b)
	eq, expEq := mighty.EqExpEq(t)

	eq(nil, w.WriteBits(0x1, 4))
	expEq(2)(w.Write([]byte{0xab, 0xcd}))
	eq(true, bytes.Equal(b, []byte{0x1a, 0xbc, 0xd0}))

	// Second byte would not fit: first one is written.
	w = NewWriter(make([]byte, 2))
	eq(nil, w.WriteBits(0x1, 4))
	n, err := w.Write([]byte{0xab, 0xcd})
	eq(1, n)
	eq(true, errors.Is(err, ErrShortBuffer))
}

func TestWriterTry(t *testing.T) {
	b := make([]byte, 7)

	w := NewWriter(b)

	expected := []byte{0xc1, 0x7f, 0xac, 0x89, 0x24, 0x78, 0x34}

	eq := mighty.Eq(t)

	w.TryWriteByte(0xc1)
	w.TryWriteBool(false)
	w.TryWriteBits(0x3f, 6)
	w.TryWriteBool(true)
	w.TryWriteByte(0xac)
	w.TryWriteBits(0x01, 1)
	w.TryWriteBits(0x1248f, 20)
	eq(nil, w.TryError)
	eq(uint8(3), w.TryAlign())
	eq(nil, w.TryError)

	w.TryWriteBitsEndian(0x1234, 16, LittleEndian)
	eq(true, errors.Is(w.TryError, ErrShortBuffer))

	// Sticky: nothing is written after the first error.
	w.TryWriteByte(0x34)
	eq(49, w.BitPosition())

	w.TryError = nil
	w.TryWriteByte(0x34)
	eq(nil, w.TryError)
	eq(true, bytes.Equal(b, expected))
}

func TestWriterReaderChain(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	expected := make([]uint64, 10000)
	bits := make([]byte, len(expected))
	endians := make([]Endian, len(expected))

	total := 0
	for i := range expected {
		bits[i] = byte(1 + rnd.Intn(MaxBits))
		expected[i] = rnd.Uint64() & (uint64(1)<<bits[i] - 1)
		endians[i] = Endian(rnd.Intn(2))
		total += int(bits[i])
	}

	b := make([]byte, SpanBytes(1, total))
	w := NewWriter(b)

	// Writing
	for i, v := range expected {
		w.TryWriteBitsEndian(v, bits[i], endians[i])
	}
	if w.TryError != nil {
		t.Fatal("Got error:", w.TryError)
	}

	r := NewReader(b)

	// Reading (verifying)
	for i, v := range expected {
		if u, err := r.ReadBitsEndian(bits[i], endians[i]); u != v || err != nil {
			t.Errorf("Idx: %d, Got: %x, want: %x, bits: %d, endian: %v, error: %v", i, u, v, bits[i], endians[i], err)
		}
	}
}
