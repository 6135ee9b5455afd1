package bfix

import (
	"errors"
	"fmt"
)

// Status is the outcome of a codec call.
// Values equal the return codes of the diagnostic build of the C library.
type Status int

const (
	StatusOK                    Status = 0
	StatusInvalidOffset         Status = -1 // Bit offset is less than 1.
	StatusInvalidLengthTooSmall Status = -2 // Bit length is less than 1.
	StatusInvalidLengthTooLarge Status = -3 // Bit length exceeds MaxBits.
	StatusInvalidEndian         Status = -4 // Endian selector is not recognized.
	StatusShortBuffer           Status = -5 // Buffer does not cover the field.
)

// codeUnknown is what Code reports for errors not produced by this package.
const codeUnknown = -128

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidOffset:
		return "invalid offset"
	case StatusInvalidLengthTooSmall:
		return "invalid length (too small)"
	case StatusInvalidLengthTooLarge:
		return "invalid length (too large)"
	case StatusInvalidEndian:
		return "invalid endian"
	case StatusShortBuffer:
		return "short buffer"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// FieldError reports a rejected field descriptor.
// It is returned before the buffer is touched.
type FieldError struct {
	Status Status
	Offset int    // 1-based bit offset as given by the caller.
	Len    int    // Bit length as given by the caller.
	Endian Endian // Endian selector as given by the caller.
	BufLen int    // Length of the buffer in bytes, set for StatusShortBuffer.
}

func (e *FieldError) Error() string {
	switch e.Status {
	case StatusInvalidOffset:
		return fmt.Sprintf("bfix: invalid bit offset %d, must be at least 1", e.Offset)
	case StatusInvalidLengthTooSmall:
		return fmt.Sprintf("bfix: invalid bit length %d, must be at least 1", e.Len)
	case StatusInvalidLengthTooLarge:
		return fmt.Sprintf("bfix: invalid bit length %d, must be at most %d", e.Len, MaxBits)
	case StatusInvalidEndian:
		return fmt.Sprintf("bfix: invalid endian selector %d", int(e.Endian))
	case StatusShortBuffer:
		return fmt.Sprintf("bfix: field at bit %d of length %d needs %d bytes, buffer has %d",
			e.Offset, e.Len, SpanBytes(e.Offset, e.Len), e.BufLen)
	default:
		return "bfix: " + e.Status.String()
	}
}

// Is makes errors.Is match any *FieldError with the same Status,
// so the Err* sentinels can be used as targets.
func (e *FieldError) Is(target error) bool {
	t, ok := target.(*FieldError)
	return ok && t.Status == e.Status
}

// Sentinels for use with errors.Is.
var (
	ErrInvalidOffset         = &FieldError{Status: StatusInvalidOffset}
	ErrInvalidLengthTooSmall = &FieldError{Status: StatusInvalidLengthTooSmall}
	ErrInvalidLengthTooLarge = &FieldError{Status: StatusInvalidLengthTooLarge}
	ErrInvalidEndian         = &FieldError{Status: StatusInvalidEndian}
	ErrShortBuffer           = &FieldError{Status: StatusShortBuffer}
)

// Code returns the numeric status of err: 0 for nil, the Status of a *FieldError,
// and -128 for anything else.
func Code(err error) int {
	if err == nil {
		return int(StatusOK)
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return int(fe.Status)
	}
	return codeUnknown
}
