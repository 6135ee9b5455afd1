/*

Package bfix inserts and extracts arbitrary bit fields of a byte slice.

Insert() writes the n lowest bits of an uint64 value to any bit position of a slice,
Extract() reads them back. Fields may be 1 to 64 bits long and may start and end anywhere,
crossing as many byte boundaries as needed. Bits outside of a field are never changed.

Bit numbering

Bit offsets are 1-based: bit 1 is the highest bit of the first byte, bit 9 is the highest
bit of the second byte and so on. For example if the slice holds the bytes 0x8d and 0xfe:

    HEXA    8    d     f    e
    BINARY  1000 1101  1111 1110
            a    bb c  cccc ccc
    OFFSET  1    5  8  9

Then Extract will return the following values:

    a, err := Extract(buf, 1, 1, BigEndian) //        1 = 0x01
    b, err := Extract(buf, 5, 2, BigEndian) //       11 = 0x03
    c, err := Extract(buf, 8, 8, BigEndian) // 11111111 = 0xff

Endianness

Fields are big endian by default: the first bit of the field is the highest bit of the value.
A LittleEndian field is split into bytes, lowest byte first, and the bytes are stored one after
the other, each byte highest bit first. A 16 bit little endian field at offset 1 holding 0x1234
occupies the bytes 0x34 0x12. If the length is not a multiple of 8, the last (highest) byte is
shorter. Fields of at most 8 bits look the same in both byte orders.

Errors

Invalid arguments are reported with a *FieldError before the slice is touched. Its Status tells
what was wrong, and errors.Is() can be used with the ErrXXX variables:

    if err := Insert(buf, 0, 8, 0xff, BigEndian); errors.Is(err, ErrInvalidOffset) {
        // offset must be at least 1
    }

Code() maps an error to the numeric return code of the C bfix library (0 meaning success).

Unlike the C library, no trailing pad bytes are needed: only the bytes covered by the field are
read or written, and a slice that is too short is reported as ErrShortBuffer.

Reader and Writer walk a slice field by field, maintaining the bit position for the caller.

*/
package bfix
