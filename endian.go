package bfix

// Endian selects how the constituent bytes of a multi-byte field are ordered
// in the buffer. The numeric values match the selector codes of the C bfix library.
type Endian int

const (
	BigEndian    Endian = iota // Most significant byte first.
	LittleEndian               // Least significant byte first.
	maxEndianVal = LittleEndian
)

// IsValid tells if e is one of the recognized selectors.
func (e Endian) IsValid() bool {
	return e >= BigEndian && e <= maxEndianVal
}

func (e Endian) String() string {
	switch e {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return "<unknown>"
	}
}
