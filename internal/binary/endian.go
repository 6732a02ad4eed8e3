package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: FLAC block headers and STREAMINFO.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: Vorbis comment lengths and counts.
	LittleEndian
)

// Unsigned is the set of integer types the readers can decode.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// SizeOf returns the encoded width of T in bytes.
func SizeOf[T Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// Decode converts the first SizeOf[T]() bytes of b to T.
//
// The caller guarantees len(b) >= SizeOf[T](); Decode panics otherwise,
// like encoding/binary.
//
// Example:
//
//	rate := binary.Decode[uint32](data[10:14], binary.BigEndian) >> 12
func Decode[T Unsigned](b []byte, endian Endianness) T {
	var zero T
	var order binary.ByteOrder = binary.BigEndian
	if endian == LittleEndian {
		order = binary.LittleEndian
	}

	switch any(zero).(type) {
	case uint8:
		return T(b[0])
	case uint16:
		return T(order.Uint16(b))
	case uint32:
		return T(order.Uint32(b))
	default:
		return T(order.Uint64(b))
	}
}
