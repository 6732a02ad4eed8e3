package flac

import (
	"github.com/simonhull/flacmeta/internal/binary"
	"github.com/simonhull/flacmeta/internal/types"
)

// HeaderSize is the size of a metadata block header in bytes.
const HeaderSize = 4

// DecodeHeader decodes a metadata block header. Every 4-byte value is a
// valid header.
//
//	byte 0:    [is_last(1)] [block_type(7)]
//	bytes 1-3: block length, 24-bit big-endian
func DecodeHeader(b [HeaderSize]byte) types.Header {
	return types.Header{
		IsLast: b[0]>>7 == 1,
		Type:   types.BlockType(b[0] & 0x7F),
		Length: binary.Decode[uint32](b[:], binary.BigEndian) & 0x00FFFFFF,
	}
}
