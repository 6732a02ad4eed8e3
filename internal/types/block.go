package types

import "fmt"

// BlockType is the 7-bit metadata block type code carried in a block header.
type BlockType uint8

// Metadata block type codes defined by the FLAC format.
const (
	BlockTypeStreamInfo    BlockType = 0
	BlockTypePadding       BlockType = 1
	BlockTypeApplication   BlockType = 2
	BlockTypeSeekTable     BlockType = 3
	BlockTypeVorbisComment BlockType = 4
	BlockTypeCueSheet      BlockType = 5
	BlockTypePicture       BlockType = 6

	// BlockTypeReservedMin and BlockTypeReservedMax bound the reserved range.
	BlockTypeReservedMin BlockType = 7
	BlockTypeReservedMax BlockType = 126

	// BlockTypeInvalid is the one 7-bit code the format forbids.
	BlockTypeInvalid BlockType = 127
)

// String returns the canonical name used by metaflac.
func (t BlockType) String() string {
	switch t {
	case BlockTypeStreamInfo:
		return "STREAMINFO"
	case BlockTypePadding:
		return "PADDING"
	case BlockTypeApplication:
		return "APPLICATION"
	case BlockTypeSeekTable:
		return "SEEKTABLE"
	case BlockTypeVorbisComment:
		return "VORBIS_COMMENT"
	case BlockTypeCueSheet:
		return "CUESHEET"
	case BlockTypePicture:
		return "PICTURE"
	}
	if t >= BlockTypeReservedMin && t <= BlockTypeReservedMax {
		return "RESERVED"
	}
	return "INVALID"
}

// Header is a decoded 4-byte metadata block header.
type Header struct {
	// IsLast is set on the final metadata block before audio frames.
	IsLast bool

	// Type is the block type code (0-127).
	Type BlockType

	// Length is the exact size of the block body in bytes (24 bits).
	Length uint32
}

// Block is one decoded metadata block body.
//
// The set of implementations is closed: *StreamInfo, Padding, Application,
// SeekTable, *VorbisComment, CueSheet, Picture, Reserved and Invalid. Use a
// type switch to inspect it.
type Block interface {
	// Type reports the block type code this variant was decoded from.
	Type() BlockType

	block()
}

// Padding is a PADDING block. Its body is consumed but not retained.
type Padding struct{}

// Application is an APPLICATION block. Its body is consumed but not retained.
type Application struct{}

// SeekTable is a SEEKTABLE block. Its body is consumed but not retained.
type SeekTable struct{}

// CueSheet is a CUESHEET block. Its body is consumed but not retained.
type CueSheet struct{}

// Picture is a PICTURE block. Its body is consumed but not retained.
type Picture struct{}

// Reserved is a block whose type code lies in the reserved range 7-126.
type Reserved struct {
	Code BlockType
}

// Invalid is a block whose type code is outside every defined range.
type Invalid struct {
	Code BlockType
}

func (Padding) Type() BlockType     { return BlockTypePadding }
func (Application) Type() BlockType { return BlockTypeApplication }
func (SeekTable) Type() BlockType   { return BlockTypeSeekTable }
func (CueSheet) Type() BlockType    { return BlockTypeCueSheet }
func (Picture) Type() BlockType     { return BlockTypePicture }
func (r Reserved) Type() BlockType  { return r.Code }
func (i Invalid) Type() BlockType   { return i.Code }

func (*StreamInfo) block()    {}
func (*VorbisComment) block() {}
func (Padding) block()        {}
func (Application) block()    {}
func (SeekTable) block()      {}
func (CueSheet) block()       {}
func (Picture) block()        {}
func (Reserved) block()       {}
func (Invalid) block()        {}

// Entry pairs a block header with the block it describes.
type Entry struct {
	Header Header
	Block  Block
}

// String returns a short description such as "STREAMINFO (34 bytes, last)".
func (e Entry) String() string {
	s := fmt.Sprintf("%s (%d bytes", e.Header.Type, e.Header.Length)
	if e.Header.IsLast {
		s += ", last"
	}
	return s + ")"
}

// Snapshot is the ordered list of metadata blocks read from one stream.
//
// Entries appear in exactly the order they occur in the source. The final
// entry is the one whose header has IsLast set.
type Snapshot []Entry

// StreamInfo returns the first STREAMINFO block, if any.
func (s Snapshot) StreamInfo() (*StreamInfo, bool) {
	for _, e := range s {
		if si, ok := e.Block.(*StreamInfo); ok {
			return si, true
		}
	}
	return nil, false
}

// VorbisComment returns the first VORBIS_COMMENT block, if any.
func (s Snapshot) VorbisComment() (*VorbisComment, bool) {
	for _, e := range s {
		if vc, ok := e.Block.(*VorbisComment); ok {
			return vc, true
		}
	}
	return nil, false
}
