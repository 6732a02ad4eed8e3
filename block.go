package flacmeta

import (
	"github.com/simonhull/flacmeta/internal/types"
)

// BlockType is an alias to types.BlockType.
type BlockType = types.BlockType

// Re-export block type codes.
const (
	BlockTypeStreamInfo    = types.BlockTypeStreamInfo
	BlockTypePadding       = types.BlockTypePadding
	BlockTypeApplication   = types.BlockTypeApplication
	BlockTypeSeekTable     = types.BlockTypeSeekTable
	BlockTypeVorbisComment = types.BlockTypeVorbisComment
	BlockTypeCueSheet      = types.BlockTypeCueSheet
	BlockTypePicture       = types.BlockTypePicture
	BlockTypeInvalid       = types.BlockTypeInvalid
)

// Header is an alias to types.Header.
type Header = types.Header

// Block is an alias to types.Block.
type Block = types.Block

// Entry is an alias to types.Entry.
type Entry = types.Entry

// Snapshot is an alias to types.Snapshot.
type Snapshot = types.Snapshot

// StreamInfo is an alias to types.StreamInfo.
type StreamInfo = types.StreamInfo

// VorbisComment is an alias to types.VorbisComment.
type VorbisComment = types.VorbisComment

// Opaque block variants. Their bodies are consumed but not retained.
type (
	Padding     = types.Padding
	Application = types.Application
	SeekTable   = types.SeekTable
	CueSheet    = types.CueSheet
	Picture     = types.Picture
	Reserved    = types.Reserved
	Invalid     = types.Invalid
)
