package flac

import (
	"fmt"

	"github.com/simonhull/flacmeta/internal/binary"
	"github.com/simonhull/flacmeta/internal/types"
)

// DecodeVorbisComment decodes a VORBIS_COMMENT body.
//
// Unlike the rest of FLAC metadata, the integers here are little-endian:
//
//	[vendor length(32)] [vendor string]
//	[comment count(32)]
//	  [comment length(32)] [comment string]  (repeated)
//
// Every length and count is checked against the body before it is used,
// so a malformed body yields *types.OutOfRangeLengthError or
// *types.TextDecodeError and never reads past the slice.
func DecodeVorbisComment(body []byte) (*types.VorbisComment, error) {
	c := binary.NewCursor(body)

	vendorLength, err := binary.ReadLE[uint32](c, "vendor string length")
	if err != nil {
		return nil, err
	}
	vendor, err := c.UTF8(uint64(vendorLength), "vendor string")
	if err != nil {
		return nil, err
	}

	numComments, err := binary.ReadLE[uint32](c, "comment count")
	if err != nil {
		return nil, err
	}

	// Each comment needs at least its 4-byte length prefix, so a count
	// larger than that bound cannot fit and is rejected before allocating.
	if uint64(numComments)*4 > uint64(c.Remaining()) {
		return nil, &types.OutOfRangeLengthError{
			What:      "comment list",
			Offset:    c.Offset(),
			Length:    uint64(numComments) * 4,
			Remaining: c.Remaining(),
		}
	}

	entries := make([]string, 0, numComments)
	for i := uint32(0); i < numComments; i++ {
		commentLength, err := binary.ReadLE[uint32](c, fmt.Sprintf("comment %d length", i))
		if err != nil {
			return nil, err
		}
		comment, err := c.UTF8(uint64(commentLength), fmt.Sprintf("comment %d", i))
		if err != nil {
			return nil, err
		}
		entries = append(entries, comment)
	}

	return &types.VorbisComment{
		Vendor:  vendor,
		Entries: entries,
	}, nil
}
