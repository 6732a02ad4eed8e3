package types

import (
	"encoding/hex"
	"time"

	"github.com/simonhull/flacmeta/internal/vorbis"
)

// StreamInfo holds the fields of a STREAMINFO block exactly as decoded.
//
// No range validation is applied. A zero sample rate or an odd channel
// indicator is passed through unchanged.
type StreamInfo struct {
	// MinBlockSize and MaxBlockSize are in samples.
	MinBlockSize uint16
	MaxBlockSize uint16

	// MinFrameSize and MaxFrameSize are in bytes (24 bits, 0 = unknown).
	MinFrameSize uint32
	MaxFrameSize uint32

	// SampleRate in Hz (20 bits).
	SampleRate uint32

	// Channels is the raw indicator: bits 1-3 of byte 12, unshifted.
	Channels uint8

	// BitsPerSample is the decoded 5-bit field plus one.
	BitsPerSample uint8

	// TotalSamples is the 36-bit sample count (0 = unknown).
	TotalSamples uint64

	// MD5 is the checksum of the unencoded audio data.
	MD5 [16]byte
}

// Type implements Block.
func (*StreamInfo) Type() BlockType { return BlockTypeStreamInfo }

// Duration returns TotalSamples / SampleRate, or 0 if the sample rate is 0.
func (si *StreamInfo) Duration() time.Duration {
	if si.SampleRate == 0 {
		return 0
	}
	seconds := float64(si.TotalSamples) / float64(si.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}

// MD5Hex returns the checksum as lowercase hex.
func (si *StreamInfo) MD5Hex() string {
	return hex.EncodeToString(si.MD5[:])
}

// VorbisComment holds a decoded VORBIS_COMMENT block.
type VorbisComment struct {
	// Vendor identifies the encoder.
	Vendor string

	// Entries are the user comments in stored order, usually "KEY=VALUE".
	Entries []string
}

// Type implements Block.
func (*VorbisComment) Type() BlockType { return BlockTypeVorbisComment }

// Get returns every value stored under key, compared case-insensitively.
func (vc *VorbisComment) Get(key string) []string {
	return vorbis.Lookup(vc.Entries, key)
}

// Fields groups entries by upper-cased key, keeping value order.
// Entries without '=' are left out.
func (vc *VorbisComment) Fields() map[string][]string {
	return vorbis.Fields(vc.Entries)
}
