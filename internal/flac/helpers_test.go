package flac

import (
	"bytes"
	"encoding/binary"
)

// goldenStreamInfo is a literal STREAMINFO body:
// 4096/4096 block size, 14/14879 frame size, 44100 Hz, stereo, 16 bits,
// 1000 samples, MD5 of the empty string.
var goldenStreamInfo = []byte{
	0x10, 0x00, // min block size
	0x10, 0x00, // max block size
	0x00, 0x00, 0x0E, // min frame size
	0x00, 0x3A, 0x1F, // max frame size
	0x0A, 0xC4, 0x42, 0xF0, 0x00, 0x00, 0x03, 0xE8, // rate | channels | bps | samples
	0xD4, 0x1D, 0x8C, 0xD9, 0x8F, 0x00, 0xB2, 0x04, // MD5
	0xE9, 0x80, 0x09, 0x98, 0xEC, 0xF8, 0x42, 0x7E,
}

var goldenMD5 = [16]byte{
	0xD4, 0x1D, 0x8C, 0xD9, 0x8F, 0x00, 0xB2, 0x04,
	0xE9, 0x80, 0x09, 0x98, 0xEC, 0xF8, 0x42, 0x7E,
}

// packStreamInfo builds a 34-byte STREAMINFO body from raw field values.
// channels and bps are the stored fields (count minus one).
func packStreamInfo(sampleRate, channels, bps, totalSamples uint64) []byte {
	buf := &bytes.Buffer{}

	binary.Write(buf, binary.BigEndian, uint16(4096))
	binary.Write(buf, binary.BigEndian, uint16(4096))
	buf.Write([]byte{0x00, 0x00, 0x00}) // min frame size
	buf.Write([]byte{0x00, 0x00, 0x00}) // max frame size

	// Pack into 64 bits: [sample_rate(20)] [channels-1(3)] [bits-1(5)] [total_samples(36)]
	packed := (sampleRate << 44) | (channels << 41) | (bps << 36) | totalSamples
	binary.Write(buf, binary.BigEndian, packed)

	buf.Write(make([]byte, 16))
	return buf.Bytes()
}

// buildComment encodes a VORBIS_COMMENT body.
func buildComment(vendor string, entries ...string) []byte {
	buf := &bytes.Buffer{}

	binary.Write(buf, binary.LittleEndian, uint32(len(vendor)))
	buf.WriteString(vendor)

	binary.Write(buf, binary.LittleEndian, uint32(len(entries)))
	for _, entry := range entries {
		binary.Write(buf, binary.LittleEndian, uint32(len(entry)))
		buf.WriteString(entry)
	}

	return buf.Bytes()
}

// writeBlock appends a header and body to buf.
func writeBlock(buf *bytes.Buffer, blockType byte, last bool, body []byte) {
	b0 := blockType & 0x7F
	if last {
		b0 |= 0x80
	}
	n := len(body)
	buf.Write([]byte{b0, byte(n >> 16), byte(n >> 8), byte(n)})
	buf.Write(body)
}
