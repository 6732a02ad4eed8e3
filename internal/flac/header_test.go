package flac

import (
	"testing"

	"github.com/simonhull/flacmeta/internal/types"
)

func TestDecodeHeader(t *testing.T) {
	tests := []struct {
		name string
		raw  [4]byte
		want types.Header
	}{
		{
			name: "last streaminfo",
			raw:  [4]byte{0x80, 0x00, 0x00, 0x22},
			want: types.Header{IsLast: true, Type: types.BlockTypeStreamInfo, Length: 34},
		},
		{
			name: "not last type zero",
			raw:  [4]byte{0x00, 0x00, 0x00, 0x00},
			want: types.Header{IsLast: false, Type: 0, Length: 0},
		},
		{
			name: "type 127 not last",
			raw:  [4]byte{0x7F, 0x00, 0x00, 0x00},
			want: types.Header{IsLast: false, Type: 127, Length: 0},
		},
		{
			name: "vorbis comment last",
			raw:  [4]byte{0x84, 0x00, 0x01, 0x00},
			want: types.Header{IsLast: true, Type: types.BlockTypeVorbisComment, Length: 256},
		},
		{
			name: "max length",
			raw:  [4]byte{0x01, 0xFF, 0xFF, 0xFF},
			want: types.Header{IsLast: false, Type: types.BlockTypePadding, Length: 16777215},
		},
		{
			name: "all bits set",
			raw:  [4]byte{0xFF, 0x12, 0x34, 0x56},
			want: types.Header{IsLast: true, Type: 127, Length: 0x123456},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeHeader(tt.raw)
			if got != tt.want {
				t.Errorf("DecodeHeader(% x) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDecodeHeader_LengthIgnoresFirstByte(t *testing.T) {
	for b0 := 0; b0 < 256; b0++ {
		h := DecodeHeader([4]byte{byte(b0), 0xAB, 0xCD, 0xEF})
		if h.Length != 0xABCDEF {
			t.Fatalf("byte0=0x%02x: length = 0x%06x, want 0xabcdef", b0, h.Length)
		}
		if h.IsLast != (b0&0x80 != 0) {
			t.Fatalf("byte0=0x%02x: IsLast = %v", b0, h.IsLast)
		}
		if uint8(h.Type) != uint8(b0)&0x7F {
			t.Fatalf("byte0=0x%02x: Type = %d", b0, h.Type)
		}
	}
}
