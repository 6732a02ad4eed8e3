package flac

import (
	"bytes"
	"errors"
	"testing"

	"github.com/simonhull/flacmeta/internal/binary"
	"github.com/simonhull/flacmeta/internal/types"
)

func TestReadSignature_Valid(t *testing.T) {
	src := bytes.NewReader([]byte("fLaC\x00\x00"))
	sr := binary.NewStreamReader(src, "test.flac")

	if err := ReadSignature(sr); err != nil {
		t.Fatalf("expected valid FLAC signature, got %v", err)
	}
	if sr.Offset() != 4 {
		t.Errorf("expected offset 4 after signature, got %d", sr.Offset())
	}
	if src.Len() != 2 {
		t.Errorf("signature check should consume exactly 4 bytes, %d left", src.Len())
	}
}

func TestReadSignature_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"wrong last byte", []byte("fLaX")},
		{"wrong case", []byte("FLAC")},
		{"ogg", []byte("OggS")},
		{"id3", []byte("ID3\x04")},
		{"zeros", []byte{0, 0, 0, 0}},
		{"empty", nil},
		{"one byte", []byte("f")},
		{"three bytes", []byte("fLa")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := binary.NewStreamReader(bytes.NewReader(tt.data), "bad.flac")

			err := ReadSignature(sr)

			var sigErr *types.InvalidSignatureError
			if !errors.As(err, &sigErr) {
				t.Fatalf("expected InvalidSignatureError, got %T: %v", err, err)
			}
			if sigErr.Path != "bad.flac" {
				t.Errorf("expected path in error, got %q", sigErr.Path)
			}
		})
	}
}

func TestReadSignature_NoFurtherReads(t *testing.T) {
	src := bytes.NewReader([]byte("RIFF\x80\x00\x00\x22"))
	sr := binary.NewStreamReader(src, "test.wav")

	if err := ReadSignature(sr); err == nil {
		t.Fatal("expected error for RIFF signature")
	}
	if src.Len() != 4 {
		t.Errorf("expected 4 bytes left unread, got %d", src.Len())
	}
}
