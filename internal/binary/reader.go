// Package binary provides bounds-checked binary reading primitives.
//
// StreamReader consumes a sequential byte source and fails with a typed
// error on short input. Cursor walks an in-memory block body and fails
// before any out-of-range slice access.
package binary

import (
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/flacmeta/internal/types"
)

// StreamReader wraps an io.Reader with offset tracking and exact-length reads.
//
// After every call, Offset reports the position directly after the last
// byte consumed from the source, whether the call succeeded or not.
type StreamReader struct {
	r    io.Reader
	path string
	off  int64
}

// NewStreamReader creates a StreamReader. path is used only in error messages.
func NewStreamReader(r io.Reader, path string) *StreamReader {
	return &StreamReader{
		r:    r,
		path: path,
	}
}

// Path returns the label associated with this reader.
func (sr *StreamReader) Path() string {
	return sr.path
}

// Offset returns the number of bytes consumed so far.
func (sr *StreamReader) Offset() int64 {
	return sr.off
}

// ReadFull fills b from the source.
//
// If the source ends first, it returns *types.TruncatedReadError. Other
// source errors are wrapped with context.
func (sr *StreamReader) ReadFull(b []byte, what string) error {
	start := sr.off
	n, err := io.ReadFull(sr.r, b)
	sr.off += int64(n)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &types.TruncatedReadError{
			Path:   sr.path,
			What:   what,
			Offset: start,
			Want:   len(b),
			Got:    n,
		}
	}
	return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, start, err)
}

// Read reads exactly n bytes into a new slice.
func (sr *StreamReader) Read(n int, what string) ([]byte, error) {
	b := make([]byte, n)
	if err := sr.ReadFull(b, what); err != nil {
		return nil, err
	}
	return b, nil
}

// Discard consumes exactly n bytes without retaining them.
func (sr *StreamReader) Discard(n int64, what string) error {
	start := sr.off
	got, err := io.CopyN(io.Discard, sr.r, n)
	sr.off += got
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return &types.TruncatedReadError{
			Path:   sr.path,
			What:   what,
			Offset: start,
			Want:   int(n),
			Got:    int(got),
		}
	}
	return fmt.Errorf("%s: failed to skip %s at offset %d: %w", sr.path, what, start, err)
}
