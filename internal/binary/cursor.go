package binary

import (
	"unicode/utf8"

	"github.com/simonhull/flacmeta/internal/types"
)

// Cursor reads sequentially from an in-memory block body.
//
// Every read is bounds-checked before slicing. A read that would run past
// the end of the body fails with *types.OutOfRangeLengthError and leaves
// the cursor where it was.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor creates a Cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset returns the current position within the body.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// Bytes returns the next n bytes and advances past them.
// The returned slice aliases the body.
func (c *Cursor) Bytes(n uint64, what string) ([]byte, error) {
	if n > uint64(c.Remaining()) {
		return nil, &types.OutOfRangeLengthError{
			What:      what,
			Offset:    c.off,
			Length:    n,
			Remaining: c.Remaining(),
		}
	}
	b := c.buf[c.off : c.off+int(n)]
	c.off += int(n)
	return b, nil
}

// UTF8 reads n bytes and returns them as a string, failing with
// *types.TextDecodeError if they are not valid UTF-8.
func (c *Cursor) UTF8(n uint64, what string) (string, error) {
	start := c.off
	b, err := c.Bytes(n, what)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &types.TextDecodeError{What: what, Offset: start}
	}
	return string(b), nil
}

// ReadLE reads a little-endian value of type T and advances the cursor.
//
// Example:
//
//	count, err := binary.ReadLE[uint32](c, "comment count")
func ReadLE[T Unsigned](c *Cursor, what string) (T, error) {
	return ReadEndian[T](c, what, LittleEndian)
}

// ReadBE reads a big-endian value of type T and advances the cursor.
func ReadBE[T Unsigned](c *Cursor, what string) (T, error) {
	return ReadEndian[T](c, what, BigEndian)
}

// ReadEndian reads a value of type T with the given byte order.
// Most code should use ReadLE or ReadBE instead.
func ReadEndian[T Unsigned](c *Cursor, what string, endian Endianness) (T, error) {
	b, err := c.Bytes(uint64(SizeOf[T]()), what)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](b, endian), nil
}
