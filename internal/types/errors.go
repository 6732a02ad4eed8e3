package types

import "fmt"

// InvalidSignatureError is returned when a stream does not start with "fLaC".
type InvalidSignatureError struct {
	Path string
	Got  []byte
}

func (e *InvalidSignatureError) Error() string {
	return fmt.Sprintf("%s: invalid signature: got %q, expected \"fLaC\"", label(e.Path), e.Got)
}

// TruncatedReadError is returned when the source ends before a header or a
// declared block body has been fully read.
type TruncatedReadError struct {
	Path   string
	What   string
	Offset int64
	Want   int
	Got    int
}

func (e *TruncatedReadError) Error() string {
	return fmt.Sprintf("%s: truncated read of %s at offset %d: got %d bytes, expected %d",
		label(e.Path), e.What, e.Offset, e.Got, e.Want)
}

// InvalidBlockSizeError is returned when a fixed-size block has the wrong length.
type InvalidBlockSizeError struct {
	Type BlockType
	Size int
	Want int
}

func (e *InvalidBlockSizeError) Error() string {
	return fmt.Sprintf("invalid %s block size: %d (expected %d)", e.Type, e.Size, e.Want)
}

// TextDecodeError is returned when a declared text span is not valid UTF-8.
// Offset is relative to the start of the block body.
type TextDecodeError struct {
	What   string
	Offset int
}

func (e *TextDecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 in %s at body offset %d", e.What, e.Offset)
}

// OutOfRangeLengthError is returned when a length or count inside a block
// body would require reading past the end of that body.
// Offset is relative to the start of the block body.
type OutOfRangeLengthError struct {
	What      string
	Offset    int
	Length    uint64
	Remaining int
}

func (e *OutOfRangeLengthError) Error() string {
	return fmt.Sprintf("%s of %d bytes at body offset %d exceeds remaining %d bytes",
		e.What, e.Length, e.Offset, e.Remaining)
}

// BlockOrderError is returned, when ordering is enforced, if the first
// metadata block is not STREAMINFO.
type BlockOrderError struct {
	Got BlockType
}

func (e *BlockOrderError) Error() string {
	return fmt.Sprintf("first metadata block is %s (%d), expected STREAMINFO", e.Got, uint8(e.Got))
}

func label(path string) string {
	if path == "" {
		return "<stream>"
	}
	return path
}
