package flac

import (
	"bytes"
	"errors"

	"github.com/simonhull/flacmeta/internal/binary"
	"github.com/simonhull/flacmeta/internal/types"
)

// Signature is the 4-byte marker every FLAC stream starts with.
var Signature = [4]byte{'f', 'L', 'a', 'C'}

// ReadSignature consumes 4 bytes and checks them against Signature.
//
// A source shorter than 4 bytes is reported as *types.InvalidSignatureError,
// not as truncation. Bytes consumed before a failure are not pushed back.
func ReadSignature(sr *binary.StreamReader) error {
	var magic [4]byte
	err := sr.ReadFull(magic[:], "FLAC signature")

	var truncErr *types.TruncatedReadError
	if errors.As(err, &truncErr) {
		return &types.InvalidSignatureError{
			Path: sr.Path(),
			Got:  bytes.Clone(magic[:truncErr.Got]),
		}
	}
	if err != nil {
		return err
	}

	if magic != Signature {
		return &types.InvalidSignatureError{
			Path: sr.Path(),
			Got:  bytes.Clone(magic[:]),
		}
	}
	return nil
}
