// Package flac decodes the metadata section of a FLAC stream.
//
// Only STREAMINFO and VORBIS_COMMENT bodies are decoded. Every other block
// body is consumed from the source and dropped.
package flac

import (
	"fmt"

	"github.com/simonhull/flacmeta/internal/binary"
	"github.com/simonhull/flacmeta/internal/types"
)

// Options controls optional checks made while walking the block stream.
type Options struct {
	// StreamInfoFirst rejects streams whose first block is not STREAMINFO.
	StreamInfoFirst bool
}

// Parse checks the signature and walks the metadata blocks that follow.
func Parse(sr *binary.StreamReader, opts Options) (types.Snapshot, error) {
	if err := ReadSignature(sr); err != nil {
		return nil, err
	}
	return Walk(sr, opts)
}

// Walk reads metadata blocks until one whose header has IsLast set.
//
// The source is never read past the body of that final block. Any short
// read or decode failure aborts the walk and no blocks are returned.
func Walk(sr *binary.StreamReader, opts Options) (types.Snapshot, error) {
	var snapshot types.Snapshot

	for i := 0; ; i++ {
		var raw [HeaderSize]byte
		if err := sr.ReadFull(raw[:], fmt.Sprintf("block %d header", i)); err != nil {
			return nil, err
		}
		header := DecodeHeader(raw)

		if i == 0 && opts.StreamInfoFirst && header.Type != types.BlockTypeStreamInfo {
			return nil, blockError(sr, i, header.Type, &types.BlockOrderError{Got: header.Type})
		}

		block, err := readBlock(sr, header, i)
		if err != nil {
			return nil, err
		}

		snapshot = append(snapshot, types.Entry{Header: header, Block: block})

		if header.IsLast {
			return snapshot, nil
		}
	}
}

// readBlock consumes exactly header.Length bytes and decodes them.
func readBlock(sr *binary.StreamReader, header types.Header, index int) (types.Block, error) {
	what := fmt.Sprintf("block %d (%s) body", index, header.Type)

	switch header.Type {
	case types.BlockTypeStreamInfo, types.BlockTypeVorbisComment:
		body, err := sr.Read(int(header.Length), what)
		if err != nil {
			return nil, err
		}
		block, err := decodeBlock(header.Type, body)
		if err != nil {
			return nil, blockError(sr, index, header.Type, err)
		}
		return block, nil

	default:
		if err := sr.Discard(int64(header.Length), what); err != nil {
			return nil, err
		}
		return decodeBlock(header.Type, nil)
	}
}

// decodeBlock maps a block type code and body onto its Block variant.
func decodeBlock(t types.BlockType, body []byte) (types.Block, error) {
	switch t {
	case types.BlockTypeStreamInfo:
		si, err := DecodeStreamInfo(body)
		if err != nil {
			return nil, err
		}
		return si, nil
	case types.BlockTypeVorbisComment:
		vc, err := DecodeVorbisComment(body)
		if err != nil {
			return nil, err
		}
		return vc, nil
	case types.BlockTypePadding:
		return types.Padding{}, nil
	case types.BlockTypeApplication:
		return types.Application{}, nil
	case types.BlockTypeSeekTable:
		return types.SeekTable{}, nil
	case types.BlockTypeCueSheet:
		return types.CueSheet{}, nil
	case types.BlockTypePicture:
		return types.Picture{}, nil
	}
	if t >= types.BlockTypeReservedMin && t <= types.BlockTypeReservedMax {
		return types.Reserved{Code: t}, nil
	}
	return types.Invalid{Code: t}, nil
}

// blockError adds the stream label and block position to a decode error.
func blockError(sr *binary.StreamReader, index int, t types.BlockType, err error) error {
	if sr.Path() == "" {
		return fmt.Errorf("block %d (%s): %w", index, t, err)
	}
	return fmt.Errorf("%s: block %d (%s): %w", sr.Path(), index, t, err)
}
