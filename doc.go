// Package flacmeta reads the metadata section of FLAC files.
//
// flacmeta validates the "fLaC" signature, walks the metadata block headers
// up to the block marked last, and decodes the STREAMINFO and
// VORBIS_COMMENT bodies. No audio is decoded and nothing is written.
//
// # Quick Start
//
//	snapshot, err := flacmeta.ParseFile("song.flac")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for i, entry := range snapshot {
//		fmt.Printf("#%d %s\n", i, entry)
//	}
//
// # Blocks
//
// Each Entry pairs a Header with a Block. Block is a closed set of
// variants; inspect it with a type switch:
//
//	switch b := entry.Block.(type) {
//	case *flacmeta.StreamInfo:
//		fmt.Println(b.SampleRate, b.TotalSamples, b.MD5Hex())
//	case *flacmeta.VorbisComment:
//		fmt.Println(b.Vendor, b.Get("TITLE"))
//	case flacmeta.Reserved:
//		fmt.Println("reserved block type", uint8(b.Code))
//	}
//
// PADDING, APPLICATION, SEEKTABLE, CUESHEET and PICTURE bodies are read past
// and dropped.
//
// # Errors
//
// Every failure aborts the parse; there are no partial results. Use
// errors.As to tell the kinds apart:
//
//   - *InvalidSignatureError: the stream does not start with "fLaC"
//   - *TruncatedReadError: the source ended inside a header or body
//   - *InvalidBlockSizeError: STREAMINFO is not 34 bytes
//   - *TextDecodeError: a Vorbis comment string is not valid UTF-8
//   - *OutOfRangeLengthError: a Vorbis comment length overruns its block
//   - *BlockOrderError: with WithStreamInfoFirst, the first block is not STREAMINFO
//
// Malformed or hostile input never panics.
//
// # Concurrency
//
// Parse is synchronous and stateless. Different files may be parsed in
// parallel; ParseMany does this with a bounded worker group.
package flacmeta
