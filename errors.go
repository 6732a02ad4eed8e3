package flacmeta

import (
	"github.com/simonhull/flacmeta/internal/types"
)

// InvalidSignatureError is an alias to types.InvalidSignatureError.
// Re-exporting from internal/types to maintain public API.
type InvalidSignatureError = types.InvalidSignatureError

// TruncatedReadError is an alias to types.TruncatedReadError.
// Re-exporting from internal/types to maintain public API.
type TruncatedReadError = types.TruncatedReadError

// InvalidBlockSizeError is an alias to types.InvalidBlockSizeError.
// Re-exporting from internal/types to maintain public API.
type InvalidBlockSizeError = types.InvalidBlockSizeError

// TextDecodeError is an alias to types.TextDecodeError.
// Re-exporting from internal/types to maintain public API.
type TextDecodeError = types.TextDecodeError

// OutOfRangeLengthError is an alias to types.OutOfRangeLengthError.
// Re-exporting from internal/types to maintain public API.
type OutOfRangeLengthError = types.OutOfRangeLengthError

// BlockOrderError is an alias to types.BlockOrderError.
// Re-exporting from internal/types to maintain public API.
type BlockOrderError = types.BlockOrderError
