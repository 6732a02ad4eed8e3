package flacmeta

// Option configures behavior when parsing metadata.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	snapshot, err := flacmeta.Parse(r,
//	    flacmeta.WithPath("song.flac"),
//	    flacmeta.WithStreamInfoFirst(),
//	)
type Option func(*parseOptions)

// parseOptions holds configuration for a parse call.
type parseOptions struct {
	path            string // Label used in error messages
	streamInfoFirst bool   // Reject streams not starting with STREAMINFO
}

// defaultOptions returns the default configuration.
func defaultOptions() *parseOptions {
	return &parseOptions{}
}

func applyOptions(opts []Option) *parseOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithPath sets the name reported in signature and truncation errors.
//
// ParseFile sets this automatically.
func WithPath(path string) Option {
	return func(o *parseOptions) {
		o.path = path
	}
}

// WithStreamInfoFirst requires the first metadata block to be STREAMINFO.
//
// The FLAC format mandates this ordering, but by default flacmeta reports
// blocks in whatever order they appear. With this option a stream whose
// first block is anything else fails with *BlockOrderError.
//
// Example:
//
//	snapshot, err := flacmeta.ParseFile("song.flac", flacmeta.WithStreamInfoFirst())
//	var orderErr *flacmeta.BlockOrderError
//	if errors.As(err, &orderErr) {
//		// first block was orderErr.Got
//	}
func WithStreamInfoFirst() Option {
	return func(o *parseOptions) {
		o.streamInfoFirst = true
	}
}
