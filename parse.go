package flacmeta

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/flacmeta/internal/binary"
	"github.com/simonhull/flacmeta/internal/flac"
)

// Parse reads the FLAC signature and metadata blocks from r.
//
// Reading stops right after the body of the block marked last, so r is left
// positioned at the first audio frame. On failure r is left just past the
// last byte consumed and no blocks are returned.
//
// Parse holds no state between calls. r must not be read concurrently while
// Parse runs.
//
// Example:
//
//	snapshot, err := flacmeta.Parse(bufio.NewReader(f))
//	if err != nil {
//		return err
//	}
//	if si, ok := snapshot.StreamInfo(); ok {
//		fmt.Printf("%d Hz, %d samples\n", si.SampleRate, si.TotalSamples)
//	}
func Parse(r io.Reader, opts ...Option) (Snapshot, error) {
	options := applyOptions(opts)

	sr := binary.NewStreamReader(r, options.path)
	return flac.Parse(sr, flac.Options{
		StreamInfoFirst: options.streamInfoFirst,
	})
}

// ParseContext is Parse with a context check before starting.
//
// Parsing itself is synchronous and not interrupted once begun.
func ParseContext(ctx context.Context, r io.Reader, opts ...Option) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(r, opts...)
}

// ParseFile opens path, parses its metadata and closes it.
//
// Errors name the file. Options are applied after the path, so WithPath
// can override the label.
func ParseFile(path string, opts ...Option) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Parse(f, append([]Option{WithPath(path)}, opts...)...)
}

// Result is the outcome of parsing one file in ParseMany.
type Result struct {
	Path     string
	Snapshot Snapshot
	Err      error
}

// ParseMany parses multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths, one per path.
//
// A file that fails to parse does not affect the others; its Result
// carries the error and the caller decides whether to continue. If ctx is
// cancelled, files not yet started report ctx.Err().
//
// Example:
//
//	for _, res := range flacmeta.ParseMany(ctx, paths...) {
//		if res.Err != nil {
//			log.Printf("%s: %v", res.Path, res.Err)
//			continue
//		}
//		fmt.Printf("%s: %d blocks\n", res.Path, len(res.Snapshot))
//	}
func ParseMany(ctx context.Context, paths []string, opts ...Option) []Result {
	if len(paths) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]Result, len(paths))

	for i, path := range paths {
		i, path := i, path // per-iteration copies (module targets go 1.21)
		results[i].Path = path
		g.Go(func() error {
			// Check for cancellation
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			results[i].Snapshot, results[i].Err = ParseFile(path, opts...)
			return nil
		})
	}

	// Per-file errors live in results; the group itself never fails.
	_ = g.Wait()

	return results
}
