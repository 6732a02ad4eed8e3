// Package format renders parsed metadata for the flacmeta command.
package format

import (
	"fmt"
	"io"

	"github.com/simonhull/flacmeta/internal/config"
	"github.com/simonhull/flacmeta/internal/types"
)

// Formatter writes one file's metadata blocks to w.
type Formatter interface {
	Name() string
	Format(w io.Writer, path string, snapshot types.Snapshot) error
}

// Options controls formatter output.
type Options struct {
	// NoColor disables ANSI colors in text output.
	NoColor bool

	// ShowPath prints the file path before its blocks.
	ShowPath bool
}

// New returns the formatter registered under name.
func New(name string, opts Options) (Formatter, error) {
	switch name {
	case config.FormatText:
		return NewText(opts), nil
	case config.FormatYAML:
		return NewYAML(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", name)
	}
}
