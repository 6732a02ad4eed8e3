package format

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/simonhull/flacmeta/internal/types"
)

// Text renders blocks in the layout metaflac --list uses.
type Text struct {
	opts    Options
	heading *color.Color
	block   *color.Color
	key     *color.Color
}

// NewText creates a text formatter.
func NewText(opts Options) *Text {
	t := &Text{
		opts:    opts,
		heading: color.New(color.FgWhite, color.Bold),
		block:   color.New(color.FgCyan),
		key:     color.New(color.FgYellow),
	}
	if opts.NoColor {
		t.heading.DisableColor()
		t.block.DisableColor()
		t.key.DisableColor()
	}
	return t
}

func (t *Text) Name() string {
	return "text"
}

// Format writes index, type, last flag and length for every block, plus
// the decoded fields of STREAMINFO and VORBIS_COMMENT blocks.
func (t *Text) Format(w io.Writer, path string, snapshot types.Snapshot) error {
	p := &printer{w: w}

	if t.opts.ShowPath {
		p.line(t.heading.Sprintf("%s:", path))
	}

	for i, e := range snapshot {
		p.line(t.block.Sprintf("METADATA block #%d", i))
		p.field(t.key, "type", fmt.Sprintf("%d (%s)", uint8(e.Header.Type), e.Header.Type))
		p.field(t.key, "is last", fmt.Sprintf("%t", e.Header.IsLast))
		p.field(t.key, "length", fmt.Sprintf("%d", e.Header.Length))

		switch b := e.Block.(type) {
		case *types.StreamInfo:
			p.field(t.key, "minimum blocksize", fmt.Sprintf("%d samples", b.MinBlockSize))
			p.field(t.key, "maximum blocksize", fmt.Sprintf("%d samples", b.MaxBlockSize))
			p.field(t.key, "minimum framesize", fmt.Sprintf("%d bytes", b.MinFrameSize))
			p.field(t.key, "maximum framesize", fmt.Sprintf("%d bytes", b.MaxFrameSize))
			p.field(t.key, "sample_rate", fmt.Sprintf("%d Hz", b.SampleRate))
			p.field(t.key, "channels", fmt.Sprintf("%d", b.Channels))
			p.field(t.key, "bits-per-sample", fmt.Sprintf("%d", b.BitsPerSample))
			p.field(t.key, "total samples", fmt.Sprintf("%d", b.TotalSamples))
			p.field(t.key, "MD5 signature", b.MD5Hex())

		case *types.VorbisComment:
			p.field(t.key, "vendor string", b.Vendor)
			p.field(t.key, "comments", fmt.Sprintf("%d", len(b.Entries)))
			for j, entry := range b.Entries {
				p.line(fmt.Sprintf("    %s %s", t.key.Sprintf("comment[%d]:", j), entry))
			}
		}
	}

	return p.err
}

// printer remembers the first write error so Format can check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) field(key *color.Color, name, value string) {
	p.line(fmt.Sprintf("  %s %s", key.Sprintf("%s:", name), value))
}
