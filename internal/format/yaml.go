package format

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/simonhull/flacmeta/internal/types"
)

// YAML renders each file as its own YAML document.
type YAML struct{}

// NewYAML creates a YAML formatter.
func NewYAML() *YAML {
	return &YAML{}
}

func (y *YAML) Name() string {
	return "yaml"
}

type fileDoc struct {
	Path   string     `yaml:"path"`
	Blocks []blockDoc `yaml:"blocks"`
}

type blockDoc struct {
	Index         int            `yaml:"index"`
	Type          uint8          `yaml:"type"`
	Name          string         `yaml:"name"`
	IsLast        bool           `yaml:"is_last"`
	Length        uint32         `yaml:"length"`
	StreamInfo    *streamInfoDoc `yaml:"stream_info,omitempty"`
	VorbisComment *commentDoc    `yaml:"vorbis_comment,omitempty"`
}

type streamInfoDoc struct {
	MinBlockSize  uint16 `yaml:"min_block_size"`
	MaxBlockSize  uint16 `yaml:"max_block_size"`
	MinFrameSize  uint32 `yaml:"min_frame_size"`
	MaxFrameSize  uint32 `yaml:"max_frame_size"`
	SampleRate    uint32 `yaml:"sample_rate"`
	Channels      uint8  `yaml:"channels"`
	BitsPerSample uint8  `yaml:"bits_per_sample"`
	TotalSamples  uint64 `yaml:"total_samples"`
	MD5           string `yaml:"md5"`
}

type commentDoc struct {
	Vendor   string              `yaml:"vendor"`
	Comments []string            `yaml:"comments"`
	Fields   map[string][]string `yaml:"fields,omitempty"`
}

// Format writes a "---" separated document describing snapshot.
func (y *YAML) Format(w io.Writer, path string, snapshot types.Snapshot) error {
	doc := fileDoc{
		Path:   path,
		Blocks: make([]blockDoc, 0, len(snapshot)),
	}

	for i, e := range snapshot {
		bd := blockDoc{
			Index:  i,
			Type:   uint8(e.Header.Type),
			Name:   e.Header.Type.String(),
			IsLast: e.Header.IsLast,
			Length: e.Header.Length,
		}

		switch b := e.Block.(type) {
		case *types.StreamInfo:
			bd.StreamInfo = &streamInfoDoc{
				MinBlockSize:  b.MinBlockSize,
				MaxBlockSize:  b.MaxBlockSize,
				MinFrameSize:  b.MinFrameSize,
				MaxFrameSize:  b.MaxFrameSize,
				SampleRate:    b.SampleRate,
				Channels:      b.Channels,
				BitsPerSample: b.BitsPerSample,
				TotalSamples:  b.TotalSamples,
				MD5:           b.MD5Hex(),
			}
		case *types.VorbisComment:
			bd.VorbisComment = &commentDoc{
				Vendor:   b.Vendor,
				Comments: b.Entries,
				Fields:   b.Fields(),
			}
		}

		doc.Blocks = append(doc.Blocks, bd)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
