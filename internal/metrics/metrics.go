// Package metrics records per-run parse statistics and exports them in the
// Prometheus text exposition format, suitable for a node_exporter textfile
// collector.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/simonhull/flacmeta/internal/types"
)

// Metrics contains the Prometheus collectors for one flacmeta run.
type Metrics struct {
	registry *prometheus.Registry

	FilesParsed   prometheus.Counter
	FilesFailed   *prometheus.CounterVec
	Blocks        *prometheus.CounterVec
	MetadataBytes prometheus.Histogram
}

// New creates the collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		FilesParsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "flacmeta_files_parsed_total",
			Help: "Total number of files whose metadata was read successfully",
		}),
		FilesFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "flacmeta_files_failed_total",
			Help: "Total number of files that failed to parse, by error kind",
		}, []string{"kind"}),
		Blocks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "flacmeta_blocks_total",
			Help: "Total number of metadata blocks read, by block type",
		}, []string{"type"}),
		MetadataBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "flacmeta_metadata_size_bytes",
			Help:    "Size of the metadata section per file, signature included",
			Buckets: prometheus.ExponentialBuckets(64, 4, 10), // 64B to ~16MB
		}),
	}
}

// ObserveSnapshot records a successfully parsed file.
func (m *Metrics) ObserveSnapshot(s types.Snapshot) {
	m.FilesParsed.Inc()

	size := 4 // signature
	for _, e := range s {
		m.Blocks.WithLabelValues(e.Header.Type.String()).Inc()
		size += 4 + int(e.Header.Length)
	}
	m.MetadataBytes.Observe(float64(size))
}

// ObserveFailure records a file that failed to parse.
func (m *Metrics) ObserveFailure(err error) {
	m.FilesFailed.WithLabelValues(Kind(err)).Inc()
}

// WriteFile atomically writes every collector to path.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// Kind returns a stable label for the typed error at the root of err.
func Kind(err error) string {
	var (
		sigErr   *types.InvalidSignatureError
		truncErr *types.TruncatedReadError
		sizeErr  *types.InvalidBlockSizeError
		textErr  *types.TextDecodeError
		rangeErr *types.OutOfRangeLengthError
		orderErr *types.BlockOrderError
	)
	switch {
	case errors.As(err, &sigErr):
		return "invalid_signature"
	case errors.As(err, &truncErr):
		return "truncated_read"
	case errors.As(err, &sizeErr):
		return "invalid_block_size"
	case errors.As(err, &textErr):
		return "text_decode"
	case errors.As(err, &rangeErr):
		return "out_of_range_length"
	case errors.As(err, &orderErr):
		return "block_order"
	default:
		return "other"
	}
}
