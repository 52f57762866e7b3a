// Package pipeline orchestrates one export run: fetch the feed, extract
// placeable alert records, build the KML document, and write it out. A run
// either completes or aborts; there is no partial output and no retry.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/capwatch/alertmap/internal/domain"
	"github.com/capwatch/alertmap/internal/kml"
	"github.com/capwatch/alertmap/internal/observability"
)

// Fetcher retrieves the raw feed bytes.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Extractor parses the feed and returns placeable records in entry order
// plus the count of entries dropped for unresolved geometry.
type Extractor interface {
	Extract(data []byte) ([]domain.AlertRecord, int, error)
}

// DocumentBuilder assembles the output document from ordered records.
type DocumentBuilder interface {
	Build(records []domain.AlertRecord) *kml.KML
}

// DocumentWriter serializes and writes the document to a path.
type DocumentWriter interface {
	Write(path string, doc *kml.KML) error
}

// Pipeline wires the four stages of an export run.
type Pipeline struct {
	fetcher    Fetcher
	extractor  Extractor
	builder    DocumentBuilder
	writer     DocumentWriter
	outputPath string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(f Fetcher, e Extractor, b DocumentBuilder, w DocumentWriter, outputPath string, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		fetcher:    f,
		extractor:  e,
		builder:    b,
		writer:     w,
		outputPath: outputPath,
		logger:     logger,
		metrics:    metrics,
	}
}

// Run executes one fetch-extract-build-write cycle and returns the number of
// placemarks written. Any stage error aborts the run with nothing written.
func (p *Pipeline) Run(ctx context.Context) (int, error) {
	start := clock.Now()
	p.metrics.RunSuccess.Set(0)

	fetchStart := clock.Now()
	raw, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch: %w", err)
	}
	p.metrics.FetchDuration.Observe(clock.Since(fetchStart).Seconds())

	records, dropped, err := p.extractor.Extract(raw)
	if err != nil {
		return 0, fmt.Errorf("extract: %w", err)
	}
	p.metrics.EntriesFetched.Add(float64(len(records) + dropped))
	p.metrics.EntriesDropped.Add(float64(dropped))

	doc := p.builder.Build(records)

	if err := p.writer.Write(p.outputPath, doc); err != nil {
		return 0, fmt.Errorf("write: %w", err)
	}

	p.metrics.PlacemarksWritten.Add(float64(len(records)))
	p.metrics.RunDuration.Observe(clock.Since(start).Seconds())
	p.metrics.RunSuccess.Set(1)

	p.logger.Info("run complete",
		"placemarks", len(records),
		"dropped", dropped,
		"output", p.outputPath,
		"duration", clock.Since(start),
	)
	return len(records), nil
}
