package pipeline_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capwatch/alertmap/internal/domain"
	"github.com/capwatch/alertmap/internal/kml"
	"github.com/capwatch/alertmap/internal/observability"
	"github.com/capwatch/alertmap/internal/pipeline"
)

// --- mocks ---

type mockFetcher struct {
	data []byte
	err  error
}

func (m *mockFetcher) Fetch(_ context.Context) ([]byte, error) {
	return m.data, m.err
}

type mockExtractor struct {
	records []domain.AlertRecord
	dropped int
	err     error
	got     []byte
}

func (m *mockExtractor) Extract(data []byte) ([]domain.AlertRecord, int, error) {
	m.got = data
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.records, m.dropped, nil
}

type mockWriter struct {
	path string
	doc  *kml.KML
	err  error
}

func (m *mockWriter) Write(path string, doc *kml.KML) error {
	if m.err != nil {
		return m.err
	}
	m.path = path
	m.doc = doc
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRecords() []domain.AlertRecord {
	return []domain.AlertRecord{
		{Title: "first", Severity: "Severe", Point: domain.GeoPoint{Lat: 1, Lon: 2}},
		{Title: "second", Severity: "Minor", Point: domain.GeoPoint{Lat: 3, Lon: 4}},
	}
}

// --- tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	fetcher := &mockFetcher{data: []byte("<feed/>")}
	extractor := &mockExtractor{records: testRecords(), dropped: 3}
	writer := &mockWriter{}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(fetcher, extractor, kml.Builder{}, writer, "out/alerts.kml", testLogger(), metrics)

	count, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, []byte("<feed/>"), extractor.got)
	assert.Equal(t, "out/alerts.kml", writer.path)
	require.NotNil(t, writer.doc)
	assert.Len(t, writer.doc.Document.Placemarks, 2)
	assert.Equal(t, "first", writer.doc.Document.Placemarks[0].Name)
	assert.Equal(t, "second", writer.doc.Document.Placemarks[1].Name)

	assert.Equal(t, 5.0, testutil.ToFloat64(metrics.EntriesFetched))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.EntriesDropped))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.PlacemarksWritten))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RunSuccess))
}

func TestPipeline_Run_FetchError(t *testing.T) {
	fetcher := &mockFetcher{err: errors.New("connection refused")}
	extractor := &mockExtractor{}
	writer := &mockWriter{}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(fetcher, extractor, kml.Builder{}, writer, "out/alerts.kml", testLogger(), metrics)

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch")
	assert.Nil(t, extractor.got)
	assert.Empty(t, writer.path)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.RunSuccess))
}

func TestPipeline_Run_ExtractError(t *testing.T) {
	fetcher := &mockFetcher{data: []byte("not xml")}
	extractor := &mockExtractor{err: errors.New("bad document")}
	writer := &mockWriter{}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(fetcher, extractor, kml.Builder{}, writer, "out/alerts.kml", testLogger(), metrics)

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract")
	assert.Empty(t, writer.path)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.EntriesFetched))
}

func TestPipeline_Run_WriteError(t *testing.T) {
	fetcher := &mockFetcher{data: []byte("<feed/>")}
	extractor := &mockExtractor{records: testRecords()}
	writer := &mockWriter{err: errors.New("permission denied")}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(fetcher, extractor, kml.Builder{}, writer, "out/alerts.kml", testLogger(), metrics)

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write")
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.PlacemarksWritten))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.RunSuccess))
}

func TestPipeline_Run_EmptyFeed(t *testing.T) {
	fetcher := &mockFetcher{data: []byte("<feed/>")}
	extractor := &mockExtractor{}
	writer := &mockWriter{}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(fetcher, extractor, kml.Builder{}, writer, "out/alerts.kml", testLogger(), metrics)

	count, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	// An empty feed still writes a document with styles and no placemarks.
	require.NotNil(t, writer.doc)
	assert.Empty(t, writer.doc.Document.Placemarks)
}

func TestPipeline_Run_FrozenClock(t *testing.T) {
	pipeline.SetClock(clockwork.NewFakeClockAt(time.Date(2026, time.August, 29, 18, 0, 0, 0, time.UTC)))
	defer pipeline.SetClock(nil)

	fetcher := &mockFetcher{data: []byte("<feed/>")}
	extractor := &mockExtractor{records: testRecords()}
	writer := &mockWriter{}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(fetcher, extractor, kml.Builder{}, writer, "out/alerts.kml", testLogger(), metrics)

	_, err := p.Run(context.Background())
	require.NoError(t, err)

	// With a frozen clock every observed duration is exactly zero.
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.RunDuration), "run duration observed once")
}
