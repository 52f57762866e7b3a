// Command alertmap fetches the NWS active-alerts CAP Atom feed and writes a
// KML document with one placemark per placeable alert.
//
// Usage:
//
//	alertmap [output-path]
//
// The optional positional argument overrides OUTPUT_PATH (default
// "site/alerts.kml"). The process exits non-zero if the feed cannot be
// fetched or parsed, or the document cannot be written.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/capwatch/alertmap/internal/adapter/feed"
	"github.com/capwatch/alertmap/internal/config"
	"github.com/capwatch/alertmap/internal/kml"
	"github.com/capwatch/alertmap/internal/observability"
	"github.com/capwatch/alertmap/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		cfg.OutputPath = os.Args[1]
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := feed.NewClient(cfg, logger)
	parser := feed.NewParser(logger)

	p := pipeline.New(client, parser, kml.Builder{}, kml.FileWriter{}, cfg.OutputPath, logger, metrics)

	count, err := p.Run(context.Background())
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Wrote %s with %d placemarks\n", cfg.OutputPath, count)
}
