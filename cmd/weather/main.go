// Command weather analyses hourly Irish station observations and writes the
// cleaned data, charts and a Markdown report to the output directory.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/irish-weather-analysis/internal/adapter/charts"
	"github.com/couchcryptid/irish-weather-analysis/internal/adapter/csvfile"
	"github.com/couchcryptid/irish-weather-analysis/internal/adapter/export"
	"github.com/couchcryptid/irish-weather-analysis/internal/config"
	"github.com/couchcryptid/irish-weather-analysis/internal/observability"
	"github.com/couchcryptid/irish-weather-analysis/internal/pipeline"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	var display charts.Display = charts.Discard{Logger: logger}
	if cfg.PreviewDir != "" {
		display = charts.Dir{Path: cfg.PreviewDir}
		logger.Info("exploratory charts saved for preview", "dir", cfg.PreviewDir)
	}

	opts := pipeline.Options{MetricsFile: cfg.MetricsFile}
	if cfg.PrintSummary {
		opts.Summary = pipeline.NewSummaryPrinter(os.Stdout)
	}

	p := pipeline.New(
		csvfile.NewReader(cfg.InputPath, logger),
		charts.NewExplorer(display, logger),
		export.NewExporter(cfg.OutputDir, export.Options{Workbook: cfg.ExportWorkbook}, metrics, logger),
		logger,
		metrics,
		opts,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := p.Run(ctx); err != nil {
		logger.Error("analysis failed", "error", err)
		stop()
		os.Exit(1)
	}
}
