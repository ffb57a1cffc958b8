package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/irish-weather-analysis/internal/adapter/charts"
	"github.com/couchcryptid/irish-weather-analysis/internal/adapter/csvfile"
	"github.com/couchcryptid/irish-weather-analysis/internal/adapter/report"
	"github.com/couchcryptid/irish-weather-analysis/internal/adapter/workbook"
	"github.com/couchcryptid/irish-weather-analysis/internal/domain"
	"github.com/couchcryptid/irish-weather-analysis/internal/observability"
)

// Options controls what the Exporter writes besides the fixed outputs.
type Options struct {
	Workbook bool // also write weather_summary.xlsx
}

// Exporter writes the run's outputs into one directory.
// It implements pipeline.Exporter.
type Exporter struct {
	dir     string
	opts    Options
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewExporter creates an Exporter writing into dir.
func NewExporter(dir string, opts Options, metrics *observability.Metrics, logger *slog.Logger) *Exporter {
	return &Exporter{dir: dir, opts: opts, metrics: metrics, logger: logger}
}

// Export writes the cleaned CSV, the three charts and the Markdown report,
// overwriting previous outputs. The directory is created if missing.
func (e *Exporter) Export(ctx context.Context, res domain.Result) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	cleaned, err := res.Observations.Cleaned()
	if err != nil {
		return err
	}
	if err := csvfile.WriteFrame(e.path(report.CleanedCSVFile), cleaned); err != nil {
		return fmt.Errorf("export cleaned data: %w", err)
	}
	e.written("csv", report.CleanedCSVFile)

	temps, err := res.Dated.Values(domain.TempColumn)
	if err != nil {
		return err
	}
	humidity, err := res.Dated.Values(domain.HumidityColumn)
	if err != nil {
		return err
	}

	images := []struct {
		name   string
		render func(io.Writer) error
	}{
		{report.DailyTemperatureFile, func(w io.Writer) error {
			return charts.DailyTemperature(w, 1200, 500, res.Aggregates.Daily)
		}},
		{report.MonthlyRainfallFile, func(w io.Writer) error {
			return charts.MonthlyRainfall(w, "Monthly Rainfall Total", 1200, 500, res.RainByMonth)
		}},
		{report.HumidityScatterFile, func(w io.Writer) error {
			return charts.HumidityVsTemperature(w, "Humidity vs Temperature", 800, 600, temps, humidity)
		}},
	}
	for _, img := range images {
		if err := ctx.Err(); err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := img.render(&buf); err != nil {
			return fmt.Errorf("render %s: %w", img.name, err)
		}
		if err := os.WriteFile(e.path(img.name), buf.Bytes(), 0o644); err != nil { //nolint:gosec // outputs are meant to be shared
			return fmt.Errorf("write %s: %w", img.name, err)
		}
		e.written("chart", img.name)
	}

	summary := domain.NewReportSummary(cleaned.Nrow(), res.Dated)
	if err := report.Write(e.path(report.ReportFile), summary, e.dir); err != nil {
		return err
	}
	e.written("report", report.ReportFile)

	if e.opts.Workbook {
		if err := workbook.Write(e.path(workbook.FileName), res); err != nil {
			return fmt.Errorf("export workbook: %w", err)
		}
		e.written("workbook", workbook.FileName)
	}

	e.logger.Info("outputs exported", "dir", e.dir)
	return nil
}

func (e *Exporter) path(name string) string {
	return filepath.Join(e.dir, name)
}

func (e *Exporter) written(kind, name string) {
	e.metrics.ArtifactsWritten.WithLabelValues(kind).Inc()
	e.logger.Debug("output written", "kind", kind, "file", name)
}
