package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_analysis"

// Metrics holds the Prometheus collectors for one analysis run. They are
// registered on a private registry; the run is a batch job, so the registry
// is flushed to a node-exporter textfile instead of being scraped.
type Metrics struct {
	Registry *prometheus.Registry

	RowsLoaded  prometheus.Gauge
	UndatedRows prometheus.Gauge
	CellsFilled *prometheus.CounterVec // labels: column

	StageDuration    *prometheus.HistogramVec // labels: stage
	ArtifactsWritten *prometheus.CounterVec   // labels: kind={csv,chart,report,workbook,preview}

	LastRunSuccess   prometheus.Gauge
	LastRunTimestamp prometheus.Gauge
}

// NewMetrics creates all run metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RowsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rows_loaded",
			Help:      "Rows read from the observation file.",
		}),
		UndatedRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "undated_rows",
			Help:      "Rows whose date did not match the station timestamp format.",
		}),
		CellsFilled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_filled_total",
			Help:      "Numeric cells replaced by the column mean, by column.",
		}, []string{"column"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time of each pipeline stage.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
		}, []string{"stage"}),
		ArtifactsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifacts_written_total",
			Help:      "Files written by the run, by kind.",
		}, []string{"kind"}),
		LastRunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_success",
			Help:      "1 if the last run completed, 0 if it failed.",
		}),
		LastRunTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished.",
		}),
	}

	m.Registry.MustRegister(
		m.RowsLoaded,
		m.UndatedRows,
		m.CellsFilled,
		m.StageDuration,
		m.ArtifactsWritten,
		m.LastRunSuccess,
		m.LastRunTimestamp,
	)

	return m
}

// WriteTextfile writes the registry in the Prometheus text format, replacing
// any previous file atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
