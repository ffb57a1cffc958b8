package pipeline

import (
	"log/slog"

	"github.com/couchcryptid/irish-weather-analysis/internal/domain"
	"github.com/couchcryptid/irish-weather-analysis/internal/observability"
)

// Analyzer runs the in-memory stages over a loaded table: cleaning,
// time aggregation and the seasonal summary.
type Analyzer struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(logger *slog.Logger, metrics *observability.Metrics) *Analyzer {
	return &Analyzer{logger: logger, metrics: metrics}
}

// Clean fills the numeric columns of obs in place and records how many cells
// each column needed.
func (a *Analyzer) Clean(obs *domain.Observations) (domain.CleanReport, error) {
	report, err := domain.Clean(obs)
	if err != nil {
		return domain.CleanReport{}, err
	}
	for _, c := range report.Columns {
		if c.Missing == 0 {
			continue
		}
		a.metrics.CellsFilled.WithLabelValues(c.Column).Add(float64(c.Missing))
		a.logger.Debug("missing cells filled", "column", c.Column, "cells", c.Missing, "mean", c.Mean)
	}
	return report, nil
}

// Aggregate computes the daily, monthly and yearly temperature means and the
// rain totals per month of year.
func (a *Analyzer) Aggregate(obs *domain.Observations) (domain.Aggregates, error) {
	agg, err := domain.Aggregate(obs)
	if err != nil {
		return domain.Aggregates{}, err
	}
	a.logger.Debug("aggregates computed",
		"days", len(agg.Daily),
		"months", len(agg.Monthly),
		"years", len(agg.Yearly),
	)
	return agg, nil
}

// Seasonal drops undated rows and summarises the remainder per season. It
// returns the date-indexed table, the season summaries and the rain totals
// per month of year recomputed from that table.
func (a *Analyzer) Seasonal(obs *domain.Observations) (*domain.Observations, []domain.SeasonStats, []domain.MonthRainfall, error) {
	dated, err := obs.Dated()
	if err != nil {
		return nil, nil, nil, err
	}
	if dropped := obs.Len() - dated.Len(); dropped > 0 {
		a.logger.Info("undated rows excluded from seasonal summary", "rows", dropped)
	}

	seasons, err := domain.Seasonal(dated)
	if err != nil {
		return nil, nil, nil, err
	}
	rain, err := domain.RainfallByMonth(dated)
	if err != nil {
		return nil, nil, nil, err
	}
	return dated, seasons, rain, nil
}
