package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/irish-weather-analysis/internal/domain"
	"github.com/couchcryptid/irish-weather-analysis/internal/observability"
)

// Loader reads the observation table from the source.
type Loader interface {
	Load(ctx context.Context) (*domain.Observations, error)
}

// Visualizer renders exploratory charts and returns how many it produced.
type Visualizer interface {
	Explore(ctx context.Context, obs *domain.Observations, agg domain.Aggregates) (int, error)
}

// Exporter writes the outputs of a finished analysis.
type Exporter interface {
	Export(ctx context.Context, res domain.Result) error
}

// Options tunes a Pipeline beyond its stages.
type Options struct {
	// Summary receives the console overview; nil prints nothing.
	Summary *SummaryPrinter
	// MetricsFile is where the metrics registry is written after the run.
	// Empty skips the write.
	MetricsFile string
}

// Pipeline runs one analysis from load to export.
type Pipeline struct {
	loader     Loader
	analyzer   *Analyzer
	visualizer Visualizer
	exporter   Exporter
	logger     *slog.Logger
	metrics    *observability.Metrics
	opts       Options
}

// New creates a Pipeline with the given stages and observability.
func New(l Loader, v Visualizer, e Exporter, logger *slog.Logger, metrics *observability.Metrics, opts Options) *Pipeline {
	return &Pipeline{
		loader:     l,
		analyzer:   NewAnalyzer(logger, metrics),
		visualizer: v,
		exporter:   e,
		logger:     logger,
		metrics:    metrics,
		opts:       opts,
	}
}

// Run executes Load, Clean, Aggregate, Explore, Seasonal and Export in
// order. The first failing stage aborts the run; cancellation is checked
// between stages.
func (p *Pipeline) Run(ctx context.Context) (err error) {
	start := clock.Now()
	p.logger.Info("analysis started")
	defer func() {
		if ferr := p.finish(err); err == nil {
			err = ferr
		}
	}()

	var res domain.Result

	if err := p.stage(ctx, "load", func() error {
		obs, err := p.loader.Load(ctx)
		if err != nil {
			return err
		}
		res.Observations = obs
		p.metrics.RowsLoaded.Set(float64(obs.Len()))
		p.metrics.UndatedRows.Set(float64(obs.MissingDates()))
		if p.opts.Summary != nil {
			p.opts.Summary.PrintLoaded(obs)
		}
		return nil
	}); err != nil {
		return err
	}

	if err := p.stage(ctx, "clean", func() error {
		report, err := p.analyzer.Clean(res.Observations)
		if err != nil {
			return err
		}
		res.Clean = report
		if p.opts.Summary != nil {
			cleaned, err := res.Observations.Cleaned()
			if err != nil {
				return err
			}
			p.opts.Summary.PrintCleaned(cleaned)
		}
		return nil
	}); err != nil {
		return err
	}

	if err := p.stage(ctx, "aggregate", func() error {
		agg, err := p.analyzer.Aggregate(res.Observations)
		if err != nil {
			return err
		}
		res.Aggregates = agg
		if p.opts.Summary != nil {
			p.opts.Summary.PrintAggregates(agg)
		}
		return nil
	}); err != nil {
		return err
	}

	if err := p.stage(ctx, "explore", func() error {
		shown, err := p.visualizer.Explore(ctx, res.Observations, res.Aggregates)
		if shown > 0 {
			p.metrics.ArtifactsWritten.WithLabelValues("preview").Add(float64(shown))
		}
		return err
	}); err != nil {
		return err
	}

	if err := p.stage(ctx, "seasonal", func() error {
		dated, seasons, rain, err := p.analyzer.Seasonal(res.Observations)
		if err != nil {
			return err
		}
		res.Dated, res.Seasons, res.RainByMonth = dated, seasons, rain
		if p.opts.Summary != nil {
			p.opts.Summary.PrintSeasons(seasons)
		}
		return nil
	}); err != nil {
		return err
	}

	if err := p.stage(ctx, "export", func() error {
		return p.exporter.Export(ctx, res)
	}); err != nil {
		return err
	}

	p.logger.Info("analysis finished",
		"rows", res.Observations.Len(),
		"cells_filled", res.Clean.Filled(),
		"seasons", len(res.Seasons),
		"duration", clock.Since(start),
	)
	return nil
}

// stage runs fn as the named stage, timing it and wrapping its error.
func (p *Pipeline) stage(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		p.logger.Info("analysis stopping", "stage", name, "reason", err)
		return err
	}

	start := clock.Now()
	err := fn()
	elapsed := clock.Since(start)
	p.metrics.StageDuration.WithLabelValues(name).Observe(elapsed.Seconds())

	if err != nil {
		p.logger.Error("stage failed", "stage", name, "error", err)
		return fmt.Errorf("%s: %w", name, err)
	}
	p.logger.Debug("stage complete", "stage", name, "duration", elapsed)
	return nil
}

// finish records the outcome of the run and flushes metrics if configured.
func (p *Pipeline) finish(runErr error) error {
	if runErr == nil {
		p.metrics.LastRunSuccess.Set(1)
	} else {
		p.metrics.LastRunSuccess.Set(0)
	}
	p.metrics.LastRunTimestamp.Set(float64(clock.Now().Unix()))

	if p.opts.MetricsFile == "" {
		return nil
	}
	if err := p.metrics.WriteTextfile(p.opts.MetricsFile); err != nil {
		p.logger.Error("metrics flush failed", "path", p.opts.MetricsFile, "error", err)
		return err
	}
	return nil
}
