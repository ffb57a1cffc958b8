package charts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/couchcryptid/irish-weather-analysis/internal/domain"
)

// Exploratory figure names passed to the Display.
const (
	FigureTemperatureTrend = "temperature_trend.png"
	FigureMonthlyRainfall  = "monthly_rainfall_totals.png"
	FigureHumidityScatter  = "humidity_vs_temperature.png"
	FigureOverview         = "overview.png"
)

// Explorer renders the exploratory charts of a loaded table.
// It implements pipeline.Visualizer.
type Explorer struct {
	display Display
	logger  *slog.Logger
}

// NewExplorer creates an Explorer that hands figures to display.
func NewExplorer(display Display, logger *slog.Logger) *Explorer {
	return &Explorer{display: display, logger: logger}
}

type figure struct {
	name   string
	render func(io.Writer) error
}

// Explore renders the temperature line, monthly rainfall bars, humidity
// scatter and the two-panel overview. It returns the number of figures shown.
func (e *Explorer) Explore(ctx context.Context, obs *domain.Observations, agg domain.Aggregates) (int, error) {
	temps, err := obs.Values(domain.TempColumn)
	if err != nil {
		return 0, err
	}
	humidity, err := obs.Values(domain.HumidityColumn)
	if err != nil {
		return 0, err
	}

	figures := []figure{
		{FigureTemperatureTrend, func(w io.Writer) error {
			return TemperatureTrend(w, "Daily Temperature Trend", 1000, 500, obs.Dates, temps)
		}},
		{FigureMonthlyRainfall, func(w io.Writer) error {
			return MonthlyRainfall(w, "Monthly Rainfall Totals", 800, 400, agg.RainByMonth)
		}},
		{FigureHumidityScatter, func(w io.Writer) error {
			return HumidityVsTemperature(w, "Humidity vs Temperature", 600, 500, temps, humidity)
		}},
		{FigureOverview, func(w io.Writer) error {
			return Overview(w, 1200, 500, obs.Dates, temps, humidity)
		}},
	}

	shown := 0
	for _, f := range figures {
		if err := ctx.Err(); err != nil {
			return shown, err
		}
		var buf bytes.Buffer
		if err := f.render(&buf); err != nil {
			return shown, fmt.Errorf("figure %s: %w", f.name, err)
		}
		if err := e.display.Show(f.name, buf.Bytes()); err != nil {
			return shown, fmt.Errorf("show %s: %w", f.name, err)
		}
		shown++
	}

	e.logger.Info("exploratory charts rendered", "figures", shown)
	return shown, nil
}
