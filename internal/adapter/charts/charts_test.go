package charts

import (
	"bytes"
	"context"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/irish-weather-analysis/internal/domain"
)

func assertPNG(t *testing.T, data []byte, width, height int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, width, cfg.Width)
	assert.Equal(t, height, cfg.Height)
}

func testDates(n int) []domain.Timestamp {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]domain.Timestamp, n)
	for i := range out {
		out[i] = domain.Timestamp{Time: base.Add(time.Duration(i) * time.Hour), Valid: true}
	}
	return out
}

func TestRenderLine(t *testing.T) {
	var buf bytes.Buffer
	err := RenderLine(&buf, Plot{Title: "line", Width: 400, Height: 300}, []float64{0, 1, 2, 3}, []float64{5, 7, 6, 9})
	require.NoError(t, err)
	assertPNG(t, buf.Bytes(), 400, 300)
}

func TestRenderLine_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{"empty", nil, nil},
		{"single point", []float64{1}, []float64{4}},
		{"flat", []float64{1, 2, 3}, []float64{4, 4, 4}},
		{"all missing", []float64{1, 2}, []float64{math.NaN(), math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderLine(&buf, Plot{Title: tt.name, Width: 300, Height: 200}, tt.xs, tt.ys))
			assertPNG(t, buf.Bytes(), 300, 200)
		})
	}
}

func TestRenderScatter(t *testing.T) {
	var buf bytes.Buffer
	err := RenderScatter(&buf, Plot{Title: "scatter", Width: 320, Height: 240}, []float64{10, 12, 8}, []float64{80, 75, 91})
	require.NoError(t, err)
	assertPNG(t, buf.Bytes(), 320, 240)
}

func TestMonthlyRainfall(t *testing.T) {
	totals := make([]domain.MonthRainfall, 12)
	for i := range totals {
		totals[i] = domain.MonthRainfall{Month: i + 1, Rain: float64(i) * 3.5}
	}

	var buf bytes.Buffer
	require.NoError(t, MonthlyRainfall(&buf, "Monthly Rainfall Total", 1200, 500, totals))
	assertPNG(t, buf.Bytes(), 1200, 500)
}

func TestMonthlyRainfall_NoMonths(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MonthlyRainfall(&buf, "Monthly Rainfall Total", 800, 400, nil))
	assertPNG(t, buf.Bytes(), 800, 400)
}

func TestDailyTemperature(t *testing.T) {
	daily := []domain.DailyMean{
		{Year: 2020, Month: 1, Day: 1, Temp: 4.5},
		{Year: 2020, Month: 1, Day: 2, Temp: 6.1},
		{Year: 2020, Month: 1, Day: 3, Temp: 3.9},
	}
	var buf bytes.Buffer
	require.NoError(t, DailyTemperature(&buf, 1200, 500, daily))
	assertPNG(t, buf.Bytes(), 1200, 500)
}

func TestTemperatureTrend_SkipsUndated(t *testing.T) {
	dates := testDates(3)
	dates[1] = domain.Timestamp{}

	var buf bytes.Buffer
	require.NoError(t, TemperatureTrend(&buf, "trend", 500, 300, dates, []float64{1, 2, 3}))
	assertPNG(t, buf.Bytes(), 500, 300)
}

func TestOverview(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Overview(&buf, 1200, 500, testDates(4), []float64{3, 4, 5, 6}, []float64{90, 85, 80, 70}))
	assertPNG(t, buf.Bytes(), 1200, 500)
}

func TestDateFormatter(t *testing.T) {
	ts := time.Date(2021, 6, 30, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2021-06-30", DateFormatter(float64(ts.Unix())))
	assert.Empty(t, DateFormatter("x"))
}

func TestDirDisplay(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "preview")
	d := Dir{Path: dir}

	require.NoError(t, d.Show("a.png", []byte("one")))
	require.NoError(t, d.Show("a.png", []byte("two")))

	data, err := os.ReadFile(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

type recordingDisplay struct {
	names []string
}

func (r *recordingDisplay) Show(name string, data []byte) error {
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return err
	}
	r.names = append(r.names, name)
	return nil
}

func TestExplorer_Explore(t *testing.T) {
	frame := dataframe.New(
		series.New([]float64{5, 6, 7}, series.Float, domain.TempColumn),
		series.New([]float64{80, 85, 90}, series.Float, domain.HumidityColumn),
	)
	obs := &domain.Observations{Frame: frame, Dates: testDates(3)}
	agg := domain.Aggregates{RainByMonth: []domain.MonthRainfall{{Month: 1, Rain: 2.4}}}

	display := &recordingDisplay{}
	shown, err := NewExplorer(display, slog.Default()).Explore(context.Background(), obs, agg)
	require.NoError(t, err)

	assert.Equal(t, 4, shown)
	assert.Equal(t, []string{FigureTemperatureTrend, FigureMonthlyRainfall, FigureHumidityScatter, FigureOverview}, display.names)
}

func TestExplorer_Cancelled(t *testing.T) {
	frame := dataframe.New(
		series.New([]float64{5}, series.Float, domain.TempColumn),
		series.New([]float64{80}, series.Float, domain.HumidityColumn),
	)
	obs := &domain.Observations{Frame: frame, Dates: testDates(1)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	shown, err := NewExplorer(Discard{Logger: slog.Default()}, slog.Default()).Explore(ctx, obs, domain.Aggregates{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, shown)
}

func TestExplorer_NoValidDates(t *testing.T) {
	frame := dataframe.New(
		series.New([]float64{5, 6}, series.Float, domain.TempColumn),
		series.New([]float64{80, 85}, series.Float, domain.HumidityColumn),
	)
	obs := &domain.Observations{Frame: frame, Dates: make([]domain.Timestamp, 2)}

	display := &recordingDisplay{}
	shown, err := NewExplorer(display, slog.Default()).Explore(context.Background(), obs, domain.Aggregates{})
	require.NoError(t, err)
	assert.Equal(t, 4, shown)
}

func TestDailyTemperature_NoDays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DailyTemperature(&buf, 1200, 500, nil))
	assertPNG(t, buf.Bytes(), 1200, 500)
}
