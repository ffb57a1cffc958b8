package observability

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.RowsLoaded.Set(42)
	a.CellsFilled.WithLabelValues("temp").Add(3)

	assert.InDelta(t, 42.0, testutil.ToFloat64(a.RowsLoaded), 0)
	assert.InDelta(t, 0.0, testutil.ToFloat64(b.RowsLoaded), 0)
	assert.InDelta(t, 3.0, testutil.ToFloat64(a.CellsFilled.WithLabelValues("temp")), 0)
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.RowsLoaded.Set(7)
	m.LastRunSuccess.Set(1)

	path := filepath.Join(t.TempDir(), "weather.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "weather_analysis_rows_loaded 7")
	assert.Contains(t, string(data), "weather_analysis_last_run_success 1")
}

func TestMetrics_WriteTextfileBadDir(t *testing.T) {
	m := NewMetrics()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "weather.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics textfile")
}

func TestNewLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "info", "json").Info("loaded", "rows", 3)
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"rows":3`)

	buf.Reset()
	newLogger(&buf, "info", "text").Info("loaded", "rows", 3)
	assert.Contains(t, buf.String(), "rows=3")
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn", "text")
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
