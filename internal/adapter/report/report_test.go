package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/irish-weather-analysis/internal/domain"
)

var testSummary = domain.ReportSummary{
	Records:    1234,
	TempColumn: domain.TempColumn,
	From:       time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	To:         time.Date(2020, 12, 31, 23, 0, 0, 0, time.UTC),
	HasRange:   true,
}

func TestRender_Headings(t *testing.T) {
	out := Render(testSummary, "weather_outputs")

	headings := []string{
		"# Weather Data Analysis Report",
		"## Project Summary",
		"## Key Insights",
		"## Temperature Trends",
		"## Rainfall Patterns",
		"## Humidity & Temperature Relationship",
		"## Seasonal Behavior",
		"## Output Directory",
	}
	last := -1
	for _, h := range headings {
		idx := strings.Index(out, h+"\n")
		require.GreaterOrEqual(t, idx, 0, "missing heading %q", h)
		assert.Greater(t, idx, last, "heading %q out of order", h)
		last = idx
	}
}

func TestRender_KeyInsights(t *testing.T) {
	out := Render(testSummary, "weather_outputs")

	assert.Contains(t, out, "- Total records analyzed: **1234**\n")
	assert.Contains(t, out, "- Temperature column used: **temp**\n")
	assert.Contains(t, out, "- Date range: **1990-01-01 → 2020-12-31**\n")
	assert.Contains(t, out, "`daily_temperature_trend.png`")
	assert.Contains(t, out, "`monthly_rainfall.png`")
	assert.Contains(t, out, "`humidity_vs_temperature.png`")
	assert.Contains(t, out, "Winter, Summer, Monsoon, and Post-Monsoon")
	assert.Contains(t, out, "**weather_outputs/** folder")
}

func TestRender_NoDateRange(t *testing.T) {
	s := testSummary
	s.HasRange = false

	out := Render(s, "/var/tmp/weather_outputs/")
	assert.Contains(t, out, "- Date range: **n/a → n/a**\n")
	assert.Contains(t, out, "**weather_outputs/** folder")
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), ReportFile)

	require.NoError(t, Write(path, testSummary, "weather_outputs"))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, Write(path, testSummary, "weather_outputs"))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(string(second), "# Weather Data Analysis Report"))
}

func TestWrite_MissingDir(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "absent", ReportFile), testSummary, "weather_outputs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write report")
}
