package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOutputDir = "/tmp/weather-out"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "hrly_Irish_weather.csv", cfg.InputPath)
	assert.Equal(t, "weather_outputs", cfg.OutputDir)
	assert.Empty(t, cfg.PreviewDir)
	assert.False(t, cfg.ExportWorkbook)
	assert.True(t, cfg.PrintSummary)
	assert.Empty(t, cfg.MetricsFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("INPUT_PATH", "data/station.csv")
	t.Setenv("OUTPUT_DIR", testOutputDir)
	t.Setenv("PREVIEW_DIR", "/tmp/preview")
	t.Setenv("EXPORT_WORKBOOK", "true")
	t.Setenv("PRINT_SUMMARY", "false")
	t.Setenv("METRICS_FILE", "/var/lib/node_exporter/weather.prom")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/station.csv", cfg.InputPath)
	assert.Equal(t, testOutputDir, cfg.OutputDir)
	assert.Equal(t, "/tmp/preview", cfg.PreviewDir)
	assert.True(t, cfg.ExportWorkbook)
	assert.False(t, cfg.PrintSummary)
	assert.Equal(t, "/var/lib/node_exporter/weather.prom", cfg.MetricsFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("EXPORT_WORKBOOK", "maybe")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EXPORT_WORKBOOK")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("OUTPUT_DIR="+testOutputDir+"\nLOG_LEVEL=error\n"), 0o600))

	t.Setenv("LOG_LEVEL", "warn")
	// Registers cleanup so the variable loaded from the file does not leak.
	t.Setenv("OUTPUT_DIR", "")
	require.NoError(t, os.Unsetenv("OUTPUT_DIR"))

	require.NoError(t, LoadDotEnv(path))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, testOutputDir, cfg.OutputDir)
	assert.Equal(t, "warn", cfg.LogLevel, "existing variables win over .env")
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
