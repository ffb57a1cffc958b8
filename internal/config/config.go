package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all run settings, populated from environment variables. The
// defaults reproduce a plain run: read hrly_Irish_weather.csv, write to
// weather_outputs/.
type Config struct {
	InputPath string `envconfig:"INPUT_PATH" default:"hrly_Irish_weather.csv"`
	OutputDir string `envconfig:"OUTPUT_DIR" default:"weather_outputs"`

	// PreviewDir receives the exploratory charts. Empty renders them
	// without keeping the images.
	PreviewDir string `envconfig:"PREVIEW_DIR"`

	ExportWorkbook bool   `envconfig:"EXPORT_WORKBOOK" default:"false"`
	PrintSummary   bool   `envconfig:"PRINT_SUMMARY" default:"true"`
	MetricsFile    string `envconfig:"METRICS_FILE"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if cfg.InputPath == "" {
		return nil, errors.New("INPUT_PATH is required")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OUTPUT_DIR is required")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return &cfg, nil
}

// LoadDotEnv loads variables from the given .env files (default ".env") into
// the environment without overriding variables that are already set. A
// missing file is not an error.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, f := range filenames {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}
