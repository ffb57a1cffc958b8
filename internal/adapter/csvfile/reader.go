package csvfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/couchcryptid/irish-weather-analysis/internal/domain"
)

// Reader loads the observation table from a delimited file.
// It implements pipeline.Loader.
type Reader struct {
	path   string
	logger *slog.Logger
}

// NewReader creates a Reader for the file at path.
func NewReader(path string, logger *slog.Logger) *Reader {
	return &Reader{path: path, logger: logger}
}

// Load reads every column as text and parses the date column. Numeric
// coercion is left to domain.Clean so unparseable cells become missing
// instead of failing the load.
func (r *Reader) Load(_ context.Context) (*domain.Observations, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open observations: %w", err)
	}
	defer f.Close()

	frame := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if frame.Err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, frame.Err)
	}

	obs, err := domain.NewObservations(frame)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	r.logger.Info("observations loaded",
		"path", r.path,
		"rows", obs.Len(),
		"columns", obs.Frame.Ncol(),
		"undated_rows", obs.MissingDates(),
	)
	return obs, nil
}
