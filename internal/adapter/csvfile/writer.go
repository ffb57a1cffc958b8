package csvfile

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// WriteFrame writes frame with a header row to path, truncating any
// existing file. Float cells are written with the shortest text that reads
// back to the same value; missing floats are left empty.
func WriteFrame(path string, frame dataframe.DataFrame) error {
	frame, err := exactFloats(frame)
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := frame.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// ReadFrame loads a CSV written by WriteFrame with every column as text.
func ReadFrame(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	frame := dataframe.ReadCSV(f, dataframe.DetectTypes(false))
	if frame.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read %s: %w", path, frame.Err)
	}
	return frame, nil
}

// exactFloats replaces the Float columns of frame with text columns. gota
// prints floats with six decimals, which would round real readings.
func exactFloats(frame dataframe.DataFrame) (dataframe.DataFrame, error) {
	for _, name := range frame.Names() {
		col := frame.Col(name)
		if col.Type() != series.Float {
			continue
		}
		values := col.Float()
		text := make([]string, len(values))
		for i, v := range values {
			if math.IsNaN(v) {
				continue
			}
			text[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		frame = frame.Mutate(series.New(text, series.String, name))
		if frame.Err != nil {
			return dataframe.DataFrame{}, frame.Err
		}
	}
	return frame, nil
}
