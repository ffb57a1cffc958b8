package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"
)

// ColumnFill records how a numeric column was cleaned.
type ColumnFill struct {
	Column  string
	Missing int     // cells missing after coercion, before filling
	Mean    float64 // mean of the non-missing cells; NaN if there were none
}

// CleanReport summarises a Clean pass, one entry per numeric column in
// NumericColumns order.
type CleanReport struct {
	Columns []ColumnFill
}

// Filled returns the total number of cells replaced by a column mean.
func (r CleanReport) Filled() int {
	n := 0
	for _, c := range r.Columns {
		if !math.IsNaN(c.Mean) {
			n += c.Missing
		}
	}
	return n
}

// CoerceNumeric converts text cells to floats. Cells that are blank, not a
// decimal number, NaN or infinite become NaN.
func CoerceNumeric(cells []string) []float64 {
	out := make([]float64, len(cells))
	for i, c := range cells {
		c = strings.TrimSpace(c)
		v, err := strconv.ParseFloat(c, 64)
		if err != nil || math.IsInf(v, 0) || isHex(c) {
			v = math.NaN()
		}
		out[i] = v
	}
	return out
}

// isHex reports whether s carries a 0x prefix, which ParseFloat accepts but
// station files never use.
func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// MeanOfPresent returns the mean of the non-NaN values and how many were NaN.
// The mean is NaN when every value is missing.
func MeanOfPresent(values []float64) (mean float64, missing int) {
	present := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			missing++
			continue
		}
		present = append(present, v)
	}
	if len(present) == 0 {
		return math.NaN(), missing
	}
	return stat.Mean(present, nil), missing
}

// FillMissing replaces NaN entries of values with fill, in place.
func FillMissing(values []float64, fill float64) {
	for i, v := range values {
		if math.IsNaN(v) {
			values[i] = fill
		}
	}
}

// Clean coerces every numeric column to float and fills missing cells with
// the column's own mean. Columns are processed independently.
func Clean(obs *Observations) (CleanReport, error) {
	report := CleanReport{Columns: make([]ColumnFill, 0, len(NumericColumns))}
	frame := obs.Frame

	for _, col := range NumericColumns {
		if !hasColumn(frame, col) {
			return CleanReport{}, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}

		values := CoerceNumeric(frame.Col(col).Records())
		mean, missing := MeanOfPresent(values)
		FillMissing(values, mean)

		frame = frame.Mutate(series.New(values, series.Float, col))
		if frame.Err != nil {
			return CleanReport{}, fmt.Errorf("clean column %s: %w", col, frame.Err)
		}
		report.Columns = append(report.Columns, ColumnFill{Column: col, Missing: missing, Mean: mean})
	}

	obs.Frame = frame
	return report, nil
}
