package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names used by the analysis.
const (
	DateColumn     = "date"
	TempColumn     = "temp"
	RainColumn     = "rain"
	HumidityColumn = "rhum"

	YearColumn   = "year"
	MonthColumn  = "month"
	DayColumn    = "day"
	SeasonColumn = "season"
)

// DateLayout is the station export timestamp format. The unpadded day and hour
// directives accept both "1" and "01".
const DateLayout = "2-Jan-2006 15:04"

// isoLayout is how parsed timestamps are written back into the table.
const isoLayout = "2006-01-02 15:04:05"

// NumericColumns are the measurement columns coerced and mean-filled by Clean.
var NumericColumns = []string{
	"rain", "temp", "wetb", "dewpt", "vappr", "rhum", "msl",
	"wdsp", "wddir", "sun", "vis", "clht", "clamt",
}

// CleanedColumns is the column set of the exported cleaned view.
var CleanedColumns = []string{DateColumn, TempColumn, RainColumn, HumidityColumn}

// ErrMissingColumn is returned when the input lacks a column the analysis needs.
var ErrMissingColumn = errors.New("missing column")

// Timestamp is a parsed observation time. Valid is false when the source text
// did not match DateLayout.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// ParseDate parses s with DateLayout, returning an invalid Timestamp on failure.
func ParseDate(s string) Timestamp {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Timestamp{}
	}
	return Timestamp{Time: t, Valid: true}
}

// Format renders the timestamp for the table; missing timestamps render empty.
func (ts Timestamp) Format() string {
	if !ts.Valid {
		return ""
	}
	return ts.Time.Format(isoLayout)
}

// Observations is the in-memory observation table. Frame holds every input
// column; Dates holds the parsed date of each row in frame order.
type Observations struct {
	Frame dataframe.DataFrame
	Dates []Timestamp
}

// NewObservations parses the date column of frame and returns the table. The
// date column is rewritten in ISO form, empty where the date was unparseable.
func NewObservations(frame dataframe.DataFrame) (*Observations, error) {
	if frame.Err != nil {
		return nil, fmt.Errorf("load observations: %w", frame.Err)
	}
	if !hasColumn(frame, DateColumn) {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, DateColumn)
	}

	raw := frame.Col(DateColumn).Records()
	dates := make([]Timestamp, len(raw))
	formatted := make([]string, len(raw))
	for i, s := range raw {
		dates[i] = ParseDate(s)
		formatted[i] = dates[i].Format()
	}

	frame = frame.Mutate(series.New(formatted, series.String, DateColumn))
	if frame.Err != nil {
		return nil, fmt.Errorf("rewrite date column: %w", frame.Err)
	}
	return &Observations{Frame: frame, Dates: dates}, nil
}

// Len returns the number of rows.
func (o *Observations) Len() int {
	return o.Frame.Nrow()
}

// MissingDates returns how many rows have an unparseable date.
func (o *Observations) MissingDates() int {
	n := 0
	for _, d := range o.Dates {
		if !d.Valid {
			n++
		}
	}
	return n
}

// Values returns the column as floats, NaN for missing cells.
func (o *Observations) Values(column string) ([]float64, error) {
	if !hasColumn(o.Frame, column) {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, column)
	}
	return o.Frame.Col(column).Float(), nil
}

// Cleaned returns the narrow date/temp/rain/rhum view of the table.
func (o *Observations) Cleaned() (dataframe.DataFrame, error) {
	for _, c := range CleanedColumns {
		if !hasColumn(o.Frame, c) {
			return dataframe.DataFrame{}, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}
	view := o.Frame.Select(CleanedColumns)
	if view.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("select cleaned columns: %w", view.Err)
	}
	return view, nil
}

// Dated returns the rows with a valid date, in their original order.
func (o *Observations) Dated() (*Observations, error) {
	idx := o.datedIndexes()
	dates := make([]Timestamp, len(idx))
	for i, j := range idx {
		dates[i] = o.Dates[j]
	}
	if len(idx) == o.Len() {
		return &Observations{Frame: o.Frame, Dates: dates}, nil
	}

	frame := subset(o.Frame, idx)
	if frame.Err != nil {
		return nil, fmt.Errorf("drop undated rows: %w", frame.Err)
	}
	return &Observations{Frame: frame, Dates: dates}, nil
}

// DateRange returns the earliest and latest valid dates. ok is false when no
// row has a valid date.
func (o *Observations) DateRange() (from, to time.Time, ok bool) {
	for _, d := range o.Dates {
		if !d.Valid {
			continue
		}
		if !ok || d.Time.Before(from) {
			from = d.Time
		}
		if !ok || d.Time.After(to) {
			to = d.Time
		}
		ok = true
	}
	return from, to, ok
}

func (o *Observations) datedIndexes() []int {
	idx := make([]int, 0, len(o.Dates))
	for i, d := range o.Dates {
		if d.Valid {
			idx = append(idx, i)
		}
	}
	return idx
}

// subset keeps the rows at idx. gota rejects an empty index list, so an empty
// selection is built from zero-length columns instead.
func subset(frame dataframe.DataFrame, idx []int) dataframe.DataFrame {
	if len(idx) > 0 {
		return frame.Subset(idx)
	}
	cols := make([]series.Series, 0, frame.Ncol())
	for _, name := range frame.Names() {
		col := frame.Col(name)
		cols = append(cols, series.New([]string{}, col.Type(), name))
	}
	return dataframe.New(cols...)
}

func hasColumn(frame dataframe.DataFrame, name string) bool {
	for _, n := range frame.Names() {
		if n == name {
			return true
		}
	}
	return false
}
