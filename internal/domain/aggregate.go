package domain

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DailyMean is the mean temperature of one calendar day.
type DailyMean struct {
	Year  int
	Month int
	Day   int
	Temp  float64
	Count int
}

// MonthlyMean is the mean temperature of one calendar month of one year.
type MonthlyMean struct {
	Year  int
	Month int
	Temp  float64
	Count int
}

// YearlyMean is the mean temperature of one year.
type YearlyMean struct {
	Year  int
	Temp  float64
	Count int
}

// MonthRainfall is total rain for a month of the year, summed across years.
type MonthRainfall struct {
	Month int
	Rain  float64
}

// Aggregates holds the time-based reductions of the observation table. Every
// slice is sorted ascending by its key.
type Aggregates struct {
	Daily       []DailyMean
	Monthly     []MonthlyMean
	Yearly      []YearlyMean
	RainByMonth []MonthRainfall
}

// Aggregate derives year, month and day columns from the parsed dates and
// computes mean temperature per day, month and year plus total rain per
// month-of-year. Rows without a valid date get missing calendar fields and
// fall out of every group.
func Aggregate(obs *Observations) (Aggregates, error) {
	if err := AddCalendarColumns(obs); err != nil {
		return Aggregates{}, err
	}

	dated, err := obs.Dated()
	if err != nil {
		return Aggregates{}, err
	}
	if dated.Len() == 0 {
		return Aggregates{}, nil
	}

	var agg Aggregates

	days, err := groupMeans(dated.Frame, TempColumn, YearColumn, MonthColumn, DayColumn)
	if err != nil {
		return Aggregates{}, err
	}
	for _, g := range days {
		agg.Daily = append(agg.Daily, DailyMean{Year: g.key[0], Month: g.key[1], Day: g.key[2], Temp: g.mean, Count: g.count})
	}

	months, err := groupMeans(dated.Frame, TempColumn, YearColumn, MonthColumn)
	if err != nil {
		return Aggregates{}, err
	}
	for _, g := range months {
		agg.Monthly = append(agg.Monthly, MonthlyMean{Year: g.key[0], Month: g.key[1], Temp: g.mean, Count: g.count})
	}

	years, err := groupMeans(dated.Frame, TempColumn, YearColumn)
	if err != nil {
		return Aggregates{}, err
	}
	for _, g := range years {
		agg.Yearly = append(agg.Yearly, YearlyMean{Year: g.key[0], Temp: g.mean, Count: g.count})
	}

	agg.RainByMonth, err = RainfallByMonth(dated)
	if err != nil {
		return Aggregates{}, err
	}
	return agg, nil
}

// AddCalendarColumns adds integer year, month and day columns derived from
// the parsed dates. Cells for rows without a valid date are missing.
func AddCalendarColumns(obs *Observations) error {
	n := len(obs.Dates)
	years := make([]string, n)
	months := make([]string, n)
	days := make([]string, n)
	for i, d := range obs.Dates {
		if !d.Valid {
			years[i], months[i], days[i] = "NaN", "NaN", "NaN"
			continue
		}
		years[i] = strconv.Itoa(d.Time.Year())
		months[i] = strconv.Itoa(int(d.Time.Month()))
		days[i] = strconv.Itoa(d.Time.Day())
	}

	frame := obs.Frame.
		Mutate(series.New(years, series.Int, YearColumn)).
		Mutate(series.New(months, series.Int, MonthColumn)).
		Mutate(series.New(days, series.Int, DayColumn))
	if frame.Err != nil {
		return fmt.Errorf("derive calendar columns: %w", frame.Err)
	}
	obs.Frame = frame
	return nil
}

// RainfallByMonth sums rain per calendar month across all years, using the
// parsed dates of obs. Months without any row are omitted.
func RainfallByMonth(obs *Observations) ([]MonthRainfall, error) {
	rain, err := obs.Values(RainColumn)
	if err != nil {
		return nil, err
	}

	var totals [13]float64
	var seen [13]bool
	for i, d := range obs.Dates {
		if !d.Valid {
			continue
		}
		m := d.Time.Month()
		seen[m] = true
		if !math.IsNaN(rain[i]) {
			totals[m] += rain[i]
		}
	}

	out := make([]MonthRainfall, 0, 12)
	for m := 1; m <= 12; m++ {
		if seen[m] {
			out = append(out, MonthRainfall{Month: m, Rain: totals[m]})
		}
	}
	return out, nil
}

type group struct {
	key   []int
	mean  float64
	count int
}

// groupMeans groups frame by the integer key columns and returns the mean of
// value per group, sorted by key tuple.
func groupMeans(frame dataframe.DataFrame, value string, keys ...string) ([]group, error) {
	cols := append(append([]string{}, keys...), value)
	groups := frame.Select(cols).GroupBy(keys...)
	if groups == nil {
		return nil, fmt.Errorf("group by %v: no key columns", keys)
	}
	if groups.Err != nil {
		return nil, fmt.Errorf("group by %v: %w", keys, groups.Err)
	}

	out := make([]group, 0)
	for _, g := range groups.GetGroups() {
		key := make([]int, len(keys))
		for i, k := range keys {
			v, err := g.Col(k).Elem(0).Int()
			if err != nil {
				return nil, fmt.Errorf("group key %s: %w", k, err)
			}
			key[i] = v
		}
		values := presentValues(g.Col(value).Float())
		out = append(out, group{key: key, mean: meanOrNaN(values), count: g.Nrow()})
	}

	sort.Slice(out, func(i, j int) bool { return lessKey(out[i].key, out[j].key) })
	return out, nil
}

func lessKey(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func presentValues(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

func meanOrNaN(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}

func sumOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values)
}
