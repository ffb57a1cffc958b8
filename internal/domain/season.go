package domain

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Season is one of four fixed calendar-month buckets.
type Season string

// Seasons. The monsoon-style names do not describe an Irish climate; they are
// kept so reports stay comparable with earlier runs.
const (
	Winter      Season = "Winter"
	Summer      Season = "Summer"
	Monsoon     Season = "Monsoon"
	PostMonsoon Season = "Post-Monsoon"
)

// SeasonForMonth maps a calendar month to its season:
//   - Winter: December, January, February
//   - Summer: March, April, May
//   - Monsoon: June to September
//   - Post-Monsoon: October, November (and anything else)
func SeasonForMonth(m time.Month) Season {
	switch m {
	case time.December, time.January, time.February:
		return Winter
	case time.March, time.April, time.May:
		return Summer
	case time.June, time.July, time.August, time.September:
		return Monsoon
	default:
		return PostMonsoon
	}
}

// Stats are summary statistics of one column within a group. Std is the
// sample standard deviation and is NaN for single-row groups.
type Stats struct {
	Mean float64
	Min  float64
	Max  float64
	Std  float64
}

// SeasonStats summarises one season.
type SeasonStats struct {
	Season   Season
	Temp     Stats
	Humidity Stats
	Rain     float64
	Count    int
}

// Seasonal labels every row of dated with its season and summarises temp and
// rhum (mean, min, max, std) and rain (sum) per season. dated must not contain
// rows without a valid date; see Observations.Dated. Results are ordered by
// season label.
func Seasonal(dated *Observations) ([]SeasonStats, error) {
	if dated.MissingDates() > 0 {
		return nil, fmt.Errorf("%d rows without a valid date", dated.MissingDates())
	}
	if dated.Len() == 0 {
		return nil, nil
	}

	labels := make([]string, len(dated.Dates))
	for i, d := range dated.Dates {
		labels[i] = string(SeasonForMonth(d.Time.Month()))
	}
	frame := dated.Frame.Mutate(series.New(labels, series.String, SeasonColumn))
	if frame.Err != nil {
		return nil, fmt.Errorf("label seasons: %w", frame.Err)
	}
	dated.Frame = frame

	for _, c := range []string{TempColumn, HumidityColumn, RainColumn} {
		if !hasColumn(frame, c) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}

	groups := frame.Select([]string{SeasonColumn, TempColumn, HumidityColumn, RainColumn}).GroupBy(SeasonColumn)
	if groups.Err != nil {
		return nil, fmt.Errorf("group by season: %w", groups.Err)
	}

	out := make([]SeasonStats, 0, 4)
	for _, g := range groups.GetGroups() {
		out = append(out, SeasonStats{
			Season:   Season(g.Col(SeasonColumn).Elem(0).String()),
			Temp:     Summarize(g.Col(TempColumn).Float()),
			Humidity: Summarize(g.Col(HumidityColumn).Float()),
			Rain:     sumOf(presentValues(g.Col(RainColumn).Float())),
			Count:    g.Nrow(),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out, nil
}

// Summarize computes Stats over the non-missing values. All fields are NaN
// when nothing is present.
func Summarize(values []float64) Stats {
	present := presentValues(values)
	if len(present) == 0 {
		nan := math.NaN()
		return Stats{Mean: nan, Min: nan, Max: nan, Std: nan}
	}
	return Stats{
		Mean: stat.Mean(present, nil),
		Min:  floats.Min(present),
		Max:  floats.Max(present),
		Std:  sampleStd(present),
	}
}

func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	return stat.StdDev(values, nil)
}
