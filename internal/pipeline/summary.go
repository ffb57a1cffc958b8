package pipeline

import (
	"fmt"
	"io"
	"math"
	"slices"
	"sort"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/couchcryptid/irish-weather-analysis/internal/domain"
)

const headRows = 5

// SummaryPrinter writes the console overview of a run: the raw table, the
// cleaned sample, the heads of each aggregate and the seasonal statistics.
type SummaryPrinter struct {
	w io.Writer
}

// NewSummaryPrinter creates a SummaryPrinter writing to w.
func NewSummaryPrinter(w io.Writer) *SummaryPrinter {
	return &SummaryPrinter{w: w}
}

// PrintLoaded writes the HEAD, INFO and DESCRIBE sections for the table as
// loaded, before cleaning.
func (s *SummaryPrinter) PrintLoaded(obs *domain.Observations) {
	fmt.Fprintln(s.w, "\n=== HEAD ===")
	fmt.Fprintln(s.w, head(obs.Frame))

	fmt.Fprintln(s.w, "\n=== INFO ===")
	s.info(obs.Frame)

	fmt.Fprintln(s.w, "\n=== DESCRIBE ===")
	s.describe(obs.Frame)
}

// PrintCleaned writes the first rows of the cleaned view.
func (s *SummaryPrinter) PrintCleaned(cleaned dataframe.DataFrame) {
	fmt.Fprintln(s.w, "\n=== CLEANED DATA SAMPLE ===")
	fmt.Fprintln(s.w, head(cleaned))
}

// PrintAggregates writes the first rows of the daily, monthly and yearly means.
func (s *SummaryPrinter) PrintAggregates(agg domain.Aggregates) {
	fmt.Fprintln(s.w, "\nDaily Temperature Mean:")
	tw := tabwriter.NewWriter(s.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "year\tmonth\tday\ttemp\t")
	for _, d := range agg.Daily[:min(headRows, len(agg.Daily))] {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.6f\t\n", d.Year, d.Month, d.Day, d.Temp)
	}
	tw.Flush()

	fmt.Fprintln(s.w, "\nMonthly Temperature Mean:")
	tw = tabwriter.NewWriter(s.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "year\tmonth\ttemp\t")
	for _, m := range agg.Monthly[:min(headRows, len(agg.Monthly))] {
		fmt.Fprintf(tw, "%d\t%d\t%.6f\t\n", m.Year, m.Month, m.Temp)
	}
	tw.Flush()

	fmt.Fprintln(s.w, "\nYearly Temperature Mean:")
	tw = tabwriter.NewWriter(s.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "year\ttemp\t")
	for _, y := range agg.Yearly[:min(headRows, len(agg.Yearly))] {
		fmt.Fprintf(tw, "%d\t%.6f\t\n", y.Year, y.Temp)
	}
	tw.Flush()
}

// PrintSeasons writes one line per season.
func (s *SummaryPrinter) PrintSeasons(seasons []domain.SeasonStats) {
	fmt.Fprintln(s.w, "\nSeasonal Statistics:")
	tw := tabwriter.NewWriter(s.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "season\ttemp_mean\ttemp_min\ttemp_max\ttemp_std\trhum_mean\trhum_min\trhum_max\trhum_std\train_sum\t")
	for _, st := range seasons {
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
			st.Season,
			st.Temp.Mean, st.Temp.Min, st.Temp.Max, st.Temp.Std,
			st.Humidity.Mean, st.Humidity.Min, st.Humidity.Max, st.Humidity.Std,
			st.Rain,
		)
	}
	tw.Flush()
}

func (s *SummaryPrinter) info(frame dataframe.DataFrame) {
	fmt.Fprintf(s.w, "rows: %d, columns: %d\n", frame.Nrow(), frame.Ncol())
	tw := tabwriter.NewWriter(s.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tnon-empty\ttype")
	for _, name := range frame.Names() {
		col := frame.Col(name)
		present := 0
		for _, v := range col.Records() {
			if v != "" && v != "NaN" {
				present++
			}
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", name, present, col.Type())
	}
	tw.Flush()
}

// describe prints count, mean, std and the five-number summary of each
// numeric column, over the cells that parse as numbers.
func (s *SummaryPrinter) describe(frame dataframe.DataFrame) {
	tw := tabwriter.NewWriter(s.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "column\tcount\tmean\tstd\tmin\t25%\t50%\t75%\tmax\t")
	names := frame.Names()
	for _, col := range domain.NumericColumns {
		if !slices.Contains(names, col) {
			continue
		}
		d := describeValues(domain.CoerceNumeric(frame.Col(col).Records()))
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
			col, d.count, d.mean, d.std, d.min, d.q1, d.median, d.q3, d.max)
	}
	tw.Flush()
}

type description struct {
	count  int
	mean   float64
	std    float64
	min    float64
	q1     float64
	median float64
	q3     float64
	max    float64
}

func describeValues(values []float64) description {
	present := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	nan := math.NaN()
	d := description{count: len(present), mean: nan, std: nan, min: nan, q1: nan, median: nan, q3: nan, max: nan}
	if len(present) == 0 {
		return d
	}

	sort.Float64s(present)
	d.mean = stat.Mean(present, nil)
	if len(present) > 1 {
		d.std = stat.StdDev(present, nil)
	}
	d.min = floats.Min(present)
	d.max = floats.Max(present)
	d.q1 = stat.Quantile(0.25, stat.Empirical, present, nil)
	d.median = stat.Quantile(0.5, stat.Empirical, present, nil)
	d.q3 = stat.Quantile(0.75, stat.Empirical, present, nil)
	return d
}

func head(frame dataframe.DataFrame) string {
	if frame.Nrow() == 0 {
		return "(no rows)"
	}
	idx := make([]int, min(headRows, frame.Nrow()))
	for i := range idx {
		idx[i] = i
	}
	return frame.Subset(idx).String()
}
