package domain

import "time"

// ReportSummary holds the values embedded in the Markdown report.
type ReportSummary struct {
	Records    int    // rows in the cleaned view, undated rows included
	TempColumn string // name of the temperature column analysed
	From       time.Time
	To         time.Time
	HasRange   bool // false when no row has a valid date
}

// NewReportSummary builds the report values: the record count comes from the
// cleaned view, the date range from the date-indexed table.
func NewReportSummary(cleanedRows int, dated *Observations) ReportSummary {
	from, to, ok := dated.DateRange()
	return ReportSummary{
		Records:    cleanedRows,
		TempColumn: TempColumn,
		From:       from,
		To:         to,
		HasRange:   ok,
	}
}

// Result carries everything a run produces for the exporter.
type Result struct {
	Observations *Observations // full table after cleaning and calendar derivation
	Clean        CleanReport
	Aggregates   Aggregates
	Dated        *Observations // rows with a valid date, season-labelled
	Seasons      []SeasonStats
	RainByMonth  []MonthRainfall // recomputed from Dated
}
