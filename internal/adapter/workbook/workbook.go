package workbook

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/irish-weather-analysis/internal/domain"
)

// FileName is the workbook written next to the report.
const FileName = "weather_summary.xlsx"

// Sheet names, in workbook order.
const (
	SheetSeasonal    = "Seasonal"
	SheetYearly      = "Yearly"
	SheetMonthly     = "Monthly"
	SheetDaily       = "Daily"
	SheetRainByMonth = "RainByMonth"
)

type sheet struct {
	name string
	rows [][]any
}

// Write saves the seasonal statistics and time aggregates of res as an XLSX
// workbook at path, one sheet per table.
func Write(path string, res domain.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []sheet{
		{SheetSeasonal, seasonalRows(res.Seasons)},
		{SheetYearly, yearlyRows(res.Aggregates.Yearly)},
		{SheetMonthly, monthlyRows(res.Aggregates.Monthly)},
		{SheetDaily, dailyRows(res.Aggregates.Daily)},
		{SheetRainByMonth, rainRows(res.RainByMonth)},
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("add sheet %s: %w", s.name, err)
		}
		if err := writeRows(f, s); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, s sheet) error {
	for i, r := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("sheet %s: %w", s.name, err)
		}
		row := r
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", s.name, i+1, err)
		}
	}
	return nil
}

func seasonalRows(seasons []domain.SeasonStats) [][]any {
	rows := [][]any{{
		"season", "count",
		"temp_mean", "temp_min", "temp_max", "temp_std",
		"rhum_mean", "rhum_min", "rhum_max", "rhum_std",
		"rain_sum",
	}}
	for _, s := range seasons {
		rows = append(rows, []any{
			string(s.Season), s.Count,
			cellValue(s.Temp.Mean), cellValue(s.Temp.Min), cellValue(s.Temp.Max), cellValue(s.Temp.Std),
			cellValue(s.Humidity.Mean), cellValue(s.Humidity.Min), cellValue(s.Humidity.Max), cellValue(s.Humidity.Std),
			cellValue(s.Rain),
		})
	}
	return rows
}

func yearlyRows(years []domain.YearlyMean) [][]any {
	rows := [][]any{{"year", "temp_mean", "count"}}
	for _, y := range years {
		rows = append(rows, []any{y.Year, cellValue(y.Temp), y.Count})
	}
	return rows
}

func monthlyRows(months []domain.MonthlyMean) [][]any {
	rows := [][]any{{"year", "month", "temp_mean", "count"}}
	for _, m := range months {
		rows = append(rows, []any{m.Year, m.Month, cellValue(m.Temp), m.Count})
	}
	return rows
}

func dailyRows(days []domain.DailyMean) [][]any {
	rows := [][]any{{"year", "month", "day", "temp_mean", "count"}}
	for _, d := range days {
		rows = append(rows, []any{d.Year, d.Month, d.Day, cellValue(d.Temp), d.Count})
	}
	return rows
}

func rainRows(totals []domain.MonthRainfall) [][]any {
	rows := [][]any{{"month", "rain_sum"}}
	for _, m := range totals {
		rows = append(rows, []any{m.Month, cellValue(m.Rain)})
	}
	return rows
}

// cellValue leaves undefined statistics as empty cells; XLSX has no NaN.
func cellValue(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}
