package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/irish-weather-analysis/internal/domain"
)

// Exported asset names referenced by the report.
const (
	CleanedCSVFile       = "cleaned_weather_data.csv"
	DailyTemperatureFile = "daily_temperature_trend.png"
	MonthlyRainfallFile  = "monthly_rainfall.png"
	HumidityScatterFile  = "humidity_vs_temperature.png"
	ReportFile           = "Weather_Report.md"
)

const calendarDate = "2006-01-02"

// Render returns the Markdown report for s. The base name of outputDir is
// shown in the Output Directory section.
func Render(s domain.ReportSummary, outputDir string) string {
	from, to := "n/a", "n/a"
	if s.HasRange {
		from = s.From.Format(calendarDate)
		to = s.To.Format(calendarDate)
	}

	var b strings.Builder
	b.WriteString("# Weather Data Analysis Report\n\n")

	b.WriteString("## Project Summary\n")
	b.WriteString("This project analyzes real-world weather data to understand temperature, rainfall, and humidity patterns.\n\n")

	b.WriteString("## Key Insights\n")
	fmt.Fprintf(&b, "- Total records analyzed: **%d**\n", s.Records)
	fmt.Fprintf(&b, "- Temperature column used: **%s**\n", s.TempColumn)
	fmt.Fprintf(&b, "- Date range: **%s → %s**\n\n", from, to)

	b.WriteString("## Temperature Trends\n")
	b.WriteString("- Daily temperatures fluctuate across the dataset.\n")
	fmt.Fprintf(&b, "- Line plot saved as: `%s`\n\n", DailyTemperatureFile)

	b.WriteString("## Rainfall Patterns\n")
	b.WriteString("- Monthly rainfall varies significantly.\n")
	fmt.Fprintf(&b, "- Bar chart saved as: `%s`\n\n", MonthlyRainfallFile)

	b.WriteString("## Humidity & Temperature Relationship\n")
	b.WriteString("- Scatter plot shows correlation between humidity and temperature.\n")
	fmt.Fprintf(&b, "- Saved as: `%s`\n\n", HumidityScatterFile)

	b.WriteString("## Seasonal Behavior\n")
	fmt.Fprintf(&b, "- Grouping by seasons shows how weather varies across %s, %s, %s, and %s.\n\n",
		domain.Winter, domain.Summer, domain.Monsoon, domain.PostMonsoon)

	b.WriteString("## Output Directory\n")
	fmt.Fprintf(&b, "All exported assets are saved in the **%s/** folder:\n", filepath.Base(outputDir))
	b.WriteString("- Cleaned dataset CSV\n")
	b.WriteString("- PNG visualizations\n")
	b.WriteString("- Markdown report\n")

	return b.String()
}

// Write renders the report to path, replacing any existing file.
func Write(path string, s domain.ReportSummary, outputDir string) error {
	if err := os.WriteFile(path, []byte(Render(s, outputDir)), 0o644); err != nil { //nolint:gosec // report is meant to be shared
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
