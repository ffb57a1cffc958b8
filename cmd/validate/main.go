// Command validate checks the outputs of an analysis run: the cleaned CSV
// against the input file, the chart images, the Markdown report and, if
// present, the summary workbook.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -input hrly_Irish_weather.csv \
//	  -out weather_outputs
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/irish-weather-analysis/internal/adapter/csvfile"
	"github.com/couchcryptid/irish-weather-analysis/internal/adapter/report"
	"github.com/couchcryptid/irish-weather-analysis/internal/adapter/workbook"
	"github.com/couchcryptid/irish-weather-analysis/internal/domain"
)

var reportHeadings = []string{
	"## Project Summary",
	"## Key Insights",
	"## Temperature Trends",
	"## Rainfall Patterns",
	"## Humidity & Temperature Relationship",
	"## Seasonal Behavior",
	"## Output Directory",
}

var recordCount = regexp.MustCompile(`Total records analyzed: \*\*(\d+)\*\*`)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	input := flag.String("input", "hrly_Irish_weather.csv", "input CSV the run analysed")
	out := flag.String("out", "weather_outputs", "output directory of the run")
	flag.Parse()

	os.Exit(run(*input, *out))
}

func run(inputPath, outDir string) int {
	fmt.Println("=== Weather Output Validation ===")
	fmt.Println()

	input, err := csvfile.ReadFrame(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load input: %v\n", err)
		return 1
	}
	cleaned, err := csvfile.ReadFrame(filepath.Join(outDir, report.CleanedCSVFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load cleaned CSV: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateCleaned(input.Nrow(), cleaned.Nrow(), cleaned.Names(), cleanedValues(cleaned)),
		validateCharts(outDir),
		validateReport(outDir, cleaned.Nrow()),
	}
	if _, err := os.Stat(filepath.Join(outDir, workbook.FileName)); err == nil {
		phases = append(phases, validateWorkbook(filepath.Join(outDir, workbook.FileName)))
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d input, %d cleaned\n", input.Nrow(), cleaned.Nrow())

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// cleanedValues returns the raw text of the numeric columns of the cleaned
// view, keyed by column.
func cleanedValues(frame dataframe.DataFrame) map[string][]string {
	out := make(map[string][]string)
	for _, c := range domain.CleanedColumns[1:] {
		if slices.Contains(frame.Names(), c) {
			out[c] = frame.Col(c).Records()
		}
	}
	return out
}

// ── Phases ──

func validateCleaned(inputRows, cleanedRows int, names []string, values map[string][]string) *phase {
	p := &phase{name: "Cleaned CSV"}

	if inputRows != cleanedRows {
		p.errorf("row count: input %d, cleaned %d", inputRows, cleanedRows)
	}
	if !slices.Equal(names, domain.CleanedColumns) {
		p.errorf("columns: got %v, want %v", names, domain.CleanedColumns)
	}
	for _, c := range domain.CleanedColumns[1:] {
		for i, v := range values[c] {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || math.IsNaN(f) {
				p.errorf("%s row %d: missing value %q after cleaning", c, i+1, v)
			}
		}
	}
	return p
}

func validateCharts(outDir string) *phase {
	p := &phase{name: "Chart images"}
	for _, name := range []string{report.DailyTemperatureFile, report.MonthlyRainfallFile, report.HumidityScatterFile} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			p.errorf("%s: %v", name, err)
			continue
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			p.errorf("%s: not a PNG: %v", name, err)
			continue
		}
		if cfg.Width == 0 || cfg.Height == 0 {
			p.errorf("%s: empty image", name)
		}
	}
	return p
}

func validateReport(outDir string, cleanedRows int) *phase {
	p := &phase{name: "Markdown report"}

	data, err := os.ReadFile(filepath.Join(outDir, report.ReportFile))
	if err != nil {
		p.errorf("%v", err)
		return p
	}
	text := string(data)

	last := -1
	for _, h := range reportHeadings {
		i := strings.Index(text, h)
		switch {
		case i < 0:
			p.errorf("missing heading %q", h)
		case i < last:
			p.errorf("heading %q out of order", h)
		default:
			last = i
		}
	}

	m := recordCount.FindStringSubmatch(text)
	if m == nil {
		p.errorf("record count not found")
	} else if n, _ := strconv.Atoi(m[1]); n != cleanedRows {
		p.errorf("record count: report %d, cleaned CSV %d", n, cleanedRows)
	}

	for _, name := range []string{report.DailyTemperatureFile, report.MonthlyRainfallFile, report.HumidityScatterFile} {
		if !strings.Contains(text, "`"+name+"`") {
			p.errorf("image %s not referenced", name)
		}
	}
	return p
}

func validateWorkbook(path string) *phase {
	p := &phase{name: "Summary workbook"}

	f, err := excelize.OpenFile(path)
	if err != nil {
		p.errorf("open: %v", err)
		return p
	}
	defer f.Close()

	want := []string{
		workbook.SheetSeasonal,
		workbook.SheetYearly,
		workbook.SheetMonthly,
		workbook.SheetDaily,
		workbook.SheetRainByMonth,
	}
	if got := f.GetSheetList(); !slices.Equal(got, want) {
		p.errorf("sheets: got %v, want %v", got, want)
	}

	rows, err := f.GetRows(workbook.SheetSeasonal)
	if err != nil {
		p.errorf("read %s: %v", workbook.SheetSeasonal, err)
		return p
	}
	if len(rows) < 2 || len(rows) > 5 {
		p.errorf("%s: %d rows, want a header and 1 to 4 seasons", workbook.SheetSeasonal, len(rows))
	}
	return p
}
