// Command genmock writes a synthetic hourly station file in the layout of
// hrly_Irish_weather.csv, for local runs and fixtures. Values follow a
// seasonal and daily cycle with seeded noise; a fraction of cells is left
// blank and a few dates are made unparseable.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -out hrly_Irish_weather.csv \
//	  -start 2020-01-01 -days 365 -seed 1
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/couchcryptid/irish-weather-analysis/internal/adapter/csvfile"
	"github.com/couchcryptid/irish-weather-analysis/internal/domain"
)

// stationLayout is how the station files spell dates: zero-padded day,
// lower-case month.
const stationLayout = "02-Jan-2006 15:04"

type station struct {
	county string
	name   string
	lat    float64
	lon    float64
}

var stations = map[string]station{
	"dublin_airport": {"Dublin", "dublin_airport", 53.428, -6.241},
	"shannon":        {"Clare", "shannon", 52.690, -8.918},
	"valentia":       {"Kerry", "valentia", 51.938, -10.241},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "hrly_Irish_weather.csv", "output CSV path")
	start := flag.String("start", "2020-01-01", "first day (YYYY-MM-DD)")
	days := flag.Int("days", 365, "number of days to generate")
	step := flag.Int("step", 1, "hours between readings")
	name := flag.String("station", "dublin_airport", "station: dublin_airport, shannon or valentia")
	seed := flag.Int64("seed", 1, "random seed")
	missing := flag.Float64("missing", 0.01, "fraction of numeric cells left blank")
	badDates := flag.Int("bad-dates", 1, "number of rows with an unparseable date")
	flag.Parse()

	st, ok := stations[*name]
	if !ok {
		flag.Usage()
		return fmt.Errorf("unknown station %q", *name)
	}
	first, err := time.Parse(time.DateOnly, *start)
	if err != nil {
		return fmt.Errorf("parse -start: %w", err)
	}
	if *days <= 0 || *step <= 0 {
		return fmt.Errorf("-days and -step must be positive")
	}

	g := generator{rng: rand.New(rand.NewSource(*seed)), missing: *missing}
	records := [][]string{header()}
	end := first.AddDate(0, 0, *days)
	for ts := first; ts.Before(end); ts = ts.Add(time.Duration(*step) * time.Hour) {
		records = append(records, g.row(st, ts))
	}
	for i := 0; i < *badDates && len(records) > 1; i++ {
		// Spread the bad dates through the file.
		row := 1 + g.rng.Intn(len(records)-1)
		records[row][4] = "not-a-date"
	}

	frame := dataframe.LoadRecords(records, dataframe.DetectTypes(false), dataframe.DefaultType(series.String))
	if frame.Err != nil {
		return fmt.Errorf("build frame: %w", frame.Err)
	}
	if err := csvfile.WriteFrame(*out, frame); err != nil {
		return err
	}

	log.Printf("wrote %s: %d rows, %d blank cells, %d bad dates", *out, len(records)-1, g.blanks, *badDates)
	return nil
}

func header() []string {
	return append([]string{"county", "station", "latitude", "longitude", domain.DateColumn}, domain.NumericColumns...)
}

type generator struct {
	rng     *rand.Rand
	missing float64
	blanks  int
}

// row builds one reading. The column order matches domain.NumericColumns.
func (g *generator) row(st station, ts time.Time) []string {
	season := math.Cos(2 * math.Pi * float64(ts.YearDay()-15) / 365)
	daily := math.Cos(2 * math.Pi * float64(ts.Hour()-15) / 24)

	temp := 10 - 5*season + 3*daily + g.rng.NormFloat64()
	rhum := math.Min(100, 82+6*season-8*daily+3*g.rng.NormFloat64())
	dewpt := temp - (100-rhum)/5
	wetb := (temp + dewpt) / 2
	vappr := 6.11 * math.Exp(17.27*dewpt/(dewpt+237.3))
	rain := 0.0
	if g.rng.Float64() < 0.25 {
		rain = g.rng.ExpFloat64() * 0.8
	}
	sun := 0.0
	if ts.Hour() >= 7 && ts.Hour() <= 19 {
		sun = math.Max(0, math.Min(1, 0.4-0.2*season+0.3*g.rng.NormFloat64()))
	}

	values := []float64{
		rain,
		temp,
		wetb,
		dewpt,
		vappr,
		math.Round(rhum),
		1013 + 8*g.rng.NormFloat64(),
		math.Max(0, 10+4*g.rng.NormFloat64()),
		float64(g.rng.Intn(36) * 10),
		sun,
		float64(5000 + g.rng.Intn(25000)),
		float64(5 + g.rng.Intn(120)),
		float64(g.rng.Intn(9)),
	}

	rec := []string{
		st.county,
		st.name,
		strconv.FormatFloat(st.lat, 'f', 3, 64),
		strconv.FormatFloat(st.lon, 'f', 3, 64),
		strings.ToLower(ts.Format(stationLayout)),
	}
	for _, v := range values {
		if g.rng.Float64() < g.missing {
			rec = append(rec, " ")
			g.blanks++
			continue
		}
		rec = append(rec, strconv.FormatFloat(v, 'f', 1, 64))
	}
	return rec
}
