package charts

import (
	"io"
	"strconv"

	"github.com/couchcryptid/irish-weather-analysis/internal/domain"
)

const (
	tempLabel     = "Temperature (°C)"
	humidityLabel = "Humidity (%)"
)

// TemperatureTrend draws temperature against observation time. Rows without
// a valid date are skipped.
func TemperatureTrend(w io.Writer, title string, width, height int, dates []domain.Timestamp, temps []float64) error {
	xs := make([]float64, 0, len(dates))
	ys := make([]float64, 0, len(dates))
	for i, d := range dates {
		if !d.Valid || i >= len(temps) {
			continue
		}
		xs = append(xs, float64(d.Time.Unix()))
		ys = append(ys, temps[i])
	}
	return RenderLine(w, Plot{
		Title:      title,
		XLabel:     "Date",
		YLabel:     tempLabel,
		Width:      width,
		Height:     height,
		XFormatter: DateFormatter,
	}, xs, ys)
}

// DailyTemperature draws the day-level means in key order, one x step per day.
func DailyTemperature(w io.Writer, width, height int, daily []domain.DailyMean) error {
	xs := make([]float64, len(daily))
	ys := make([]float64, len(daily))
	for i, d := range daily {
		xs[i] = float64(i)
		ys[i] = d.Temp
	}
	return RenderLine(w, Plot{
		Title:  "Daily Temperature Trend",
		XLabel: "Day",
		YLabel: tempLabel,
		Width:  width,
		Height: height,
	}, xs, ys)
}

// MonthlyRainfall draws one bar per month-of-year.
func MonthlyRainfall(w io.Writer, title string, width, height int, totals []domain.MonthRainfall) error {
	labels := make([]string, len(totals))
	values := make([]float64, len(totals))
	for i, m := range totals {
		labels[i] = strconv.Itoa(m.Month)
		values[i] = m.Rain
	}
	return RenderBars(w, Plot{
		Title:  title,
		XLabel: "Month",
		YLabel: "Rain (mm)",
		Width:  width,
		Height: height,
	}, labels, values)
}

// HumidityVsTemperature scatters relative humidity against temperature.
func HumidityVsTemperature(w io.Writer, title string, width, height int, temps, humidity []float64) error {
	return RenderScatter(w, Plot{
		Title:  title,
		XLabel: tempLabel,
		YLabel: humidityLabel,
		Width:  width,
		Height: height,
	}, temps, humidity)
}

// Overview repeats the temperature line and the humidity scatter side by side.
func Overview(w io.Writer, width, height int, dates []domain.Timestamp, temps, humidity []float64) error {
	return RenderSideBySide(w, width, height,
		func(pw io.Writer, pwidth, pheight int) error {
			return TemperatureTrend(pw, "Daily Temperature", pwidth, pheight, dates, temps)
		},
		func(pw io.Writer, pwidth, pheight int) error {
			return HumidityVsTemperature(pw, "Humidity vs Temperature", pwidth, pheight, temps, humidity)
		},
	)
}
