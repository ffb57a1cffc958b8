package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Plot describes the frame of a chart: title, axis names and pixel size.
type Plot struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int

	// XFormatter formats x tick labels; nil uses the go-chart default.
	XFormatter chart.ValueFormatter
}

// RenderLine draws ys against xs as a connected line.
func RenderLine(w io.Writer, p Plot, xs, ys []float64) error {
	return renderXY(w, p, xs, ys, chart.Style{
		StrokeWidth: 1,
		StrokeColor: chart.ColorBlue,
	})
}

// RenderScatter draws ys against xs as unconnected dots.
func RenderScatter(w io.Writer, p Plot, xs, ys []float64) error {
	return renderXY(w, p, xs, ys, chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    2,
		DotColor:    chart.ColorBlue,
	})
}

// RenderBars draws one bar per label.
func RenderBars(w io.Writer, p Plot, labels []string, values []float64) error {
	bars := make([]chart.Value, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			v = 0
		}
		bars = append(bars, chart.Value{Label: labels[i], Value: v})
	}
	if len(bars) == 0 {
		bars = append(bars, chart.Value{Label: "n/a", Value: 0})
	}

	graph := chart.BarChart{
		Title:      p.Title,
		Width:      p.Width,
		Height:     p.Height,
		BarWidth:   40,
		BarSpacing: 20,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		YAxis: chart.YAxis{
			Name:  p.YLabel,
			Range: barRange(bars),
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render %q: %w", p.Title, err)
	}
	return nil
}

// RenderSideBySide renders left and right into one image of the given size,
// each taking half of the width.
func RenderSideBySide(w io.Writer, width, height int, left, right func(io.Writer, int, int) error) error {
	half := width / 2
	panels := make([]image.Image, 0, 2)
	for _, render := range []func(io.Writer, int, int) error{left, right} {
		var buf bytes.Buffer
		if err := render(&buf, half, height); err != nil {
			return err
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return fmt.Errorf("decode panel: %w", err)
		}
		panels = append(panels, img)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	for i, img := range panels {
		offset := image.Pt(i*half, 0)
		draw.Draw(canvas, img.Bounds().Add(offset), img, img.Bounds().Min, draw.Src)
	}

	if err := png.Encode(w, canvas); err != nil {
		return fmt.Errorf("encode figure: %w", err)
	}
	return nil
}

// DateFormatter labels x ticks holding Unix seconds as calendar dates.
func DateFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return time.Unix(int64(f), 0).UTC().Format("2006-01-02")
}

func renderXY(w io.Writer, p Plot, xs, ys []float64, style chart.Style) error {
	xs, ys = dropMissing(xs, ys)

	series := chart.ContinuousSeries{
		Name:    p.Title,
		XValues: xs,
		YValues: ys,
		Style:   style,
	}
	// go-chart needs one visible series with a point; keep the axes and
	// draw nothing.
	if len(xs) == 0 {
		series.XValues = []float64{0}
		series.YValues = []float64{0}
		series.Style = chart.Style{
			StrokeColor: chart.ColorTransparent,
			StrokeWidth: chart.Disabled,
			DotWidth:    chart.Disabled,
		}
	}

	graph := chart.Chart{
		Title:      p.Title,
		Width:      p.Width,
		Height:     p.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10}},
		XAxis: chart.XAxis{
			Name:           p.XLabel,
			ValueFormatter: p.XFormatter,
			Range:          paddedRange(series.XValues),
		},
		YAxis: chart.YAxis{
			Name:  p.YLabel,
			Range: paddedRange(series.YValues),
		},
		Series: []chart.Series{series},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render %q: %w", p.Title, err)
	}
	return nil
}

// dropMissing removes points where either coordinate is NaN.
func dropMissing(xs, ys []float64) ([]float64, []float64) {
	n := min(len(xs), len(ys))
	outX := make([]float64, 0, n)
	outY := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		outX = append(outX, xs[i])
		outY = append(outY, ys[i])
	}
	return outX, outY
}

// paddedRange spans values with a small margin. go-chart rejects ranges with
// zero width, so a single distinct value is widened by one unit each side.
func paddedRange(values []float64) *chart.ContinuousRange {
	if len(values) == 0 {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	pad := (hi - lo) * 0.02
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// barRange starts bars at zero and leaves headroom above the tallest one.
func barRange(bars []chart.Value) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, b := range bars {
		lo = math.Min(lo, b.Value)
		hi = math.Max(hi, b.Value)
	}
	if hi == lo {
		hi = lo + 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi * 1.05}
}
