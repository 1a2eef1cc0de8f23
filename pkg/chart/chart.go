// Package chart prepares and renders the deployment charts: a straight line
// from the origin to (months, metric), drawn under a "nice" y-axis ceiling.
//
// The line is illustrative. Consumption is constant-rate, so the cumulative
// metric grows linearly with time deployed; no simulation is involved.
package chart

import (
	"math"

	"github.com/ja7ad/sizing/pkg/sizing"
	"github.com/ja7ad/sizing/pkg/util"
)

// MinCeiling is the y-axis ceiling used when the metric is zero or not finite.
const MinCeiling = 1.0

// SeriesPoints is the number of samples on each plotted line.
const SeriesPoints = 50

// XLabel is shared by every deployment chart.
const XLabel = "Time Deployed (Months)"

// Point is one plotted sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Spec is everything a renderer needs to draw one chart.
type Spec struct {
	Title  string    `json:"title"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	XMax   float64   `json:"x_max"`
	YMax   float64   `json:"y_max"`
	XTicks []float64 `json:"x_ticks"`
	YTicks []float64 `json:"y_ticks"`
	Series []Point   `json:"series"`
}

// NiceCeiling returns the first tick the default Locator places over [0, v]
// that lies strictly above v, so the plotted maximum never touches the top
// edge.
//
// When v is exactly the top tick the sequence is extended by one step. For v
// <= 0 or a non-finite v it returns MinCeiling.
func NiceCeiling(v float64) float64 {
	if !util.IsFinite(v) || v <= 0 {
		return MinCeiling
	}
	ticks := Locator{}.Ticks(0, v)
	n := len(ticks)
	if n < 2 {
		return math.Max(v*1.1, MinCeiling)
	}
	step := ticks[1] - ticks[0]
	// a tick within float noise of v counts as v itself (0.30000000000000004 for 0.3)
	for _, t := range ticks {
		if t > v+step*1e-9 {
			return t
		}
	}
	return ticks[n-1] + step
}

// Prepare lays out one metric: x spans [0, months] with integer ticks, y spans
// [0, NiceCeiling(metric)], and the series runs from (0, 0) to (months, metric).
func Prepare(metric, months float64, title, yLabel string) Spec {
	top := NiceCeiling(metric)

	xs := util.Linspace(0, months, SeriesPoints)
	ys := util.Linspace(0, metric, SeriesPoints)
	series := make([]Point, len(xs))
	for i := range xs {
		series[i] = Point{X: xs[i], Y: ys[i]}
	}

	return Spec{
		Title:  title,
		XLabel: XLabel,
		YLabel: yLabel,
		XMax:   months,
		YMax:   top,
		XTicks: within(Locator{Integer: true}.Ticks(0, months), 0, months),
		YTicks: within(Locator{}.Ticks(0, top), 0, top),
		Series: series,
	}
}

// Charts prepares the charge, battery weight and SD card charts for r.
func Charts(months int, r sizing.Result) []Spec {
	m := float64(months)
	return []Spec{
		Prepare(r.ChargeAh, m, "Charge vs Time Deployed", "Charge (Ah)"),
		Prepare(r.WeightLbs, m, "Battery Weight vs Time Deployed", "Battery Weight (lbs)"),
		Prepare(r.SDSizeGB, m, "SD Card Size vs Time Deployed", "SD Card Size (GB)"),
	}
}

// within keeps the ticks inside [lo, hi], allowing for float noise at the ends.
func within(ticks []float64, lo, hi float64) []float64 {
	eps := (hi - lo) * 1e-9
	out := ticks[:0:0]
	for _, t := range ticks {
		if t >= lo-eps && t <= hi+eps {
			out = append(out, t)
		}
	}
	return out
}
