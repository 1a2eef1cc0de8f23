package chart

import (
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmptySpec indicates a chart with no series to draw.
var ErrEmptySpec = errors.New("chart: empty series")

// Renderer draws one prepared chart.
type Renderer interface {
	Render(w io.Writer, s Spec) error
}

// SVG renders a line chart as a standalone SVG document through go-chart.
// Axis limits and ticks come from the Spec, never from go-chart's own ranging.
type SVG struct {
	Width  int // 0 = 640
	Height int // 0 = 420
}

var (
	lineColor = drawing.ColorFromHex("1f77b4")
	gridColor = drawing.ColorFromHex("dddddd")
)

func (r SVG) size() (w, h int) {
	w, h = r.Width, r.Height
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 420
	}
	return w, h
}

// Render implements Renderer.
func (r SVG) Render(w io.Writer, s Spec) error {
	if len(s.Series) == 0 {
		return ErrEmptySpec
	}
	width, height := r.size()

	xmax, ymax := s.XMax, s.YMax
	if xmax <= 0 {
		xmax = 1
	}
	if ymax <= 0 {
		ymax = MinCeiling
	}

	xs := make([]float64, len(s.Series))
	ys := make([]float64, len(s.Series))
	for i, p := range s.Series {
		xs[i], ys[i] = p.X, p.Y
	}

	grid := gochart.Style{StrokeColor: gridColor, StrokeWidth: 1}
	graph := gochart.Chart{
		Title:  html.EscapeString(s.Title),
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Name:           html.EscapeString(s.XLabel),
			Range:          &gochart.ContinuousRange{Min: 0, Max: xmax},
			Ticks:          ticks(s.XTicks),
			GridLines:      gridLines(s.XTicks),
			GridMajorStyle: grid,
		},
		YAxis: gochart.YAxis{
			Name:           html.EscapeString(s.YLabel),
			Range:          &gochart.ContinuousRange{Min: 0, Max: ymax},
			Ticks:          ticks(s.YTicks),
			GridLines:      gridLines(s.YTicks),
			GridMajorStyle: grid,
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    s.YLabel,
				Style:   gochart.Style{StrokeColor: lineColor, StrokeWidth: 1.5},
				XValues: xs,
				YValues: ys,
			},
		},
	}
	if err := graph.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("chart: render %q: %w", s.Title, err)
	}
	return nil
}

func ticks(vs []float64) []gochart.Tick {
	out := make([]gochart.Tick, len(vs))
	for i, v := range vs {
		out[i] = gochart.Tick{Value: v, Label: FormatTick(v)}
	}
	return out
}

func gridLines(vs []float64) []gochart.GridLine {
	out := make([]gochart.GridLine, len(vs))
	for i, v := range vs {
		out[i] = gochart.GridLine{Value: v}
	}
	return out
}

// FormatTick prints a tick value without float noise (1.4, not 1.4000000000000001).
func FormatTick(v float64) string {
	r := math.Round(v*1e9) / 1e9
	if r == 0 {
		r = 0 // no "-0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
