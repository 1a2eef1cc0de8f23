package chart

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/ja7ad/sizing/pkg/sizing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNiceCeiling_KnownValues(t *testing.T) {
	cases := []struct {
		v, want float64
	}{
		{25.422592005547195, 30},     // charge, 12 months at 1/h
		{1.2332499381890942, 1.4},    // Li-Po weight, same scenario
		{1.1113279488, 1.2},          // SD size, same scenario
		{440.86611255552, 450},       // charge, 24 months at 800/h
		{21.386415120068275, 22.5},   // 2.5 step
		{1778.12471808, 1800},        // SD size at the top corner
		{0.061662496909454724, 0.07}, // Li-Ion weight, 1 month at 1/h
		{7, 8},
	}
	for _, tc := range cases {
		got := NiceCeiling(tc.v)
		assert.InDelta(t, tc.want, got, 1e-9, "v=%v", tc.v)
		assert.Greater(t, got, tc.v)
	}
}

func TestNiceCeiling_ValueOnTopTickExtendsOneStep(t *testing.T) {
	cases := []struct {
		v, want float64
	}{
		{30, 35},
		{1, 1.2},
		{0.3, 0.35}, // top tick computes as 0.30000000000000004
		{0.35, 0.4},
		{0.6, 0.7},
		{0.7, 0.8},
		{1.2, 1.4},
		{1.4, 1.6},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, NiceCeiling(tc.v), 1e-9, "v=%v", tc.v)
	}
}

func TestNiceCeiling_NeverTouchesValue(t *testing.T) {
	for i := 1; i <= 2000; i++ {
		v := float64(i) / 100
		c := NiceCeiling(v)
		ticks := Locator{}.Ticks(0, v)
		require.GreaterOrEqual(t, len(ticks), 2)
		assert.Greater(t, c-v, 1e-9*v, "v=%v ceiling=%v", v, c)
		assert.LessOrEqual(t, c, v+(ticks[1]-ticks[0])+1e-9, "v=%v", v)
	}
}

func TestNiceCeiling_Degenerate(t *testing.T) {
	for _, v := range []float64{0, -0.0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		got := NiceCeiling(v)
		assert.Equal(t, MinCeiling, got, "v=%v", v)
	}
	// tiny but positive inputs still get a ceiling above them
	for _, v := range []float64{1e-12, 1e-300} {
		assert.Greater(t, NiceCeiling(v), v)
	}
}

func TestNiceCeiling_OnEvenTickSequenceFromZero(t *testing.T) {
	for v := 0.001; v < 1e5; v *= 1.37 {
		c := NiceCeiling(v)
		require.Greater(t, c, v, "v=%v", v)

		ticks := Locator{}.Ticks(0, v)
		require.GreaterOrEqual(t, len(ticks), 2, "v=%v", v)
		assert.Equal(t, 0.0, ticks[0], "v=%v", v)
		step := ticks[1] - ticks[0]

		k := c / step
		assert.InDelta(t, math.Round(k), k, 1e-6, "v=%v c=%v step=%v", v, c, step)
		assert.LessOrEqual(t, c, v+step+1e-9, "smallest tick above v, v=%v", v)
	}
}

func TestLocator_IntegerTicks(t *testing.T) {
	cases := []struct {
		months float64
		want   []float64
	}{
		{1, []float64{0, 1}},
		{12, []float64{0, 2, 4, 6, 8, 10, 12}},
		{24, []float64{0, 5, 10, 15, 20, 25}},
	}
	for _, tc := range cases {
		got := Locator{Integer: true}.Ticks(0, tc.months)
		assert.Equal(t, tc.want, got, "months=%v", tc.months)
	}
}

func TestLocator_AtMostNBinsPlusTwo(t *testing.T) {
	for _, v := range []float64{0.3, 3, 17, 99, 123456} {
		ticks := Locator{}.Ticks(0, v)
		assert.LessOrEqual(t, len(ticks), DefaultNBins+2, "v=%v", v)
		for i := 2; i < len(ticks); i++ {
			assert.InDelta(t, ticks[1]-ticks[0], ticks[i]-ticks[i-1], 1e-9)
		}
	}
}

func TestLocator_FarFromZeroUsesOffset(t *testing.T) {
	ticks := Locator{}.Ticks(1000, 1001)
	require.NotEmpty(t, ticks)
	assert.LessOrEqual(t, ticks[0], 1000.0)
	assert.GreaterOrEqual(t, ticks[len(ticks)-1], 1001.0)
}

func TestPrepare_ChargeChart(t *testing.T) {
	s := Prepare(25.422592005547195, 12, "Charge vs Time Deployed", "Charge (Ah)")

	assert.Equal(t, "Charge vs Time Deployed", s.Title)
	assert.Equal(t, XLabel, s.XLabel)
	assert.Equal(t, "Charge (Ah)", s.YLabel)
	assert.Equal(t, 12.0, s.XMax)
	assert.Equal(t, 30.0, s.YMax)
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10, 12}, s.XTicks)
	assert.Equal(t, []float64{0, 5, 10, 15, 20, 25, 30}, s.YTicks)

	require.Len(t, s.Series, SeriesPoints)
	assert.Equal(t, Point{0, 0}, s.Series[0])
	assert.Equal(t, Point{12, 25.422592005547195}, s.Series[SeriesPoints-1])
	for _, p := range s.Series {
		assert.InDelta(t, 25.422592005547195/12*p.X, p.Y, 1e-9)
		assert.Less(t, p.Y, s.YMax)
	}
}

func TestCharts_ThreeMetrics(t *testing.T) {
	in := sizing.Input{Months: 12, InferencesPerHour: 1, Battery: sizing.LiPo}
	res, err := sizing.Calculate(in)
	require.NoError(t, err)

	specs := Charts(in.Months, res)
	require.Len(t, specs, 3)

	titles := []string{"Charge vs Time Deployed", "Battery Weight vs Time Deployed", "SD Card Size vs Time Deployed"}
	metrics := []float64{res.ChargeAh, res.WeightLbs, res.SDSizeGB}
	for i, s := range specs {
		assert.Equal(t, titles[i], s.Title)
		assert.Equal(t, XLabel, s.XLabel)
		assert.Greater(t, s.YMax, metrics[i])
		assert.InDelta(t, metrics[i], s.Series[len(s.Series)-1].Y, 1e-12)
		t.Logf("%-32s y_max=%v ticks=%v", s.Title, s.YMax, s.YTicks)
	}
}

func TestSVG_Render(t *testing.T) {
	s := Prepare(1.2332499381890942, 12, "Battery Weight vs Time Deployed", "Battery Weight (lbs)")

	var buf bytes.Buffer
	require.NoError(t, SVG{}.Render(&buf, s))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "Battery Weight vs Time Deployed")
	assert.Contains(t, out, XLabel)
	assert.Contains(t, out, "Battery Weight (lbs)")
	assert.Contains(t, out, ">1.4</text>", "top tick label without float noise")
	assert.Contains(t, out, ">12</text>", "last month tick")
	assert.NotContains(t, out, "1.4000000000000001")
}

func TestSVG_RenderEveryChart(t *testing.T) {
	res, err := sizing.Calculate(sizing.Input{Months: 24, InferencesPerHour: 800, Battery: sizing.LiIon})
	require.NoError(t, err)

	var r Renderer = SVG{Width: 800, Height: 500}
	for _, s := range Charts(24, res) {
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, s), s.Title)
		assert.Contains(t, buf.String(), s.Title)
	}
}

func TestSVG_RenderEmpty(t *testing.T) {
	var r Renderer = SVG{Width: 300, Height: 200}
	require.ErrorIs(t, r.Render(&bytes.Buffer{}, Spec{}), ErrEmptySpec)
}

func TestFormatTick(t *testing.T) {
	assert.Equal(t, "1.4", FormatTick(1.4000000000000001))
	assert.Equal(t, "0", FormatTick(-0.0))
	assert.Equal(t, "22.5", FormatTick(22.5))
	assert.Equal(t, "1800", FormatTick(1800))
}
