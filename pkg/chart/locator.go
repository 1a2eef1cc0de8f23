package chart

import (
	"math"

	"github.com/ja7ad/sizing/pkg/util"
)

// DefaultNBins is the bin count used when no axis size is known.
const DefaultNBins = 9

var defaultSteps = []float64{1, 2, 2.5, 5, 10}

// Locator picks at most NBins+1 evenly spaced "nice" ticks covering a range.
// Tick spacing is one of Steps scaled by a power of ten.
//
// The zero value is ready to use: 9 bins, steps 1, 2, 2.5, 5, 10 and at least
// two visible ticks.
type Locator struct {
	NBins    int       // 0 = DefaultNBins
	Steps    []float64 // ascending in [1, 10], 0 = defaultSteps
	Integer  bool      // only integer spacing
	MinTicks int       // 0 = 2
}

func (l Locator) nbins() int {
	if l.NBins > 0 {
		return l.NBins
	}
	return DefaultNBins
}

func (l Locator) minTicks() int {
	if l.MinTicks > 0 {
		return l.MinTicks
	}
	return 2
}

// extendedSteps spans one decade either side: 0.1*steps[:-1], steps, 10*steps[1].
func (l Locator) extendedSteps() []float64 {
	steps := l.Steps
	if len(steps) == 0 {
		steps = defaultSteps
	}
	out := make([]float64, 0, 2*len(steps))
	for _, s := range steps[:len(steps)-1] {
		out = append(out, 0.1*s)
	}
	out = append(out, steps...)
	if len(steps) > 1 {
		out = append(out, 10*steps[1])
	}
	return out
}

// Ticks returns the candidate tick positions for [vmin, vmax]. The first and
// last tick may fall outside the range.
func (l Locator) Ticks(vmin, vmax float64) []float64 {
	vmin, vmax = nonsingular(vmin, vmax, 1e-13, 1e-14)
	return l.rawTicks(vmin, vmax)
}

func (l Locator) rawTicks(vmin, vmax float64) []float64 {
	nbins := l.nbins()
	scale, offset := scaleRange(vmin, vmax, nbins)
	lo, hi := vmin-offset, vmax-offset

	var steps []float64
	for _, s := range l.extendedSteps() {
		s *= scale
		if l.Integer && s >= 1 && math.Abs(s-math.Round(s)) >= 0.001 {
			continue
		}
		steps = append(steps, s)
	}

	rawStep := (hi - lo) / float64(nbins)
	istep := len(steps) - 1
	for i, s := range steps {
		if s >= rawStep {
			istep = i
			break
		}
	}

	var ticks []float64
	// Start at the smallest step above the raw step and walk back through
	// smaller steps until enough ticks land inside the range.
	for i := istep; i >= 0; i-- {
		step := steps[i]
		if l.Integer && math.Floor(hi)-math.Ceil(lo) >= float64(l.minTicks()-1) {
			step = math.Max(1, step)
		}
		best := util.FloorDiv(lo, step) * step
		e := edge{step: step, offset: math.Abs(offset)}
		low := e.le(lo - best)
		high := e.ge(hi - best)

		ticks = ticks[:0]
		visible := 0
		for n := low; n <= high; n++ {
			t := n*step + best
			ticks = append(ticks, t)
			if t >= lo && t <= hi {
				visible++
			}
		}
		if visible >= l.minTicks() {
			break
		}
	}
	for i := range ticks {
		ticks[i] += offset
	}
	return ticks
}

// scaleRange returns the power-of-ten bin size for n bins over the range
// and an offset when the range is far from zero relative to its width.
func scaleRange(vmin, vmax float64, n int) (scale, offset float64) {
	const threshold = 100
	dv := math.Abs(vmax - vmin)
	meanv := (vmax + vmin) / 2
	if math.Abs(meanv)/dv >= threshold {
		offset = math.Copysign(math.Pow(10, math.Floor(math.Log10(math.Abs(meanv)))), meanv)
	}
	scale = math.Pow(10, math.Floor(math.Log10(dv/float64(n))))
	return scale, offset
}

const smallestNormal = 0x1p-1022

// nonsingular widens empty or near-empty ranges so that a step can be found.
func nonsingular(vmin, vmax, expander, tiny float64) (float64, float64) {
	if !util.IsFinite(vmin) || !util.IsFinite(vmax) {
		return -expander, expander
	}
	if vmax < vmin {
		vmin, vmax = vmax, vmin
	}
	maxabs := math.Max(math.Abs(vmin), math.Abs(vmax))
	switch {
	case maxabs < (1e6/tiny)*smallestNormal:
		vmin, vmax = -expander, expander
	case vmax-vmin <= maxabs*tiny:
		if vmax == 0 && vmin == 0 {
			vmin, vmax = -expander, expander
		} else {
			vmin -= expander * math.Abs(vmin)
			vmax += expander * math.Abs(vmax)
		}
	}
	return vmin, vmax
}

// edge counts whole steps to a range edge, tolerating float noise.
type edge struct {
	step, offset float64
}

func (e edge) closeTo(ms, target float64) bool {
	tol := 1e-10
	if e.offset > 0 {
		digits := math.Log10(e.offset / e.step)
		tol = math.Min(0.4999, math.Max(1e-10, math.Pow(10, digits-12)))
	}
	return math.Abs(ms-target) < tol
}

// le is the largest n with n*step <= x.
func (e edge) le(x float64) float64 {
	d, m := util.DivMod(x, e.step)
	if e.closeTo(m/e.step, 1) {
		return d + 1
	}
	return d
}

// ge is the smallest n with n*step >= x.
func (e edge) ge(x float64) float64 {
	d, m := util.DivMod(x, e.step)
	if e.closeTo(m/e.step, 0) {
		return d
	}
	return d + 1
}
