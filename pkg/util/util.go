package util

import (
	"math"
	"strconv"
)

// ClampInt bounds x to [lo, hi].
func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Linspace returns n evenly spaced samples over [start, stop], both ends included.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// pin the last sample, no drift
	out[n-1] = stop
	return out
}

// DivMod returns the floored quotient and the remainder with the sign of the
// divisor, so that q*d + m == x.
func DivMod(x, d float64) (q, m float64) {
	m = math.Mod(x, d)
	if m != 0 && (m < 0) != (d < 0) {
		m += d
	}
	div := (x - m) / d
	if div == 0 {
		return math.Copysign(0, x/d), m
	}
	q = math.Floor(div)
	if div-q > 0.5 {
		q++
	}
	return q, m
}

// FloorDiv is the quotient half of DivMod.
func FloorDiv(x, d float64) float64 {
	q, _ := DivMod(x, d)
	return q
}

// FmtFloat formats v with the shortest representation that round-trips.
func FmtFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// FmtInt formats v in base 10.
func FmtInt(v int) string { return strconv.Itoa(v) }
