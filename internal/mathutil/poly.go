// Package mathutil provides the polynomial and geometry helpers shared by the spline types.
package mathutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Cubic evaluates a + b·dt + c·dt² + d·dt³ in Horner form.
func Cubic(a, b, c, d, dt float64) float64 {
	return a + (b+(c+d*dt)*dt)*dt
}

// CubicDeriv evaluates the first derivative b + 2c·dt + 3d·dt².
func CubicDeriv(b, c, d, dt float64) float64 {
	return b + (derivSquareFactor*c+derivCubeFactor*d*dt)*dt
}

// CubicSecondDeriv evaluates the second derivative 2c + 6d·dt.
func CubicSecondDeriv(c, d, dt float64) float64 {
	return derivSquareFactor*c + secondCubeFactor*d*dt
}

// ChordLengths returns the Euclidean distance between consecutive points.
// x and y must have equal length; the result has one element less.
func ChordLengths(x, y []float64) []float64 {
	if len(x) < 2 {
		return nil
	}
	ds := make([]float64, len(x)-1)
	for i := range ds {
		ds[i] = math.Hypot(x[i+1]-x[i], y[i+1]-y[i])
	}
	return ds
}

// Cumulative returns the running sum of ds prefixed with zero, so that
// out[i] is the distance travelled up to point i.
func Cumulative(ds []float64) []float64 {
	out := make([]float64, len(ds)+1)
	floats.CumSum(out[1:], ds)
	return out
}

// GridCount returns how many points lo, lo+step, ... fit into [lo, hi].
func GridCount(lo, hi, step float64) int {
	if hi < lo || step <= 0 {
		return 0
	}
	return int(math.Floor((hi-lo)/step+gridEpsilon)) + 1
}

// Grid returns lo, lo+step, ... up to hi. The points are generated by
// linear spacing rather than repeated addition, so no error accumulates.
func Grid(lo, hi, step float64) []float64 {
	n := GridCount(lo, hi, step)
	switch {
	case n == 0:
		return nil
	case n < minSpanPoints:
		return []float64{lo}
	}
	// Rounding in (n-1)·step must not push the last point past hi.
	end := math.Min(lo+float64(n-1)*step, hi)
	return floats.Span(make([]float64, n), lo, end)
}
