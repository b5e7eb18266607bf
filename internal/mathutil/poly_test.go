package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-cubic-spline/internal/testutil"
)

// TestCubic tests Horner evaluation against the expanded polynomial.
func TestCubic(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d float64
		dt         float64
	}{
		{"Zero offset", 2.7, 1.2, -0.4, 0.1, 0},
		{"Unit offset", 2.7, 1.2, -0.4, 0.1, 1},
		{"Negative offset", 1, -2, 3, -4, -0.5},
		{"Large offset", 0.5, 0.25, 0.125, 0.0625, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.a + tt.b*tt.dt + tt.c*tt.dt*tt.dt + tt.d*math.Pow(tt.dt, 3)
			assert.InDelta(t, want, Cubic(tt.a, tt.b, tt.c, tt.d, tt.dt), testutil.DefaultTolerance)

			wantD := tt.b + 2*tt.c*tt.dt + 3*tt.d*tt.dt*tt.dt
			assert.InDelta(t, wantD, CubicDeriv(tt.b, tt.c, tt.d, tt.dt), testutil.DefaultTolerance)

			wantDD := 2*tt.c + 6*tt.d*tt.dt
			assert.InDelta(t, wantDD, CubicSecondDeriv(tt.c, tt.d, tt.dt), testutil.DefaultTolerance)
		})
	}
}

// TestCubicDeriv_FiniteDifference tests the derivative against a central difference.
func TestCubicDeriv_FiniteDifference(t *testing.T) {
	const h = 1e-6
	a, b, c, d := 1.0, -0.3, 0.7, -0.2
	for dt := -1.0; dt <= 2.0; dt += 0.25 {
		approx := (Cubic(a, b, c, d, dt+h) - Cubic(a, b, c, d, dt-h)) / (2 * h)
		assert.InDelta(t, approx, CubicDeriv(b, c, d, dt), 1e-6, "dt=%v", dt)
	}
}

// TestChordLengths tests Euclidean segment lengths.
func TestChordLengths(t *testing.T) {
	ds := ChordLengths([]float64{0, 3, 3}, []float64{0, 4, 5})
	testutil.AssertSlicesInDelta(t, []float64{5, 1}, ds, testutil.DefaultTolerance)
	assert.Nil(t, ChordLengths([]float64{1}, []float64{1}))
}

// TestCumulative tests the running distance with a leading zero.
func TestCumulative(t *testing.T) {
	s := Cumulative([]float64{5, 1, 2.5})
	testutil.AssertSlicesInDelta(t, []float64{0, 5, 6, 8.5}, s, testutil.DefaultTolerance)
	assert.Equal(t, []float64{0}, Cumulative(nil))
}

// TestGrid tests parameter grids including the inclusive upper end.
func TestGrid(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   float64
		step     float64
		expected []float64
	}{
		{"Inclusive end", 0, 1, 0.25, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"Exclusive end", 0, 1, 0.3, []float64{0, 0.3, 0.6, 0.9}},
		{"Single point", 2, 2, 0.1, []float64{2}},
		{"Step larger than span", 0, 1, 5, []float64{0}},
		{"Negative start", -2.5, 7.5, 2.5, []float64{-2.5, 0, 2.5, 5, 7.5}},
		{"Tenths", 0, 0.3, 0.1, []float64{0, 0.1, 0.2, 0.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertSlicesInDelta(t, tt.expected, Grid(tt.lo, tt.hi, tt.step), 1e-12)
		})
	}
}

// TestGrid_Invalid tests that empty or reversed ranges yield no points.
func TestGrid_Invalid(t *testing.T) {
	assert.Nil(t, Grid(1, 0, 0.1))
	assert.Nil(t, Grid(0, 1, 0))
	assert.Nil(t, Grid(0, 1, -1))
	assert.Equal(t, 0, GridCount(0, 1, 0))
}
