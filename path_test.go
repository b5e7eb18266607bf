package spline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-cubic-spline/internal/testutil"
)

// figureEight returns n+1 points on a lemniscate-like loop, closing back on
// the first point.
func figureEight(n int) (x, y []float64) {
	x = make([]float64, n+1)
	y = make([]float64, n+1)
	for i := range n + 1 {
		th := 2 * math.Pi * float64(i) / float64(n)
		x[i] = math.Cos(th)
		y[i] = math.Sin(2*th) / 2
	}
	return x, y
}

// arc returns n points on a circle of radius r from angle 0 to sweep.
func arc(n int, r, sweep float64) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range n {
		th := sweep * float64(i) / float64(n-1)
		x[i] = r * math.Cos(th)
		y[i] = r * math.Sin(th)
	}
	return x, y
}

// TestScenarioC tests yaw range and curvature sign on a closed loop.
func TestScenarioC(t *testing.T) {
	x, y := figureEight(24)

	builders := map[string]func(x, y []float64) (*Path, error){
		"uniform":    NewUniformPath,
		"arc length": NewArcLengthPath,
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			p, err := build(x, y)
			require.NoError(t, err)

			lo, hi := p.Domain()
			var positive, negative int
			for k := range 500 {
				s := lo + (hi-lo)*float64(k)/499

				yaw, err := p.Yaw(s)
				require.NoError(t, err)
				assert.Greater(t, yaw, -math.Pi, "s=%v", s)
				assert.LessOrEqual(t, yaw, math.Pi, "s=%v", s)

				k1, err := p.Curvature(s)
				require.NoError(t, err)

				dx, _ := p.X().Derivative(s)
				dy, _ := p.Y().Derivative(s)
				ddx, _ := p.X().SecondDerivative(s)
				ddy, _ := p.Y().SecondDerivative(s)
				cross := ddy*dx - ddx*dy

				// The sign follows the cross product exactly.
				assert.Equal(t, math.Signbit(cross), math.Signbit(k1), "s=%v", s)

				switch {
				case k1 > 0:
					positive++
				case k1 < 0:
					negative++
				}
			}

			assert.Positive(t, positive, "left turns expected on one lobe")
			assert.Positive(t, negative, "right turns expected on the other lobe")
		})
	}
}

// TestCircle_Curvature tests both curvature conventions on a circular arc.
func TestCircle_Curvature(t *testing.T) {
	const radius = 5.0
	x, y := arc(37, radius, math.Pi)

	p, err := NewArcLengthPath(x, y)
	require.NoError(t, err)

	_, hi := p.Domain()
	for s := hi / 3; s <= 2*hi/3; s += hi / 30 {
		geo, err := p.GeometricCurvature(s)
		require.NoError(t, err)
		testutil.AssertRelativeError(t, 1/radius, geo, 0.01)

		k, err := p.Curvature(s)
		require.NoError(t, err)
		// Chord-length parameterization keeps |r'(s)| close to one.
		testutil.AssertRelativeError(t, 1/radius, k, 0.02)
	}
}

// TestCurvature_SpeedScaling tests that the exponent-one curvature equals the
// geometric curvature times the parametric speed.
func TestCurvature_SpeedScaling(t *testing.T) {
	x, y := arc(12, 3, 1.5*math.Pi)
	p, err := NewUniformPath(x, y)
	require.NoError(t, err)

	for s := 0.25; s < 11; s += 0.5 {
		k, err := p.Curvature(s)
		require.NoError(t, err)
		geo, err := p.GeometricCurvature(s)
		require.NoError(t, err)

		dx, _ := p.X().Derivative(s)
		dy, _ := p.Y().Derivative(s)
		assert.InDelta(t, geo*math.Hypot(dx, dy), k, 1e-9, "s=%v", s)
	}
}

// TestCurvature_DegenerateTangent tests the stationary-point error.
func TestCurvature_DegenerateTangent(t *testing.T) {
	p, err := NewUniformPath([]float64{2, 2}, []float64{-1, -1})
	require.NoError(t, err)

	k, err := p.Curvature(0.5)
	require.ErrorIs(t, err, ErrDegenerateTangent)
	assert.True(t, math.IsNaN(k))

	k, err = p.GeometricCurvature(0.5)
	require.ErrorIs(t, err, ErrDegenerateTangent)
	assert.True(t, math.IsNaN(k))

	_, err = p.Pose(0.5)
	require.ErrorIs(t, err, ErrDegenerateTangent)

	// Yaw stays defined.
	yaw, err := p.Yaw(0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, yaw)

	_, err = p.Sample(0.1)
	require.ErrorIs(t, err, ErrDegenerateTangent)
}

// TestYaw tests headings along straight lines.
func TestYaw(t *testing.T) {
	tests := []struct {
		name     string
		x, y     []float64
		expected float64
	}{
		{"East", []float64{0, 1, 2}, []float64{0, 0, 0}, 0},
		{"North", []float64{0, 0, 0}, []float64{0, 1, 2}, math.Pi / 2},
		{"West", []float64{2, 1, 0}, []float64{0, 0, 0}, math.Pi},
		{"South west", []float64{0, -1, -2}, []float64{0, -1, -2}, -3 * math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewArcLengthPath(tt.x, tt.y)
			require.NoError(t, err)
			_, hi := p.Domain()
			for _, s := range []float64{0, hi / 2, hi} {
				yaw, err := p.Yaw(s)
				require.NoError(t, err)
				assert.InDelta(t, tt.expected, yaw, testutil.DefaultTolerance)

				k, err := p.Curvature(s)
				require.NoError(t, err)
				assert.InDelta(t, 0.0, k, testutil.DefaultTolerance)
			}
		})
	}
}

// TestHeading_NegativeZero tests that -π folds onto π.
func TestHeading_NegativeZero(t *testing.T) {
	assert.Equal(t, math.Pi, heading(-1, math.Copysign(0, -1)))
	assert.Equal(t, math.Pi, heading(-1, 0))
	assert.InDelta(t, -math.Pi/2, heading(0, -1), testutil.DefaultTolerance)
}

// TestArcLengthPath tests the chord-length parameterization.
func TestArcLengthPath(t *testing.T) {
	p, err := NewArcLengthPath([]float64{0, 3, 3}, []float64{0, 4, 5})
	require.NoError(t, err)

	lo, hi := p.Domain()
	assert.Equal(t, 0.0, lo)
	assert.InDelta(t, 6.0, hi, testutil.DefaultTolerance)
	assert.InDelta(t, 6.0, p.Length(), testutil.DefaultTolerance)
	assert.Equal(t, 3, p.Len())

	x, y, err := p.Position(5)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, x, testutil.DefaultTolerance)
	assert.InDelta(t, 4.0, y, testutil.DefaultTolerance)

	_, _, err = p.Position(-0.1)
	require.ErrorIs(t, err, ErrOutOfDomain)
	_, err = p.Yaw(6.1)
	require.ErrorIs(t, err, ErrOutOfDomain)
	_, err = p.Curvature(6.1)
	require.ErrorIs(t, err, ErrOutOfDomain)
}

// TestPathConstruction_Invalid tests path construction failures.
func TestPathConstruction_Invalid(t *testing.T) {
	three, err := NewUniform([]float64{1, 2, 3})
	require.NoError(t, err)
	four, err := NewUniform([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	_, err = NewPath(three, four)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewPath(nil, four)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewUniformPath([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewUniformPath([]float64{1}, []float64{1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewArcLengthPath([]float64{0, 1, 1}, []float64{0, 0, 0})
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewArcLengthPath([]float64{0}, []float64{0})
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewArcLengthPath([]float64{0, 1}, []float64{0, 1, 2})
	require.ErrorIs(t, err, ErrInvalidInput)
}

// TestPath_MixedModes tests a path whose splines use different knot modes.
func TestPath_MixedModes(t *testing.T) {
	sx, err := NewUniform([]float64{0, 1, 2, 3})
	require.NoError(t, err)
	sy, err := NewExplicit([]float64{0.5, 1, 2, 2.5}, []float64{0, 1, 0, 1})
	require.NoError(t, err)

	p, err := NewPath(sx, sy)
	require.NoError(t, err)

	lo, hi := p.Domain()
	assert.Equal(t, 0.5, lo)
	assert.Equal(t, 2.5, hi)

	_, _, err = p.Position(0.25)
	require.ErrorIs(t, err, ErrOutOfDomain, "the explicit spline bounds the query")
}

// TestSample tests pose sampling over the path domain.
func TestSample(t *testing.T) {
	p, err := NewArcLengthPath([]float64{0, 1, 2, 3, 4}, []float64{0, 1, 0, -1, 0})
	require.NoError(t, err)
	_, hi := p.Domain()

	poses, err := p.Sample(hi / 10)
	require.NoError(t, err)
	require.Len(t, poses, 11)
	assert.Equal(t, 0.0, poses[0].S)
	assert.InDelta(t, hi, poses[10].S, 1e-9)
	assert.InDelta(t, 4.0, poses[10].X, 1e-9)
	assert.InDelta(t, 0.0, poses[10].Y, 1e-9)

	s := make([]float64, len(poses))
	for i, pose := range poses {
		s[i] = pose.S
		testutil.AssertInRange(t, pose.Yaw, -math.Pi, math.Pi)
	}
	testutil.AssertStrictlyIncreasing(t, s)

	for _, step := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := p.Sample(step)
		require.ErrorIs(t, err, ErrInvalidInput, "step=%v", step)
	}
}

// TestUniformPath_Course tests index-parameterized sampling on a smooth course,
// including extrapolation just past the last point.
func TestUniformPath_Course(t *testing.T) {
	x, y := arc(10, 10, math.Pi/2)
	p, err := NewUniformPath(x, y)
	require.NoError(t, err)

	poses, err := p.Sample(0.1)
	require.NoError(t, err)
	assert.Len(t, poses, 91)

	// A counter-clockwise arc turns left everywhere away from the free ends.
	for _, pose := range poses[10:80] {
		assert.Positive(t, pose.Curvature, "s=%v", pose.S)
	}

	// Past the end the last segment is extrapolated without error.
	_, _, err = p.Position(9.5)
	require.NoError(t, err)
	_, err = p.Curvature(-0.5)
	require.NoError(t, err)
}
