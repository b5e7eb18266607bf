package spline

import (
	"fmt"
	"math"

	"github.com/tphakala/go-cubic-spline/internal/mathutil"
	"github.com/tphakala/go-cubic-spline/internal/simdops"
)

// Path is a planar curve built from two splines evaluated at a shared parameter s.
//
// Like Spline, a Path is immutable and safe for concurrent use.
type Path struct {
	sx, sy *Spline

	// chords holds the distances between consecutive input points.
	chords []float64
}

// Pose is the state of a path at one parameter value.
type Pose struct {
	S         float64 // Path parameter
	X, Y      float64 // Position
	Yaw       float64 // Heading in (-π, π]
	Curvature float64 // Signed curvature, see Path.Curvature
}

// NewPath combines two splines into a path. Both must have the same number
// of knots; their domain conventions may differ.
func NewPath(sx, sy *Spline) (*Path, error) {
	if sx == nil || sy == nil {
		return nil, fmt.Errorf("%w: nil spline", ErrInvalidInput)
	}
	if sx.Len() != sy.Len() {
		return nil, fmt.Errorf("%w: x spline has %d knots, y spline has %d", ErrInvalidInput, sx.Len(), sy.Len())
	}

	p := &Path{sx: sx, sy: sy}
	p.chords = mathutil.ChordLengths(sx.a, sy.a)
	return p, nil
}

// NewUniformPath builds a path through the points (x[i], y[i]) parameterized
// by sample index: s = i at point i. Queries outside [0, n-1] extrapolate
// the end segments.
func NewUniformPath(x, y []float64) (*Path, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: x has %d values, y has %d", ErrInvalidInput, len(x), len(y))
	}

	sx, err := NewUniform(x)
	if err != nil {
		return nil, fmt.Errorf("x spline: %w", err)
	}
	sy, err := NewUniform(y)
	if err != nil {
		return nil, fmt.Errorf("y spline: %w", err)
	}

	return NewPath(sx, sy)
}

// NewArcLengthPath builds a path through the points (x[i], y[i]) parameterized
// by cumulative chord length, so s approximates distance travelled.
// Consecutive duplicate points are rejected. Queries outside [0, Length()]
// fail with ErrOutOfDomain.
func NewArcLengthPath(x, y []float64) (*Path, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: x has %d values, y has %d", ErrInvalidInput, len(x), len(y))
	}
	if len(x) < minKnots {
		return nil, fmt.Errorf("%w: need at least %d points, got %d", ErrInvalidInput, minKnots, len(x))
	}

	chords := mathutil.ChordLengths(x, y)
	for i, ds := range chords {
		if ds == 0 {
			return nil, fmt.Errorf("%w: points %d and %d coincide", ErrInvalidInput, i, i+1)
		}
	}
	s := mathutil.Cumulative(chords)

	sx, err := NewExplicit(s, x)
	if err != nil {
		return nil, fmt.Errorf("x spline: %w", err)
	}
	sy, err := NewExplicit(s, y)
	if err != nil {
		return nil, fmt.Errorf("y spline: %w", err)
	}

	return NewPath(sx, sy)
}

// X returns the spline for the x-coordinate.
func (p *Path) X() *Spline { return p.sx }

// Y returns the spline for the y-coordinate.
func (p *Path) Y() *Spline { return p.sy }

// Len returns the number of knots.
func (p *Path) Len() int { return p.sx.Len() }

// Length returns the total length of the polygon through the input points.
// For an arc-length path this equals the upper end of Domain.
func (p *Path) Length() float64 {
	if len(p.chords) == 0 {
		return 0
	}
	return simdops.For[float64]().Sum(p.chords)
}

// Domain returns the parameter range shared by both splines.
func (p *Path) Domain() (lo, hi float64) {
	xlo, xhi := p.sx.Domain()
	ylo, yhi := p.sy.Domain()
	return math.Max(xlo, ylo), math.Min(xhi, yhi)
}

// Position returns the point at parameter s.
func (p *Path) Position(s float64) (x, y float64, err error) {
	if x, err = p.sx.Position(s); err != nil {
		return 0, 0, err
	}
	if y, err = p.sy.Position(s); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// Yaw returns the heading atan2(dy/ds, dx/ds) at s, in (-π, π].
func (p *Path) Yaw(s float64) (float64, error) {
	dx, dy, err := p.tangent(s)
	if err != nil {
		return 0, err
	}
	return heading(dx, dy), nil
}

// Curvature returns (ddy·dx - ddx·dy) / (dx² + dy²) at s.
//
// The denominator carries exponent 1, not the 3/2 of the geometric
// definition, so the value equals the geometric curvature scaled by the
// parametric speed |r'(s)|. Use GeometricCurvature for the standard quantity.
// Returns NaN and ErrDegenerateTangent where dx = dy = 0.
func (p *Path) Curvature(s float64) (float64, error) {
	num, speed2, err := p.curvatureTerms(s)
	if err != nil {
		return math.NaN(), err
	}
	return num / speed2, nil
}

// GeometricCurvature returns (ddy·dx - ddx·dy) / (dx² + dy²)^{3/2} at s,
// the reciprocal of the signed radius of curvature.
// Returns NaN and ErrDegenerateTangent where dx = dy = 0.
func (p *Path) GeometricCurvature(s float64) (float64, error) {
	num, speed2, err := p.curvatureTerms(s)
	if err != nil {
		return math.NaN(), err
	}
	return num / math.Pow(speed2, geometricExponent), nil
}

// Pose evaluates position, yaw and curvature at s.
func (p *Path) Pose(s float64) (Pose, error) {
	x, y, err := p.Position(s)
	if err != nil {
		return Pose{}, err
	}
	yaw, err := p.Yaw(s)
	if err != nil {
		return Pose{}, err
	}
	k, err := p.Curvature(s)
	if err != nil {
		return Pose{}, err
	}
	return Pose{S: s, X: x, Y: y, Yaw: yaw, Curvature: k}, nil
}

// Sample evaluates poses at lo, lo+step, ... across Domain, including the
// upper end when it falls on the grid.
func (p *Path) Sample(step float64) ([]Pose, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: step must be positive and finite, got %g", ErrInvalidInput, step)
	}

	lo, hi := p.Domain()
	grid := mathutil.Grid(lo, hi, step)
	poses := make([]Pose, 0, len(grid))
	for _, s := range grid {
		pose, err := p.Pose(s)
		if err != nil {
			return nil, err
		}
		poses = append(poses, pose)
	}
	return poses, nil
}

func (p *Path) tangent(s float64) (dx, dy float64, err error) {
	if dx, err = p.sx.Derivative(s); err != nil {
		return 0, 0, err
	}
	if dy, err = p.sy.Derivative(s); err != nil {
		return 0, 0, err
	}
	return dx, dy, nil
}

// curvatureTerms returns the cross product ddy·dx - ddx·dy and the squared speed dx² + dy².
func (p *Path) curvatureTerms(s float64) (num, speed2 float64, err error) {
	dx, dy, err := p.tangent(s)
	if err != nil {
		return 0, 0, err
	}
	ddx, err := p.sx.SecondDerivative(s)
	if err != nil {
		return 0, 0, err
	}
	ddy, err := p.sy.SecondDerivative(s)
	if err != nil {
		return 0, 0, err
	}

	speed2 = dx*dx + dy*dy
	if speed2 == 0 {
		return 0, 0, fmt.Errorf("%w: zero first derivative at s=%g", ErrDegenerateTangent, s)
	}
	return ddy*dx - ddx*dy, speed2, nil
}

// heading maps atan2 onto (-π, π]; atan2 yields -π for a negative x and
// negative-zero y.
func heading(dx, dy float64) float64 {
	yaw := math.Atan2(dy, dx)
	if yaw == -math.Pi {
		return math.Pi
	}
	return yaw
}
