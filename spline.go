package spline

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tphakala/go-cubic-spline/internal/mathutil"
	"github.com/tphakala/go-cubic-spline/internal/solver"
)

// Mode selects how knot x-coordinates are supplied.
type Mode int

const (
	// ModeExplicit takes strictly increasing x-coordinates alongside the values.
	// Evaluation outside [x_0, x_{n-1}] fails with ErrOutOfDomain.
	ModeExplicit Mode = iota

	// ModeUniform places knot i at x = i. Evaluation never fails: queries
	// outside [0, n-1] extrapolate the nearest boundary segment.
	ModeUniform
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeExplicit:
		return "explicit"
	case ModeUniform:
		return "uniform"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Solver selects the strategy for the second-derivative system.
type Solver int

const (
	// SolverTridiagonal runs the O(n) Thomas sweep. This is the default.
	SolverTridiagonal Solver = iota

	// SolverDense assembles the full n×n system and solves it with gonum.
	// It is O(n³) and intended for cross-checking results.
	SolverDense
)

// String returns the solver name.
func (s Solver) String() string {
	switch s {
	case SolverTridiagonal:
		return "tridiagonal"
	case SolverDense:
		return "dense"
	default:
		return fmt.Sprintf("Solver(%d)", int(s))
	}
}

// Common errors returned by spline construction and evaluation.
var (
	// ErrInvalidInput indicates knot data that cannot define a spline.
	ErrInvalidInput = errors.New("invalid spline input")

	// ErrOutOfDomain indicates an explicit-mode query outside [x_0, x_{n-1}].
	ErrOutOfDomain = errors.New("parameter outside spline domain")

	// ErrDegenerateTangent indicates a curvature query where both first derivatives vanish.
	ErrDegenerateTangent = errors.New("degenerate tangent")
)

// Config holds spline construction parameters.
type Config struct {
	// Mode selects explicit x-coordinates or implicit unit spacing.
	Mode Mode

	// X holds the knot x-coordinates in ModeExplicit. It must be strictly
	// increasing and as long as Y. It is ignored in ModeUniform.
	X []float64

	// Y holds the knot values. At least two are required.
	Y []float64

	// Solver selects the linear-system strategy. The zero value is SolverTridiagonal.
	Solver Solver
}

// Validate checks if the configuration describes a valid spline.
func (c *Config) Validate() error {
	if c.Mode != ModeExplicit && c.Mode != ModeUniform {
		return fmt.Errorf("%w: unknown mode %v", ErrInvalidInput, c.Mode)
	}

	if c.Solver != SolverTridiagonal && c.Solver != SolverDense {
		return fmt.Errorf("%w: unknown solver %v", ErrInvalidInput, c.Solver)
	}

	if len(c.Y) < minKnots {
		return fmt.Errorf("%w: need at least %d knots, got %d", ErrInvalidInput, minKnots, len(c.Y))
	}

	if err := checkFinite("y", c.Y); err != nil {
		return err
	}

	if c.Mode == ModeUniform {
		return nil
	}

	if len(c.X) != len(c.Y) {
		return fmt.Errorf("%w: x has %d values, y has %d", ErrInvalidInput, len(c.X), len(c.Y))
	}

	if err := checkFinite("x", c.X); err != nil {
		return err
	}

	for i := 1; i < len(c.X); i++ {
		if c.X[i] <= c.X[i-1] {
			return fmt.Errorf("%w: x not strictly increasing at index %d (%g <= %g)",
				ErrInvalidInput, i, c.X[i], c.X[i-1])
		}
	}

	return nil
}

func checkFinite(name string, v []float64) error {
	for i, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %s[%d] is %v", ErrInvalidInput, name, i, f)
		}
	}
	return nil
}

// Spline is a natural cubic spline through a sequence of knots.
//
// A Spline is immutable once built; all methods are safe for concurrent use.
type Spline struct {
	mode Mode
	x    []float64 // nil in ModeUniform

	// Segment i: a[i] + b[i]·dt + c[i]·dt² + d[i]·dt³.
	// All four have one entry per knot; b, c and d are zero at the last knot.
	a, b, c, d []float64
}

// Coefficients is a copy of the per-knot polynomial coefficients of a Spline.
// Entry n-1 of B, C and D is a zero placeholder.
type Coefficients struct {
	A, B, C, D []float64
}

// New builds a spline from the configuration.
// Construction either succeeds completely or returns an error and a nil spline.
// The input slices are copied.
func New(config *Config) (*Spline, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidInput)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	n := len(config.Y)
	s := &Spline{
		mode: config.Mode,
		a:    append([]float64(nil), config.Y...),
	}

	var h []float64
	if config.Mode == ModeExplicit {
		s.x = append([]float64(nil), config.X...)
		h = solver.Spacing(s.x)
	} else {
		h = solver.UnitSpacing(n)
	}

	c, err := solveSecondDerivatives(config, h, s.a)
	if err != nil {
		return nil, err
	}
	s.c = c

	s.b = make([]float64, n)
	s.d = make([]float64, n)
	for i := range n - 1 {
		s.d[i] = (s.c[i+1] - s.c[i]) / (cubicFactor * h[i])
		s.b[i] = (s.a[i+1]-s.a[i])/h[i] - h[i]*(s.c[i+1]+quadFactor*s.c[i])/cubicFactor
	}

	return s, nil
}

func solveSecondDerivatives(config *Config, h, a []float64) ([]float64, error) {
	switch {
	case config.Solver == SolverDense:
		c, err := solver.Dense(h, a)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return c, nil
	case config.Mode == ModeUniform:
		return solver.Uniform(a), nil
	default:
		return solver.Tridiagonal(h, a), nil
	}
}

// Len returns the number of knots.
func (s *Spline) Len() int {
	return len(s.a)
}

// Mode returns the knot mode the spline was built with.
func (s *Spline) Mode() Mode {
	return s.mode
}

// Domain returns the first and last knot x-coordinates.
// In ModeUniform this is [0, n-1].
func (s *Spline) Domain() (lo, hi float64) {
	if s.mode == ModeUniform {
		return 0, float64(len(s.a) - 1)
	}
	return s.x[0], s.x[len(s.x)-1]
}

// Contains reports whether t lies within Domain.
func (s *Spline) Contains(t float64) bool {
	lo, hi := s.Domain()
	return t >= lo && t <= hi
}

// Knots returns copies of the knot coordinates.
func (s *Spline) Knots() (x, y []float64) {
	y = append([]float64(nil), s.a...)
	if s.mode == ModeUniform {
		x = make([]float64, len(s.a))
		for i := range x {
			x[i] = float64(i)
		}
		return x, y
	}
	return append([]float64(nil), s.x...), y
}

// Coefficients returns a copy of the polynomial coefficients.
func (s *Spline) Coefficients() Coefficients {
	return Coefficients{
		A: append([]float64(nil), s.a...),
		B: append([]float64(nil), s.b...),
		C: append([]float64(nil), s.c...),
		D: append([]float64(nil), s.d...),
	}
}

// Position evaluates the spline at t.
func (s *Spline) Position(t float64) (float64, error) {
	i, dt, err := s.locate(t)
	if err != nil {
		return 0, err
	}
	return mathutil.Cubic(s.a[i], s.b[i], s.c[i], s.d[i], dt), nil
}

// Derivative evaluates the first derivative at t.
func (s *Spline) Derivative(t float64) (float64, error) {
	i, dt, err := s.locate(t)
	if err != nil {
		return 0, err
	}
	return mathutil.CubicDeriv(s.b[i], s.c[i], s.d[i], dt), nil
}

// SecondDerivative evaluates the second derivative at t.
func (s *Spline) SecondDerivative(t float64) (float64, error) {
	i, dt, err := s.locate(t)
	if err != nil {
		return 0, err
	}
	return mathutil.CubicSecondDeriv(s.c[i], s.d[i], dt), nil
}

// PositionAll evaluates the spline at every t in ts. It stops at the first
// failing query and returns its error.
func (s *Spline) PositionAll(ts []float64) ([]float64, error) {
	out := make([]float64, len(ts))
	for k, t := range ts {
		v, err := s.Position(t)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// locate returns the segment index and local offset for t.
func (s *Spline) locate(t float64) (int, float64, error) {
	last := len(s.a) - 2

	if s.mode == ModeUniform {
		// Out-of-range t is clamped to a boundary segment, never rejected.
		i := 0
		if t >= float64(last) {
			i = last
		} else if t > 0 {
			i = int(math.Floor(t))
		}
		return i, t - float64(i), nil
	}

	if t < s.x[0] || t > s.x[len(s.x)-1] || math.IsNaN(t) {
		return 0, 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, t, s.x[0], s.x[len(s.x)-1])
	}

	// First knot strictly greater than t, minus one; the last knot maps to the last segment.
	i := sort.Search(len(s.x), func(k int) bool { return s.x[k] > t }) - 1
	if i > last {
		i = last
	}
	return i, t - s.x[i], nil
}
