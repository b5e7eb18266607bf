// Package spline provides natural cubic spline interpolation in pure Go.
//
// A spline passes exactly through every knot, has continuous first and second
// derivatives at interior knots, and zero second derivative at both ends.
// Planar paths combine two splines to give heading and curvature, which makes
// the package suitable for turning sparse waypoints into smooth trajectories
// or for resampling uniformly sampled signals.
//
// # Quick Start
//
// Fit through explicit, possibly non-uniform, x-coordinates:
//
//	s, err := spline.NewExplicit(
//	    []float64{-2.5, 0, 2.5, 5, 7.5},
//	    []float64{0.7, -6, 5, 6.5, 0},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, err := s.Position(1.0)
//	if errors.Is(err, spline.ErrOutOfDomain) {
//	    // t was outside [x_0, x_{n-1}]
//	}
//
// Fit through values at unit spacing (x = 0, 1, 2, ...):
//
//	s, err := spline.NewUniform([]float64{2.7, 6, 5, 6.5})
//
// # Knot Modes
//
//   - [ModeExplicit]: knots are (x_i, y_i) with strictly increasing x. Queries
//     outside the knot range fail with [ErrOutOfDomain].
//   - [ModeUniform]: knots are y_i at x_i = i. Queries never fail; a t below
//     zero evaluates the first segment's polynomial and a t at or beyond n-1
//     evaluates the last segment's polynomial. Arc-length style callers rely
//     on this extrapolation at the path ends.
//
// # Solvers
//
// The second-derivative coefficients come from a tridiagonal system. The
// default [SolverTridiagonal] runs an O(n) Thomas sweep; [SolverDense]
// assembles the full matrix and solves it with gonum, which is useful for
// verifying results on small inputs.
//
// # Paths
//
// [Path] evaluates two splines at the same parameter s and derives yaw and
// curvature from their derivatives. [NewArcLengthPath] parameterizes by
// cumulative chord length; [NewUniformPath] by sample index.
//
// [Path.Curvature] divides by (dx² + dy²) rather than (dx² + dy²)^{3/2};
// [Path.GeometricCurvature] provides the standard definition. Both report
// [ErrDegenerateTangent] where the tangent vanishes.
//
// # Thread Safety
//
// [Spline] and [Path] values are immutable after construction. Any number of
// goroutines may evaluate the same instance concurrently without locking.
package spline
