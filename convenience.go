package spline

// NewExplicit builds a spline through (x[i], y[i]) with the tridiagonal solver.
// x must be strictly increasing.
func NewExplicit(x, y []float64) (*Spline, error) {
	return New(&Config{
		Mode: ModeExplicit,
		X:    x,
		Y:    y,
	})
}

// NewUniform builds a spline through y[i] placed at x = i.
// Evaluation of the result never fails; see ModeUniform.
func NewUniform(y []float64) (*Spline, error) {
	return New(&Config{
		Mode: ModeUniform,
		Y:    y,
	})
}

// Interpolate is a convenience function for one-shot evaluation: it fits an
// explicit-mode spline through (x, y) and evaluates it at every t in ts.
func Interpolate(x, y, ts []float64) ([]float64, error) {
	s, err := NewExplicit(x, y)
	if err != nil {
		return nil, err
	}
	return s.PositionAll(ts)
}
