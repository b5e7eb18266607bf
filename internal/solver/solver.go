// Package solver computes the second-derivative coefficients of natural cubic splines.
//
// Every solver returns the c coefficients of the segment polynomials
//
//	a_i + b_i*dt + c_i*dt² + d_i*dt³
//
// where c_i is half the second derivative at knot i. The natural boundary
// condition pins c_0 = c_{n-1} = 0, leaving a symmetric, strictly diagonally
// dominant tridiagonal system for the interior knots.
//
// Three strategies are provided:
//   - [Uniform]: unit-spaced knots, O(n) Thomas sweep with a running pivot
//   - [Tridiagonal]: arbitrary spacing, O(n) Thomas sweep
//   - [Dense]: arbitrary spacing, full n×n solve via gonum (reference only)
package solver

import (
	"errors"
	"fmt"
)

// ErrSingular is returned by [Dense] when the assembled system cannot be solved.
var ErrSingular = errors.New("spline system is singular")

// Uniform solves the natural spline system for knots spaced one unit apart.
//
// The forward sweep eliminates the sub-diagonal using the pivot
// w_i = 1/(4 - w_{i-1}) with w_0 = 0; back substitution then walks from the
// last interior knot to the first. The pivots live in a slice local to the call.
func Uniform(a []float64) []float64 {
	n := len(a)
	c := make([]float64, n)
	if n < minKnots {
		return c
	}

	w := make([]float64, n)
	for i := 1; i < n-1; i++ {
		c[i] = rhsScale * (a[i-1] - uniformCenterWeight*a[i] + a[i+1])
		pivot := uniformDiagonal - w[i-1]
		c[i] = (c[i] - c[i-1]) / pivot
		w[i] = 1.0 / pivot
	}

	for i := n - 2; i > 0; i-- {
		c[i] -= c[i+1] * w[i]
	}

	return c
}

// Tridiagonal solves the natural spline system for knot spacings h, where
// h[i] = x[i+1] - x[i]. len(h) must equal len(a)-1 and every h[i] must be positive.
//
// Row i (interior) reads h[i-1]*c[i-1] + 2(h[i-1]+h[i])*c[i] + h[i]*c[i+1] = B_i.
func Tridiagonal(h, a []float64) []float64 {
	n := len(a)
	c := make([]float64, n)
	if n < minKnots {
		return c
	}

	// Modified super-diagonal and right-hand side of the forward sweep.
	// Index 0 stays zero because c_0 is pinned.
	upper := make([]float64, n)
	rhs := make([]float64, n)

	for i := 1; i < n-1; i++ {
		lower := h[i-1]
		diag := diagonalScale * (h[i-1] + h[i])
		pivot := diag - lower*upper[i-1]

		upper[i] = h[i] / pivot
		rhs[i] = (RHS(h, a, i) - lower*rhs[i-1]) / pivot
	}

	for i := n - 2; i > 0; i-- {
		c[i] = rhs[i] - upper[i]*c[i+1]
	}

	return c
}

// RHS returns the right-hand side of interior row i:
// 3[(a_{i+1}-a_i)/h_i - (a_i-a_{i-1})/h_{i-1}].
func RHS(h, a []float64, i int) float64 {
	return rhsScale*(a[i+1]-a[i])/h[i] - rhsScale*(a[i]-a[i-1])/h[i-1]
}

// Spacing returns the knot spacings h[i] = x[i+1] - x[i].
func Spacing(x []float64) []float64 {
	if len(x) < minKnots {
		return nil
	}
	h := make([]float64, len(x)-1)
	for i := range h {
		h[i] = x[i+1] - x[i]
	}
	return h
}

// UnitSpacing returns n-1 spacings of exactly one.
func UnitSpacing(n int) []float64 {
	if n < minKnots {
		return nil
	}
	h := make([]float64, n-1)
	for i := range h {
		h[i] = 1
	}
	return h
}

func checkShape(h, a []float64) error {
	if len(a) < minKnots {
		return fmt.Errorf("need at least %d knots, got %d", minKnots, len(a))
	}
	if len(h) != len(a)-1 {
		return fmt.Errorf("got %d spacings for %d knots", len(h), len(a))
	}
	return nil
}
