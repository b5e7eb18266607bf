package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// System assembles the full n×n matrix A and right-hand side B of the natural
// spline system. The boundary rows are identity rows with a zero right-hand
// side, which encodes c_0 = c_{n-1} = 0.
func System(h, a []float64) (*mat.Dense, *mat.VecDense) {
	n := len(a)
	A := mat.NewDense(n, n, nil)
	B := mat.NewVecDense(n, nil)

	A.Set(0, 0, 1)
	A.Set(n-1, n-1, 1)
	for i := 1; i < n-1; i++ {
		A.Set(i, i-1, h[i-1])
		A.Set(i, i, diagonalScale*(h[i-1]+h[i]))
		A.Set(i, i+1, h[i])
		B.SetVec(i, RHS(h, a, i))
	}

	return A, B
}

// Dense solves the natural spline system with a general LU solve.
// It is O(n³) and exists to cross-check [Tridiagonal].
func Dense(h, a []float64) ([]float64, error) {
	if err := checkShape(h, a); err != nil {
		return nil, err
	}

	A, B := System(h, a)

	var c mat.VecDense
	if err := c.SolveVec(A, B); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingular, err)
	}

	return mat.Col(nil, 0, &c), nil
}
