package mathutil

// Cubic polynomial derivative factors
const (
	derivSquareFactor = 2.0 // d/dt c·t² = 2c·t
	derivCubeFactor   = 3.0 // d/dt d·t³ = 3d·t²
	secondCubeFactor  = 6.0 // d²/dt² d·t³ = 6d·t
)

// Grid construction constants
const (
	// gridEpsilon absorbs rounding when (hi-lo)/step lands just below an integer,
	// so that hi itself is included when it sits on the grid.
	gridEpsilon = 1e-9

	// minSpanPoints is the smallest length floats.Span accepts.
	minSpanPoints = 2
)
