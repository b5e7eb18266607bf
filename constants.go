package spline

// Knot constants
const (
	minKnots = 2 // Smallest knot count that defines a segment
)

// Coefficient derivation constants
const (
	// cubicFactor is the 3 in d_i = (c_{i+1} - c_i) / (3h_i) and in b_i's h_i(...)/3 term.
	cubicFactor = 3.0

	// quadFactor is the 2 in b_i's (c_{i+1} + 2c_i) term.
	quadFactor = 2.0
)

// Curvature constants
const (
	// geometricExponent is the denominator power of the standard curvature definition.
	geometricExponent = 1.5
)
