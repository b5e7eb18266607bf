package solver

const (
	// minKnots is the smallest knot count that defines a segment.
	minKnots = 2

	// rhsScale is the factor 3 in B_i = 3[(a_{i+1}-a_i)/h_i - (a_i-a_{i-1})/h_{i-1}].
	rhsScale = 3.0

	// diagonalScale is the factor 2 in the interior diagonal 2(h_{i-1}+h_i).
	diagonalScale = 2.0

	// uniformDiagonal is the interior diagonal 2(1+1) for unit spacing.
	uniformDiagonal = 4.0

	// uniformCenterWeight is the centre weight of the second difference a_{i-1} - 2a_i + a_{i+1}.
	uniformCenterWeight = 2.0
)
