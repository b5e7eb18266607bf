package resample

const (
	minSamples  = 2   // Smallest channel length that defines a spline
	maxChannels = 256 // Maximum supported channel count

	// positionEpsilon absorbs rounding in (n-1)·outRate/inRate so that an
	// exact integer result keeps its final sample.
	positionEpsilon = 1e-9
)
