// Package simdops provides generic SIMD operations for float32 and float64 types.
// Spline evaluation itself is scalar; these kernels cover the vector work
// around it: summing chord lengths, scaling parameter ramps and interleaving
// resampled channels.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
type Ops[F Float] struct {
	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)

	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []F)
}

var (
	ops32 = Ops[float32]{
		Sum:         f32.Sum,
		Scale:       f32.Scale,
		Interleave2: f32.Interleave2,
	}
	ops64 = Ops[float64]{
		Sum:         f64.Sum,
		Scale:       f64.Scale,
		Interleave2: f64.Interleave2,
	}
)

// For returns the Ops instance for type F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Ramp returns n positions 0, step, 2·step, ... computed with a single
// vector scale of the index sequence.
func Ramp[F Float](n int, step F) []F {
	if n <= 0 {
		return nil
	}
	idx := make([]F, n)
	for i := range idx {
		idx[i] = F(i)
	}
	For[F]().Scale(idx, idx, step)
	return idx
}

// Interleave writes channels into dst in frame order. Two channels take the
// SIMD path; any other count falls back to a scalar loop. All channels must
// have the same length and dst must hold len(channels)*len(channels[0]) values.
func Interleave[F Float](dst []F, channels [][]F) {
	switch len(channels) {
	case 0:
		return
	case 1:
		copy(dst, channels[0])
		return
	case 2:
		For[F]().Interleave2(dst, channels[0], channels[1])
		return
	}

	numCh := len(channels)
	for ch, data := range channels {
		for i, v := range data {
			dst[i*numCh+ch] = v
		}
	}
}

// Deinterleave splits frame-ordered samples into numCh planar channels.
func Deinterleave[F Float](src []F, numCh int) [][]F {
	if numCh <= 0 {
		return nil
	}
	frames := len(src) / numCh
	out := make([][]F, numCh)
	for ch := range out {
		out[ch] = make([]F, frames)
		for i := range frames {
			out[ch][i] = src[i*numCh+ch]
		}
	}
	return out
}
