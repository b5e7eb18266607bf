// Package resample converts uniformly sampled signals between sample rates
// by evaluating a natural cubic spline through the input samples.
//
// Output sample k sits at input position k·inRate/outRate, so the first
// output equals the first input and the output never extends past the last
// input sample. Channels are independent; multi-channel input can be
// processed in parallel.
package resample

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/remeh/sizedwaitgroup"

	spline "github.com/tphakala/go-cubic-spline"
	"github.com/tphakala/go-cubic-spline/internal/simdops"
)

// Common errors returned by the resampler.
var (
	// ErrInvalidRate indicates a non-positive or non-finite sample rate.
	ErrInvalidRate = errors.New("invalid sample rate")

	// ErrInvalidBuffer indicates malformed multi-channel input.
	ErrInvalidBuffer = errors.New("invalid sample buffer")
)

// OutputLength returns the number of output samples produced for n input samples.
func OutputLength(n int, inRate, outRate float64) int {
	if n <= 0 {
		return 0
	}
	return int(math.Floor(float64(n-1)*outRate/inRate+positionEpsilon)) + 1
}

// Signal resamples one channel from inRate to outRate.
// Fewer than two samples cannot define a spline; such input is returned as a copy.
func Signal(samples []float64, inRate, outRate float64) ([]float64, error) {
	if err := validateRates(inRate, outRate); err != nil {
		return nil, err
	}

	if len(samples) < minSamples {
		return append([]float64(nil), samples...), nil
	}

	s, err := spline.NewUniform(samples)
	if err != nil {
		return nil, fmt.Errorf("failed to fit spline: %w", err)
	}

	positions := simdops.Ramp(OutputLength(len(samples), inRate, outRate), inRate/outRate)
	last := float64(len(samples) - 1)
	for i, t := range positions {
		// Rounding may leave the final position a hair past the last sample.
		positions[i] = math.Min(t, last)
	}

	// Uniform-mode evaluation does not fail.
	out, err := s.PositionAll(positions)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Channels resamples planar multi-channel audio. All channels must have the
// same length. With parallel set, channels are processed concurrently.
func Channels(channels [][]float64, inRate, outRate float64, parallel bool) ([][]float64, error) {
	if err := validateRates(inRate, outRate); err != nil {
		return nil, err
	}
	if err := validateChannels(channels); err != nil {
		return nil, err
	}

	if parallel && len(channels) > 1 {
		return resampleParallel(channels, inRate, outRate)
	}
	return resampleSequential(channels, inRate, outRate)
}

// resampleParallel processes channels concurrently, at most GOMAXPROCS at a time.
func resampleParallel(channels [][]float64, inRate, outRate float64) ([][]float64, error) {
	out := make([][]float64, len(channels))
	wg := sizedwaitgroup.New(runtime.GOMAXPROCS(0))
	var processErr error
	var errMu sync.Mutex

	for ch := range channels {
		wg.Add()
		go func(channel int) {
			defer wg.Done()
			resampled, err := Signal(channels[channel], inRate, outRate)
			if err != nil {
				errMu.Lock()
				if processErr == nil {
					processErr = fmt.Errorf("resampling failed on channel %d: %w", channel, err)
				}
				errMu.Unlock()
				return
			}
			out[channel] = resampled
		}(ch)
	}
	wg.Wait()

	if processErr != nil {
		return nil, processErr
	}
	return out, nil
}

// resampleSequential processes channels one by one.
func resampleSequential(channels [][]float64, inRate, outRate float64) ([][]float64, error) {
	out := make([][]float64, len(channels))
	for ch := range channels {
		resampled, err := Signal(channels[ch], inRate, outRate)
		if err != nil {
			return nil, fmt.Errorf("resampling failed on channel %d: %w", ch, err)
		}
		out[ch] = resampled
	}
	return out, nil
}

func validateRates(inRate, outRate float64) error {
	for _, r := range []float64{inRate, outRate} {
		if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidRate, r)
		}
	}
	return nil
}

func validateChannels(channels [][]float64) error {
	if len(channels) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalidBuffer)
	}
	if len(channels) > maxChannels {
		return fmt.Errorf("%w: too many channels (max %d)", ErrInvalidBuffer, maxChannels)
	}
	for ch := 1; ch < len(channels); ch++ {
		if len(channels[ch]) != len(channels[0]) {
			return fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrInvalidBuffer, ch, len(channels[ch]), len(channels[0]))
		}
	}
	return nil
}
