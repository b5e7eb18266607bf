package resample

import (
	"fmt"

	"github.com/go-audio/audio"

	"github.com/tphakala/go-cubic-spline/internal/simdops"
)

// Buffer resamples an interleaved go-audio float buffer to outRate.
// The returned buffer carries a copy of the input format with the new sample rate.
// Channels are processed in parallel.
func Buffer(buf *audio.FloatBuffer, outRate int) (*audio.FloatBuffer, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("%w: missing buffer or format", ErrInvalidBuffer)
	}

	data, err := interleaved(buf.Data, buf.Format, outRate)
	if err != nil {
		return nil, err
	}

	return &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: buf.Format.NumChannels, SampleRate: outRate},
		Data:   data,
	}, nil
}

// Float32Buffer resamples an interleaved go-audio float32 buffer to outRate.
// Fitting runs in float64; results are narrowed back to float32.
func Float32Buffer(buf *audio.Float32Buffer, outRate int) (*audio.Float32Buffer, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("%w: missing buffer or format", ErrInvalidBuffer)
	}

	wide := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		wide[i] = float64(v)
	}

	data, err := interleaved(wide, buf.Format, outRate)
	if err != nil {
		return nil, err
	}

	narrow := make([]float32, len(data))
	for i, v := range data {
		narrow[i] = float32(v)
	}

	return &audio.Float32Buffer{
		Format:         &audio.Format{NumChannels: buf.Format.NumChannels, SampleRate: outRate},
		Data:           narrow,
		SourceBitDepth: buf.SourceBitDepth,
	}, nil
}

// interleaved deinterleaves data, resamples each channel and interleaves the result.
func interleaved(data []float64, format *audio.Format, outRate int) ([]float64, error) {
	numCh := format.NumChannels
	if numCh < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidBuffer, numCh)
	}
	if len(data)%numCh != 0 {
		return nil, fmt.Errorf("%w: %d samples is not a whole number of %d-channel frames",
			ErrInvalidBuffer, len(data), numCh)
	}

	planar := simdops.Deinterleave(data, numCh)
	resampled, err := Channels(planar, float64(format.SampleRate), float64(outRate), true)
	if err != nil {
		return nil, err
	}

	out := make([]float64, numCh*len(resampled[0]))
	simdops.Interleave(out, resampled)
	return out, nil
}
