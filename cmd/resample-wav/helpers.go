package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-cubic-spline/resample"
)

// options holds one resampling job.
type options struct {
	inputPath  string
	outputPath string
	targetRate int
	fast       bool
	verbose    bool
}

// resampleStats summarizes a finished job.
type resampleStats struct {
	inputRate    int
	outputRate   int
	channels     int
	bitDepth     int
	inputFrames  int
	outputFrames int
}

// duration returns the playing time of the input audio.
func (s *resampleStats) duration() time.Duration {
	if s.inputRate <= 0 {
		return 0
	}
	return time.Duration(s.inputFrames) * time.Second / time.Duration(s.inputRate)
}

// resampleFile decodes the input WAV, resamples every channel and writes the
// result with the input bit depth.
func resampleFile(opts options) (*resampleStats, error) {
	pcm, bitDepth, err := readWAV(opts.inputPath, opts.verbose)
	if err != nil {
		return nil, err
	}

	if pcm.Format.SampleRate == opts.targetRate {
		return nil, fmt.Errorf("input already at target rate %d Hz", opts.targetRate)
	}

	maxVal := getMaxValue(bitDepth)
	var out []int
	if opts.fast {
		out, err = resampleFloat32(pcm, bitDepth, opts.targetRate, maxVal)
	} else {
		out, err = resampleFloat64(pcm, opts.targetRate, maxVal)
	}
	if err != nil {
		return nil, err
	}

	numCh := pcm.Format.NumChannels
	result := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numCh, SampleRate: opts.targetRate},
		Data:           out,
		SourceBitDepth: bitDepth,
	}
	if err := writeWAV(opts.outputPath, result, bitDepth); err != nil {
		return nil, err
	}

	return &resampleStats{
		inputRate:    pcm.Format.SampleRate,
		outputRate:   opts.targetRate,
		channels:     numCh,
		bitDepth:     bitDepth,
		inputFrames:  len(pcm.Data) / numCh,
		outputFrames: len(out) / numCh,
	}, nil
}

func resampleFloat64(pcm *audio.IntBuffer, targetRate int, maxVal float64) ([]int, error) {
	in := &audio.FloatBuffer{
		Format: pcm.Format,
		Data:   normalize(pcm.Data, 1/maxVal),
	}
	out, err := resample.Buffer(in, targetRate)
	if err != nil {
		return nil, fmt.Errorf("failed to resample: %w", err)
	}
	return quantize(out.Data, maxVal), nil
}

func resampleFloat32(pcm *audio.IntBuffer, bitDepth, targetRate int, maxVal float64) ([]int, error) {
	wide := normalize(pcm.Data, 1/maxVal)
	narrow := make([]float32, len(wide))
	for i, v := range wide {
		narrow[i] = float32(v)
	}

	in := &audio.Float32Buffer{Format: pcm.Format, Data: narrow, SourceBitDepth: bitDepth}
	out, err := resample.Float32Buffer(in, targetRate)
	if err != nil {
		return nil, fmt.Errorf("failed to resample: %w", err)
	}

	samples := make([]float64, len(out.Data))
	for i, v := range out.Data {
		samples[i] = float64(v)
	}
	return quantize(samples, maxVal), nil
}

// readWAV decodes an entire PCM WAV file.
func readWAV(path string, verbose bool) (*audio.IntBuffer, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read audio data: %w", err)
	}
	if pcm.Format == nil || pcm.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("invalid WAV file: %s: missing format", path)
	}

	bitDepth := int(decoder.BitDepth)
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit, %d frames",
			pcm.Format.SampleRate, pcm.Format.NumChannels, bitDepth, len(pcm.Data)/pcm.Format.NumChannels)
	}
	return pcm, bitDepth, nil
}

// writeWAV encodes buf as integer PCM, capturing the close error that
// finalizes the header.
func writeWAV(path string, buf *audio.IntBuffer, bitDepth int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	encoder := wav.NewEncoder(f, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, wavFormatPCM)
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// normalize scales integer samples into [-1, 1].
func normalize(data []int, invMaxVal float64) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v) * invMaxVal
	}
	return out
}

// quantize converts float samples back to integers. Spline overshoot past
// full scale is clipped.
func quantize(data []float64, maxVal float64) []int {
	out := make([]int, len(data))
	for i, v := range data {
		v = math.Max(-1, math.Min(1, v))
		out[i] = int(math.Round(v * maxVal))
	}
	return out
}
