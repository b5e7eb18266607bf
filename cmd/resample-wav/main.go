// Command resample-wav changes the sample rate of a WAV file by fitting a
// natural cubic spline through each channel.
//
// Usage:
//
//	resample-wav -rate 48 input.wav output.wav
//	resample-wav -rate 16 -fast input.wav output.wav   # float32 buffers
//	resample-wav -rate 96 -v music.wav music_hires.wav
//
// The whole file is decoded into memory; channels are fitted in parallel.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/tphakala/simd/cpu"
)

const (
	// CLI defaults
	defaultRateKHz  = 48.0
	minRequiredArgs = 2
	kHzToHz         = 1000

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Full-scale values per bit depth
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// WAV format tag for integer PCM
	wavFormatPCM = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rateKHz := flag.Float64("rate", defaultRateKHz, "Target sample rate in kHz (e.g., 16, 32, 44.1, 48, 96)")
	fast := flag.Bool("fast", false, "Carry samples as float32 between decode and encode")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	opts := options{
		inputPath:  args[0],
		outputPath: args[1],
		targetRate: int(*rateKHz * kHzToHz),
		fast:       *fast,
		verbose:    *verbose,
	}

	if opts.verbose {
		log.Printf("Input: %s", opts.inputPath)
		log.Printf("Output: %s", opts.outputPath)
		log.Printf("Target rate: %d Hz", opts.targetRate)
		log.Printf("SIMD: %s", cpu.Info())
		if opts.fast {
			log.Printf("Precision: float32 buffers")
		}
	}

	start := time.Now()
	stats, err := resampleFile(opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Resampled %s -> %s\n", filepath.Base(opts.inputPath), filepath.Base(opts.outputPath))
	fmt.Printf("  %d Hz -> %d Hz (%d channels, %d-bit)\n",
		stats.inputRate, stats.outputRate, stats.channels, stats.bitDepth)
	fmt.Printf("  %s frames -> %s frames (%s)\n",
		humanize.Comma(int64(stats.inputFrames)), humanize.Comma(int64(stats.outputFrames)),
		durafmt.Parse(stats.duration()).LimitFirstN(2))
	if info, err := os.Stat(opts.outputPath); err == nil {
		fmt.Printf("  Output size: %s\n", humanize.Bytes(uint64(info.Size())))
	}
	fmt.Printf("  Processing time: %s\n", durafmt.Parse(elapsed).LimitFirstN(2))

	return nil
}
