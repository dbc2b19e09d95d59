// Command fmscope generates a triangular-FM test signal and renders its
// spectrogram in the terminal.
//
// Usage:
//
//	fmscope [flags]
//
// The signal is produced in -steps consecutive blocks of -count samples, the
// same way repeated "generate" clicks extend one continuous session. The
// spectrogram of all generated samples is drawn with the highest frequency at
// the top.
//
// Examples:
//
//	fmscope
//	fmscope -freq 10 -fm-depth 20 -fm-period 2000 -count 4000
//	fmscope -window hann -window-size 128 -overlap 75
//	fmscope -samples 20 -steps 2 -count 10
//	fmscope -freq 20 -fm-depth 10 -track 12
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-fmscope/dsp/core"
	"github.com/cwbudde/algo-fmscope/dsp/signal"
	"github.com/cwbudde/algo-fmscope/dsp/stft"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type options struct {
	phase      float64
	freq       float64
	rate       float64
	bits       int
	count      int
	steps      int
	fmDepth    float64
	fmPeriod   int
	overlapPct float64
	windowSize int
	windowName string
	rows       int
	cols       int
	samples    int
	plain      bool
	floorDB    float64
	track      int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if err := execute(opts, stdout); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}

	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("fmscope", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&o.phase, "phase", 1, "initial carrier phase in radians")
	fs.Float64Var(&o.freq, "freq", 1, "carrier frequency in Hz")
	fs.Float64Var(&o.rate, "rate", 100, "sample rate in Hz")
	fs.IntVar(&o.bits, "bits", 5, "quantizer bit depth")
	fs.IntVar(&o.count, "count", 10000, "samples generated per step")
	fs.IntVar(&o.steps, "steps", 1, "number of consecutive generate steps")
	fs.Float64Var(&o.fmDepth, "fm-depth", 5, "modulation depth in Hz")
	fs.IntVar(&o.fmPeriod, "fm-period", 5000, "modulation period in samples")
	fs.Float64Var(&o.overlapPct, "overlap", 50, "window overlap in percent")
	fs.IntVar(&o.windowSize, "window-size", 256, "STFT window size in samples")
	fs.StringVar(&o.windowName, "window", "hamming", "window type: rectangular, hamming or hann")
	fs.IntVar(&o.rows, "rows", 24, "heat map height in characters")
	fs.IntVar(&o.cols, "cols", 80, "heat map width in characters")
	fs.IntVar(&o.samples, "samples", 0, "print the first N generated samples")
	fs.BoolVar(&o.plain, "plain", false, "render the heat map with ASCII shades instead of colour")
	fs.Float64Var(&o.floorDB, "floor", -60, "heat map dynamic range floor in dB below the peak")
	fs.IntVar(&o.track, "track", 0, "print the peak frequency of N evenly spaced frames")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: fmscope [flags]\n\n")
		_, _ = fmt.Fprintf(stderr, "Generates a triangular-FM signal and renders its spectrogram.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if fs.NArg() > 0 {
		_, _ = fmt.Fprintf(stderr, "error: unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return options{}, fmt.Errorf("unexpected arguments")
	}

	return o, nil
}

func execute(o options, w io.Writer) error {
	if o.steps < 1 {
		return fmt.Errorf("steps must be >= 1: %d: %w", o.steps, core.ErrConfiguration)
	}

	if o.rows < 1 || o.cols < 1 {
		return fmt.Errorf("heat map size must be positive: %dx%d: %w", o.rows, o.cols, core.ErrConfiguration)
	}

	if o.track < 0 {
		return fmt.Errorf("track must be >= 0: %d: %w", o.track, core.ErrConfiguration)
	}

	if o.floorDB >= 0 || !core.IsFinite(o.floorDB) {
		return fmt.Errorf("heat map floor must be < 0 dB: %f: %w", o.floorDB, core.ErrConfiguration)
	}

	cfg, err := stft.NewConfig(o.windowName, o.windowSize, o.overlapPct/100)
	if err != nil {
		return err
	}

	gen, err := signal.NewFMGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(o.rate)},
		signal.WithPhase(o.phase),
		signal.WithCarrierHz(o.freq),
		signal.WithBitDepth(o.bits),
		signal.WithFMDepth(o.fmDepth),
		signal.WithFMPeriod(o.fmPeriod),
	)
	if err != nil {
		return err
	}

	history, err := generateSession(gen, o.count, o.steps)
	if err != nil {
		return err
	}

	if o.samples > 0 {
		if err := writeSamples(w, history, o.samples); err != nil {
			return err
		}
	}

	sg, err := stft.Compute(signal.Amplitudes(history.samples), cfg)
	if err != nil {
		return err
	}

	if err := writeSummary(w, gen, cfg, sg, len(history.samples)); err != nil {
		return err
	}

	if o.track > 0 {
		if err := writeTrack(w, history, sg, gen.SampleRate(), o.track); err != nil {
			return err
		}
	}

	hm := heatMap{
		rows:    o.rows,
		cols:    o.cols,
		floorDB: o.floorDB,
		plain:   o.plain,
	}

	return hm.render(w, sg.Magnitude(), gen.SampleRate(), len(history.samples))
}
