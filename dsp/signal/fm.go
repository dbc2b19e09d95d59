package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fmscope/dsp/core"
	"github.com/cwbudde/algo-fmscope/dsp/modulation"
)

const (
	defaultPhase      = 1.0
	defaultCarrierHz  = 1.0
	defaultBitDepth   = 5
	defaultFMDepth    = 5.0
	defaultFMPeriod   = 5000

	// maxBitDepth keeps 1<<bitDepth inside a signed 64-bit int.
	maxBitDepth = 62
)

// Sample is one generated output value at an absolute sample index.
type Sample struct {
	Index     int
	Amplitude int
}

// FMParams holds the full generator configuration.
//
// A nil Phase keeps the generator's current phase, which allows changing the
// carrier or modulator mid-session without a discontinuity. A given phase is
// wrapped into [0, 2π).
type FMParams struct {
	Phase      *float64
	CarrierHz  float64
	SampleRate float64
	BitDepth   int
	FMDepth    float64
	FMPeriod   int
}

// Validate checks the parameters without applying them.
func (p FMParams) Validate() error {
	if p.Phase != nil && !core.IsFinite(*p.Phase) {
		return fmt.Errorf("fm generator phase must be finite: %f: %w", *p.Phase, core.ErrConfiguration)
	}

	if !core.IsFinite(p.CarrierHz) {
		return fmt.Errorf("fm generator carrier frequency must be finite: %f: %w", p.CarrierHz, core.ErrConfiguration)
	}

	if err := (core.ProcessorConfig{SampleRate: p.SampleRate}).Validate(); err != nil {
		return fmt.Errorf("fm generator: %w", err)
	}

	if p.BitDepth < 1 || p.BitDepth > maxBitDepth {
		return fmt.Errorf("fm generator bit depth must be in [1, %d]: %d: %w", maxBitDepth, p.BitDepth, core.ErrConfiguration)
	}

	if p.FMPeriod < 2 {
		return fmt.Errorf("fm generator modulation period must be >= 2: %d: %w", p.FMPeriod, core.ErrConfiguration)
	}

	if !core.IsFinite(p.FMDepth) {
		return fmt.Errorf("fm generator modulation depth must be finite: %f: %w", p.FMDepth, core.ErrConfiguration)
	}

	return nil
}

// FMOption mutates FM generator construction parameters.
type FMOption func(*FMParams)

// WithPhase sets the initial phase in radians.
func WithPhase(phase float64) FMOption {
	return func(p *FMParams) {
		p.Phase = &phase
	}
}

// WithCarrierHz sets the carrier frequency in Hz.
func WithCarrierHz(hz float64) FMOption {
	return func(p *FMParams) {
		p.CarrierHz = hz
	}
}

// WithBitDepth sets the quantizer resolution. The output has 1<<bits levels.
func WithBitDepth(bits int) FMOption {
	return func(p *FMParams) {
		p.BitDepth = bits
	}
}

// WithFMDepth sets the peak frequency deviation in Hz.
func WithFMDepth(hz float64) FMOption {
	return func(p *FMParams) {
		p.FMDepth = hz
	}
}

// WithFMPeriod sets the modulation period in samples.
func WithFMPeriod(samples int) FMOption {
	return func(p *FMParams) {
		p.FMPeriod = samples
	}
}

// DefaultFMParams returns the default generator configuration.
func DefaultFMParams() FMParams {
	phase := defaultPhase

	return FMParams{
		Phase:      &phase,
		CarrierHz:  defaultCarrierHz,
		SampleRate: core.DefaultProcessorConfig().SampleRate,
		BitDepth:   defaultBitDepth,
		FMDepth:    defaultFMDepth,
		FMPeriod:   defaultFMPeriod,
	}
}

// FMGenerator produces a quantized sine carrier whose instantaneous frequency
// is swept by a triangular LFO. Phase is carried over between Generate calls.
//
// For sample n = lastIndex+i the generator emits
//
//	round(scale * sin(phase))
//	phase += 2π * (carrierHz + lfo(n)) / sampleRate
//
// where scale = (levels-2)/2 leaves one quantization step of headroom.
type FMGenerator struct {
	phase        float64
	carrierHz    float64
	sampleRate   float64
	timeInterval float64
	levels       int
	lastIndex    int
	lfo          *modulation.Triangle
}

// NewFMGenerator creates a generator at the default sample rate from the
// defaults and the given options.
func NewFMGenerator(opts ...FMOption) (*FMGenerator, error) {
	return NewFMGeneratorWithOptions(nil, opts...)
}

// NewFMGeneratorWithOptions creates a generator whose sample rate comes from
// the processor options.
func NewFMGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...FMOption) (*FMGenerator, error) {
	cfg := core.ApplyProcessorOptions(coreOpts...)

	p := DefaultFMParams()
	p.SampleRate = cfg.SampleRate

	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}

	g := &FMGenerator{lfo: &modulation.Triangle{}}
	if err := g.SetParams(p); err != nil {
		return nil, err
	}

	return g, nil
}

// SetParams replaces the generator configuration. The sample cursor is not
// touched, so subsequent samples continue the current session. On error the
// generator is left unchanged.
func (g *FMGenerator) SetParams(p FMParams) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if err := g.lfo.SetParams(p.FMDepth, p.FMPeriod); err != nil {
		return err
	}

	if p.Phase != nil {
		g.phase = core.WrapPhase(*p.Phase)
	}

	g.carrierHz = p.CarrierHz
	g.sampleRate = p.SampleRate
	g.timeInterval = 1 / p.SampleRate
	g.levels = 1 << p.BitDepth

	return nil
}

// Generate returns the next count samples and advances the session.
// A count of zero returns an empty slice and leaves the state unchanged.
func (g *FMGenerator) Generate(count int) ([]Sample, error) {
	if count < 0 {
		return nil, fmt.Errorf("fm generator sample count must be >= 0: %d: %w", count, core.ErrConfiguration)
	}

	out := make([]Sample, count)
	scale := float64(g.AmplitudeScale())
	phase := g.phase

	for i := range out {
		n := g.lastIndex + i
		freq := g.carrierHz + g.lfo.Freq(n)

		out[i] = Sample{
			Index:     n,
			Amplitude: core.RoundHalfAwayFromZero(scale * math.Sin(phase)),
		}

		// Wrapping every step keeps the phase sequence independent of how
		// the session is split into Generate calls.
		phase = core.WrapPhase(phase + core.TwoPi*freq*g.timeInterval)
	}

	g.lastIndex += count
	g.phase = core.WrapPhase(phase)

	return out, nil
}

// FrequencyTrace returns the instantaneous frequencies (carrier plus LFO
// offset) of the next count samples without advancing the generator.
func (g *FMGenerator) FrequencyTrace(count int) []float64 {
	if count <= 0 {
		return nil
	}

	out := make([]float64, count)
	g.lfo.Fill(out, g.lastIndex)

	for i := range out {
		out[i] += g.carrierHz
	}

	return out
}

// Reset rewinds the sample cursor to 0 and sets the phase. Carrier and
// modulator parameters are kept.
func (g *FMGenerator) Reset(phase float64) error {
	if !core.IsFinite(phase) {
		return fmt.Errorf("fm generator phase must be finite: %f: %w", phase, core.ErrConfiguration)
	}

	g.lastIndex = 0
	g.phase = core.WrapPhase(phase)

	return nil
}

// Phase returns the current oscillator phase in radians.
func (g *FMGenerator) Phase() float64 { return g.phase }

// LastIndex returns the index the next generated sample will carry.
func (g *FMGenerator) LastIndex() int { return g.lastIndex }

// SampleRate returns the sample rate in Hz.
func (g *FMGenerator) SampleRate() float64 { return g.sampleRate }

// Config returns the generator processor configuration.
func (g *FMGenerator) Config() core.ProcessorConfig {
	return core.ProcessorConfig{SampleRate: g.sampleRate}
}

// CarrierHz returns the carrier frequency in Hz.
func (g *FMGenerator) CarrierHz() float64 { return g.carrierHz }

// Levels returns the number of quantization levels (1 << bit depth).
func (g *FMGenerator) Levels() int { return g.levels }

// AmplitudeScale returns the peak output amplitude, (levels-2)/2.
// A bit depth of 1 gives 0, i.e. silence.
func (g *FMGenerator) AmplitudeScale() int { return (g.levels - 2) / 2 }

// Modulator returns the generator's frequency modulator.
func (g *FMGenerator) Modulator() *modulation.Triangle { return g.lfo }

// Amplitudes returns the sample amplitudes as float64, ready for spectral
// analysis.
func Amplitudes(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s.Amplitude)
	}

	return out
}

// Indices returns the absolute sample indices.
func Indices(samples []Sample) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = s.Index
	}

	return out
}
