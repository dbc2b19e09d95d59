package modulation

import (
	"fmt"

	"github.com/cwbudde/algo-fmscope/dsp/core"
)

// Triangle is a triangular LFO with a period measured in samples.
//
// Within one period the offset ramps linearly from 0 up to depth over the
// first period/2 samples and back down towards 0 over the rest. period/2 is
// integer division, so odd periods have a longer falling ramp.
type Triangle struct {
	depth  float64
	period int
	slope  float64
}

// NewTriangle creates a triangular modulator with the given depth (Hz) and
// period (samples).
func NewTriangle(depth float64, period int) (*Triangle, error) {
	t := &Triangle{}
	if err := t.SetParams(depth, period); err != nil {
		return nil, err
	}

	return t, nil
}

// SetParams updates depth and period and recomputes the ramp slope. On error
// the modulator is left unchanged.
func (t *Triangle) SetParams(depth float64, period int) error {
	if err := validate(depth, period); err != nil {
		return err
	}

	t.depth = depth
	t.period = period
	t.slope = depth / float64(period/2)

	return nil
}

// Freq returns the frequency offset for the sample at globalIndex.
// Negative indices wrap into the period like positive ones.
func (t *Triangle) Freq(globalIndex int) float64 {
	local := globalIndex % t.period
	if local < 0 {
		local += t.period
	}

	half := t.period / 2
	if local < half {
		return t.slope * float64(local)
	}

	return t.depth - t.slope*float64(local-half)
}

// Fill writes the offsets for indices start, start+1, ... into dst.
func (t *Triangle) Fill(dst []float64, start int) {
	for i := range dst {
		dst[i] = t.Freq(start + i)
	}
}

// Depth returns the peak frequency offset in Hz.
func (t *Triangle) Depth() float64 { return t.depth }

// Period returns the modulation period in samples.
func (t *Triangle) Period() int { return t.period }

// Slope returns the offset change per sample on the rising ramp.
func (t *Triangle) Slope() float64 { return t.slope }

func validate(depth float64, period int) error {
	if period < 2 {
		return fmt.Errorf("modulation period must be >= 2: %d: %w", period, core.ErrConfiguration)
	}

	if !core.IsFinite(depth) {
		return fmt.Errorf("modulation depth must be finite: %f: %w", depth, core.ErrConfiguration)
	}

	return nil
}
