package stft

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fmscope/dsp/core"
	"github.com/cwbudde/algo-fmscope/dsp/window"
)

// Config describes the STFT framing.
type Config struct {
	// Window is the analysis window applied to every frame.
	Window window.Type
	// Size is the frame length in samples.
	Size int
	// Overlap is the fraction of a frame shared with the next one, in [0, 1).
	Overlap float64
}

// NewConfig builds a validated configuration from a window name.
func NewConfig(windowName string, size int, overlap float64) (Config, error) {
	t, err := window.ParseType(windowName)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Window: t, Size: size, Overlap: overlap}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports whether the configuration can produce a spectrogram.
func (c Config) Validate() error {
	if !c.Window.Valid() {
		return fmt.Errorf("stft window type %d is not supported: %w", int(c.Window), core.ErrConfiguration)
	}

	if c.Size <= 0 {
		return fmt.Errorf("stft window size must be > 0: %d: %w", c.Size, core.ErrConfiguration)
	}

	if math.IsNaN(c.Overlap) || c.Overlap < 0 || c.Overlap >= 1 {
		return fmt.Errorf("stft overlap must be in [0, 1): %f: %w", c.Overlap, core.ErrConfiguration)
	}

	if ov := c.OverlapSize(); ov < 0 || ov >= c.Size {
		return fmt.Errorf("stft overlap size must be in [0, %d): %d: %w", c.Size, ov, core.ErrConfiguration)
	}

	return nil
}

// OverlapSize returns floor(Size * Overlap), the number of samples shared by
// consecutive frames.
func (c Config) OverlapSize() int {
	return int(math.Floor(float64(c.Size) * c.Overlap))
}

// Hop returns the frame advance in samples.
func (c Config) Hop() int {
	return c.Size - c.OverlapSize()
}

// Bins returns the number of frequency bins kept per frame.
func (c Config) Bins() int {
	return c.Size / 2
}

// FrameCount returns the number of frames Compute produces for n samples,
// ceil(n / Hop). The configuration must be valid.
func FrameCount(n int, cfg Config) int {
	if n <= 0 {
		return 0
	}

	hop := cfg.Hop()

	return (n + hop - 1) / hop
}
