package core

import "fmt"

// DefaultSampleRate is the sample rate used when none is configured.
const DefaultSampleRate = 100.0

// ProcessorConfig defines settings shared by the signal processors.
type ProcessorConfig struct {
	SampleRate float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the default processing settings.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: DefaultSampleRate,
	}
}

// WithSampleRate sets the processing sample rate. Invalid rates are kept so
// that Validate reports them instead of silently falling back.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.SampleRate = sampleRate
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports whether the configuration can drive a processor.
func (c ProcessorConfig) Validate() error {
	if c.SampleRate <= 0 || !IsFinite(c.SampleRate) {
		return fmt.Errorf("sample rate must be > 0 and finite: %f: %w", c.SampleRate, ErrConfiguration)
	}

	return nil
}
