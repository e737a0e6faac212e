package core

import "math"

// ProcessorConfig holds the rate and block size a filter bank or analyzer
// runs at.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns 48 kHz with 1024-frame blocks.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 48000,
		BlockSize:  1024,
	}
}

// WithSampleRate sets the sample rate. Values that are not finite and
// positive are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if ValidSampleRate(sampleRate) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the block size in frames. Non-positive values are
// ignored.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies opts in order to the default config. Nil
// options are skipped.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// SampleTime returns the single-precision sample period coefficient
// derivation expects, computed as 1/float32(SampleRate).
func (c ProcessorConfig) SampleTime() float32 {
	return SampleTime(float32(c.SampleRate))
}

// ValidSampleRate reports whether sampleRate is finite and positive.
func ValidSampleRate(sampleRate float64) bool {
	return sampleRate > 0 && !math.IsInf(sampleRate, 0)
}
