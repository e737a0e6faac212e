package bank

import (
	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

type bankConfig struct {
	processor []core.ProcessorOption
	structure biquad.Structure
}

func defaultBankConfig() bankConfig {
	return bankConfig{structure: biquad.StructureDirectForm2Transposed}
}

// Option configures a Bank.
type Option func(*bankConfig)

// WithStructure selects the realization used for every channel.
// Defaults to Direct Form 2 Transposed.
func WithStructure(s biquad.Structure) Option {
	return func(cfg *bankConfig) {
		if s == biquad.StructureDirectForm1 || s == biquad.StructureDirectForm2Transposed {
			cfg.structure = s
		}
	}
}

// WithSampleRate sets the rate used by SetSpec. Defaults to 48 kHz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *bankConfig) {
		cfg.processor = append(cfg.processor, core.WithSampleRate(sampleRate))
	}
}

// WithBlockSize sets the number of frames deinterleaved per channel pass.
// Defaults to 1024.
func WithBlockSize(frames int) Option {
	return func(cfg *bankConfig) {
		cfg.processor = append(cfg.processor, core.WithBlockSize(frames))
	}
}
