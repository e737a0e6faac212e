package response

import (
	"fmt"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

const defaultSize = 4096

type config struct {
	processor []core.ProcessorOption
	size      int
	err       error
}

// Option configures an Analyzer.
type Option func(*config)

// WithSize sets the impulse response length and FFT size. Defaults to 4096.
func WithSize(n int) Option {
	return func(cfg *config) {
		cfg.size = n
	}
}

// WithSampleRate sets the sample rate used to label bins. Defaults to 48 kHz.
// New fails with ErrInvalidSampleRate unless the rate is finite and positive.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) {
		if !core.ValidSampleRate(sampleRate) {
			cfg.err = fmt.Errorf("%w: %g", ErrInvalidSampleRate, sampleRate)
			return
		}
		cfg.processor = append(cfg.processor, core.WithSampleRate(sampleRate))
	}
}
