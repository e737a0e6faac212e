package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// Errors returned by New.
var (
	ErrInvalidSize       = errors.New("response: size must be at least 2")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
)

type forwardPlan interface {
	Forward(dst, src []complex128) error
}

// Analyzer measures realizations by FFT of their impulse response.
// An Analyzer reuses its buffers and is not safe for concurrent use.
type Analyzer struct {
	size       int
	sampleRate float64
	plan       forwardPlan

	impulse []float32
	in, out []complex128
	re, im  []float64
}

// Result is a one-sided spectrum with Size/2+1 bins from DC to Nyquist.
type Result struct {
	SampleRate float64
	Size       int
	Magnitude  []float64 // linear |H|
	Phase      []float64 // radians
}

// New creates an Analyzer.
func New(opts ...Option) (*Analyzer, error) {
	cfg := config{size: defaultSize}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	if cfg.size < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, cfg.size)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	proc := core.ApplyProcessorOptions(cfg.processor...)

	plan, err := algofft.NewPlan64(cfg.size)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan for size %d: %w", cfg.size, err)
	}

	bins := cfg.size/2 + 1
	return &Analyzer{
		size:       cfg.size,
		sampleRate: proc.SampleRate,
		plan:       plan,
		impulse:    make([]float32, cfg.size),
		in:         make([]complex128, cfg.size),
		out:        make([]complex128, cfg.size),
		re:         make([]float64, bins),
		im:         make([]float64, bins),
	}, nil
}

// Size returns the FFT size.
func (a *Analyzer) Size() int { return a.size }

// SampleRate returns the sample rate used for bin frequencies.
func (a *Analyzer) SampleRate() float64 { return a.sampleRate }

// Measure clears the state of f, feeds it a unit impulse of Size samples
// and returns the spectrum of the output. f keeps its coefficients and is
// left holding the state after the impulse.
func (a *Analyzer) Measure(f biquad.Filter) (Result, error) {
	core.Zero(a.impulse)
	a.impulse[0] = 1

	f.ClearState()
	f.ProcessBlock(a.impulse)

	return a.Spectrum(a.impulse)
}

// MeasureCoefficients measures c on a fresh realization of structure s.
func (a *Analyzer) MeasureCoefficients(c biquad.Coefficients, s biquad.Structure) (Result, error) {
	f := biquad.New(s)
	f.SetCoefficients(c)
	return a.Measure(f)
}

// Spectrum transforms an impulse response. Shorter responses are
// zero-padded, longer ones truncated to Size.
func (a *Analyzer) Spectrum(ir []float32) (Result, error) {
	for i := range a.in {
		var x float32
		if i < len(ir) {
			x = ir[i]
		}
		a.in[i] = complex(float64(x), 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return Result{}, fmt.Errorf("response: fft: %w", err)
	}

	bins := len(a.re)
	for k := range bins {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}

	res := Result{
		SampleRate: a.sampleRate,
		Size:       a.size,
		Magnitude:  make([]float64, bins),
		Phase:      make([]float64, bins),
	}
	vecmath.Magnitude(res.Magnitude, a.re, a.im)
	for k := range bins {
		res.Phase[k] = math.Atan2(a.im[k], a.re[k])
	}

	return res, nil
}

// BinFrequency returns the frequency in Hz of bin k.
func (r Result) BinFrequency(k int) float64 {
	return float64(k) * r.SampleRate / float64(r.Size)
}

// Bin returns the bin nearest to freqHz, clamped to [0, Nyquist].
func (r Result) Bin(freqHz float64) int {
	if len(r.Magnitude) == 0 || r.SampleRate <= 0 {
		return 0
	}
	k := int(math.Round(freqHz * float64(r.Size) / r.SampleRate))
	return max(0, min(k, len(r.Magnitude)-1))
}

// MagnitudeDB returns 20*log10|H| for every bin.
func (r Result) MagnitudeDB() []float64 {
	out := make([]float64, len(r.Magnitude))
	for i, m := range r.Magnitude {
		out[i] = core.LinearToDB(m)
	}
	return out
}

// MagnitudeDBAt returns the magnitude in dB of the bin nearest to freqHz.
func (r Result) MagnitudeDBAt(freqHz float64) float64 {
	if len(r.Magnitude) == 0 {
		return math.Inf(-1)
	}
	return core.LinearToDB(r.Magnitude[r.Bin(freqHz)])
}

// PhaseAt returns the phase in radians of the bin nearest to freqHz.
func (r Result) PhaseAt(freqHz float64) float64 {
	if len(r.Phase) == 0 {
		return 0
	}
	return r.Phase[r.Bin(freqHz)]
}
