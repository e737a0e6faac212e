package bank

import (
	"fmt"

	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
)

// Bank filters several channels with shared coefficients and independent
// state. It is not safe for concurrent use.
type Bank struct {
	df1  []biquad.DirectForm1
	df2t []biquad.DirectForm2Transposed

	structure biquad.Structure
	config    core.ProcessorConfig
	spec      design.Spec
	coeffs    biquad.Coefficients

	scratch []float32
}

// New returns a bank of bypass filters. channels below 1 are treated as 1.
func New(channels int, opts ...Option) *Bank {
	channels = max(channels, 1)

	cfg := defaultBankConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	b := &Bank{
		structure: cfg.structure,
		config:    core.ApplyProcessorOptions(cfg.processor...),
	}
	b.SetBlockSize(b.config.BlockSize)

	if b.structure == biquad.StructureDirectForm1 {
		b.df1 = make([]biquad.DirectForm1, channels)
	} else {
		b.df2t = make([]biquad.DirectForm2Transposed, channels)
	}
	b.SetSpec(design.Bypass{})

	return b
}

// SetBlockSize changes the number of frames deinterleaved per channel pass.
// Non-positive values are ignored. Existing capacity is reused.
func (b *Bank) SetBlockSize(frames int) {
	if frames > 0 {
		b.scratch = core.EnsureLen(b.scratch, frames)
	}
}

// BlockSize returns the number of frames deinterleaved per channel pass.
func (b *Bank) BlockSize() int { return len(b.scratch) }

// Channels returns the number of channels.
func (b *Bank) Channels() int {
	return len(b.df1) + len(b.df2t)
}

// SampleRate returns the rate used to derive coefficients.
func (b *Bank) SampleRate() float64 { return b.config.SampleRate }

// Structure returns the realization used by every channel.
func (b *Bank) Structure() biquad.Structure { return b.structure }

// Spec returns the filter last installed with SetSpec, or nil after
// SetCoefficients.
func (b *Bank) Spec() design.Spec { return b.spec }

// Coefficients returns the coefficients shared by all channels.
func (b *Bank) Coefficients() biquad.Coefficients { return b.coeffs }

// SetSpec derives coefficients for spec at the bank's sample rate and
// installs them in every channel. Channel state is kept.
func (b *Bank) SetSpec(spec design.Spec) {
	b.SetCoefficients(design.Derive(spec, b.config.SampleTime()))
	b.spec = spec
}

// SetCoefficients installs c in every channel. Channel state is kept.
func (b *Bank) SetCoefficients(c biquad.Coefficients) {
	b.coeffs = c
	b.spec = nil
	for i := range b.df1 {
		b.df1[i].SetCoefficients(c)
	}
	for i := range b.df2t {
		b.df2t[i].SetCoefficients(c)
	}
}

// Channel returns the realization of channel i. It panics if i is out of
// range.
func (b *Bank) Channel(i int) biquad.Filter {
	if b.df1 != nil {
		return &b.df1[i]
	}
	return &b.df2t[i]
}

// ProcessSample filters one sample of channel ch.
func (b *Bank) ProcessSample(ch int, x float32) float32 {
	if b.df1 != nil {
		return b.df1[ch].ProcessSample(x)
	}
	return b.df2t[ch].ProcessSample(x)
}

// ProcessInterleaved filters interleaved frames in place. The buffer length
// must be a multiple of the channel count. Zero-alloc.
func (b *Bank) ProcessInterleaved(buf []float32) error {
	channels := b.Channels()
	if len(buf)%channels != 0 {
		return fmt.Errorf("%w: %d samples do not form whole %d-channel frames",
			ErrChannelMismatch, len(buf), channels)
	}

	if channels == 1 {
		b.processChannel(0, buf)
		return nil
	}

	frames := len(buf) / channels
	for start := 0; start < frames; start += len(b.scratch) {
		n := min(len(b.scratch), frames-start)
		block := b.scratch[:n]
		for ch := range channels {
			base := start*channels + ch
			for i := range block {
				block[i] = buf[base+i*channels]
			}
			b.processChannel(ch, block)
			for i, y := range block {
				buf[base+i*channels] = y
			}
		}
	}

	return nil
}

// ProcessBuffer filters buf.Data in place after checking that the buffer
// format matches the bank. A nil Format or a zero sample rate skips the
// respective check.
func (b *Bank) ProcessBuffer(buf *audio.Float32Buffer) error {
	if buf == nil {
		return nil
	}

	if f := buf.Format; f != nil {
		if f.NumChannels != 0 && f.NumChannels != b.Channels() {
			return fmt.Errorf("%w: buffer has %d channels, bank has %d",
				ErrChannelMismatch, f.NumChannels, b.Channels())
		}
		if f.SampleRate != 0 && !core.NearlyEqual(float64(f.SampleRate), b.config.SampleRate, 1e-9) {
			return fmt.Errorf("%w: buffer is %d Hz, bank is %g Hz",
				ErrSampleRateMismatch, f.SampleRate, b.config.SampleRate)
		}
	}

	return b.ProcessInterleaved(buf.Data)
}

// Reset installs bypass coefficients in every channel without clearing
// state, matching the realizations' Reset.
func (b *Bank) Reset() {
	b.SetSpec(design.Bypass{})
}

// ClearState zeroes the state of every channel.
func (b *Bank) ClearState() {
	for i := range b.df1 {
		b.df1[i].ClearState()
	}
	for i := range b.df2t {
		b.df2t[i].ClearState()
	}
}

func (b *Bank) processChannel(ch int, block []float32) {
	if b.df1 != nil {
		b.df1[ch].ProcessBlock(block)
		return
	}
	b.df2t[ch].ProcessBlock(block)
}
