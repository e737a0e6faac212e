package design

import (
	"math"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

const sqrt2 = float32(math.Sqrt2)

// SampleTime returns the sample period expected by Derive.
func SampleTime(sampleRate float32) float32 {
	return core.SampleTime(sampleRate)
}

// Derive computes the normalized coefficients for spec at the given sample
// period (1/sampleRate).
//
// Derive never fails. Frequencies outside (0, fs/2), Q <= 0 and similar
// inputs yield degenerate or non-finite coefficients. A nil spec derives
// the identity.
//
// Gain-carrying variants branch on the sign of GainDB: the cut design is
// the boost design with numerator and denominator exchanged, so a cut of
// -G dB exactly undoes a boost of +G dB.
func Derive(spec Spec, sampleTime float32) biquad.Coefficients {
	switch s := spec.(type) {
	case LowPass:
		return lowPass(s, sampleTime)
	case HighPass:
		return highPass(s, sampleTime)
	case BandPass:
		return bandPass(s, sampleTime)
	case Notch:
		return notch(s, sampleTime)
	case AllPass:
		return allPass(s, sampleTime)
	case PeakingEq:
		return peakingEq(s, sampleTime)
	case LowShelf:
		return lowShelf(s, sampleTime)
	case HighShelf:
		return highShelf(s, sampleTime)
	case FirstOrderLowPass:
		return firstOrderLowPass(s, sampleTime)
	case FirstOrderHighPass:
		return firstOrderHighPass(s, sampleTime)
	case FirstOrderAllPass:
		return firstOrderAllPass(s, sampleTime)
	case FirstOrderLowShelf:
		return firstOrderLowShelf(s, sampleTime)
	case FirstOrderHighShelf:
		return firstOrderHighShelf(s, sampleTime)
	case OnePoleLowPass:
		return onePoleLowPass(s, sampleTime)
	default:
		return biquad.Identity()
	}
}

// prewarp returns the bilinear-transform frequency tan(pi*freq*T).
func prewarp(freq, sampleTime float32) float32 {
	return float32(math.Tan(float64(math.Pi * freq * sampleTime)))
}

// linearGain returns the linear amplitude of |gainDB|.
func linearGain(gainDB float32) float32 {
	return core.DBToLinear(core.Abs(gainDB))
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func lowPass(s LowPass, sampleTime float32) biquad.Coefficients {
	k := prewarp(s.Freq, sampleTime)
	norm := 1 / (1 + k/s.Q + k*k)
	a0 := k * k * norm

	return biquad.Coefficients{
		A0: a0,
		A1: 2 * a0,
		A2: a0,
		B1: 2 * (k*k - 1) * norm,
		B2: (1 - k/s.Q + k*k) * norm,
	}
}

func highPass(s HighPass, sampleTime float32) biquad.Coefficients {
	k := prewarp(s.Freq, sampleTime)
	norm := 1 / (1 + k/s.Q + k*k)
	a0 := norm

	return biquad.Coefficients{
		A0: a0,
		A1: -2 * a0,
		A2: a0,
		B1: 2 * (k*k - 1) * norm,
		B2: (1 - k/s.Q + k*k) * norm,
	}
}

func bandPass(s BandPass, sampleTime float32) biquad.Coefficients {
	k := prewarp(s.Freq, sampleTime)
	norm := 1 / (1 + k/s.Q + k*k)
	a0 := k / s.Q * norm

	return biquad.Coefficients{
		A0: a0,
		A1: 0,
		A2: -a0,
		B1: 2 * (k*k - 1) * norm,
		B2: (1 - k/s.Q + k*k) * norm,
	}
}

func notch(s Notch, sampleTime float32) biquad.Coefficients {
	k := prewarp(s.Freq, sampleTime)
	norm := 1 / (1 + k/s.Q + k*k)
	a0 := (1 + k*k) * norm
	a1 := 2 * (k*k - 1) * norm

	return biquad.Coefficients{
		A0: a0,
		A1: a1,
		A2: a0,
		B1: a1,
		B2: (1 - k/s.Q + k*k) * norm,
	}
}

// allPass mirrors the denominator into the numerator. With b2 = a0 and the
// leading denominator term 1, the trailing numerator term is 1 as well.
func allPass(s AllPass, sampleTime float32) biquad.Coefficients {
	k := prewarp(s.Freq, sampleTime)
	divQ := 1 / s.Q
	norm := 1 / (1 + k*divQ + k*k)
	a0 := (1 - k*divQ + k*k) * norm
	a1 := 2 * (k*k - 1) * norm

	return biquad.Coefficients{
		A0: a0,
		A1: a1,
		A2: 1,
		B1: a1,
		B2: a0,
	}
}

func peakingEq(s PeakingEq, sampleTime float32) biquad.Coefficients {
	k := prewarp(s.Freq, sampleTime)
	v := linearGain(s.GainDB)
	q := s.Q

	if s.GainDB >= 0 {
		norm := 1 / (1 + 1/q*k + k*k)
		a1 := 2 * (k*k - 1) * norm
		return biquad.Coefficients{
			A0: (1 + v/q*k + k*k) * norm,
			A1: a1,
			A2: (1 - v/q*k + k*k) * norm,
			B1: a1,
			B2: (1 - 1/q*k + k*k) * norm,
		}
	}

	norm := 1 / (1 + v/q*k + k*k)
	a1 := 2 * (k*k - 1) * norm
	return biquad.Coefficients{
		A0: (1 + 1/q*k + k*k) * norm,
		A1: a1,
		A2: (1 - 1/q*k + k*k) * norm,
		B1: a1,
		B2: (1 - v/q*k + k*k) * norm,
	}
}

func lowShelf(s LowShelf, sampleTime float32) biquad.Coefficients {
	k := prewarp(s.Freq, sampleTime)
	v := linearGain(s.GainDB)
	sqrt2v := sqrt32(2 * v)

	if s.GainDB >= 0 {
		norm := 1 / (1 + sqrt2*k + k*k)
		return biquad.Coefficients{
			A0: (1 + sqrt2v*k + v*k*k) * norm,
			A1: 2 * (v*k*k - 1) * norm,
			A2: (1 - sqrt2v*k + v*k*k) * norm,
			B1: 2 * (k*k - 1) * norm,
			B2: (1 - sqrt2*k + k*k) * norm,
		}
	}

	norm := 1 / (1 + sqrt2v*k + v*k*k)
	return biquad.Coefficients{
		A0: (1 + sqrt2*k + k*k) * norm,
		A1: 2 * (k*k - 1) * norm,
		A2: (1 - sqrt2*k + k*k) * norm,
		B1: 2 * (v*k*k - 1) * norm,
		B2: (1 - sqrt2v*k + v*k*k) * norm,
	}
}

func highShelf(s HighShelf, sampleTime float32) biquad.Coefficients {
	k := prewarp(s.Freq, sampleTime)
	v := linearGain(s.GainDB)
	sqrt2v := sqrt32(2 * v)

	if s.GainDB >= 0 {
		norm := 1 / (1 + sqrt2*k + k*k)
		return biquad.Coefficients{
			A0: (v + sqrt2v*k + k*k) * norm,
			A1: 2 * (k*k - v) * norm,
			A2: (v - sqrt2v*k + k*k) * norm,
			B1: 2 * (k*k - 1) * norm,
			B2: (1 - sqrt2*k + k*k) * norm,
		}
	}

	norm := 1 / (v + sqrt2v*k + k*k)
	return biquad.Coefficients{
		A0: (1 + sqrt2*k + k*k) * norm,
		A1: 2 * (k*k - 1) * norm,
		A2: (1 - sqrt2*k + k*k) * norm,
		B1: 2 * (k*k - v) * norm,
		B2: (v - sqrt2v*k + k*k) * norm,
	}
}

func firstOrderLowPass(s FirstOrderLowPass, sampleTime float32) biquad.Coefficients {
	k := prewarp(s.Freq, sampleTime)
	norm := 1 / (1/k + 1)

	return biquad.Coefficients{
		A0: norm,
		A1: norm,
		B1: (1 - 1/k) * norm,
	}
}

func firstOrderHighPass(s FirstOrderHighPass, sampleTime float32) biquad.Coefficients {
	k := prewarp(s.Freq, sampleTime)
	norm := 1 / (k + 1)

	return biquad.Coefficients{
		A0: norm,
		A1: -norm,
		B1: (k - 1) * norm,
	}
}

func firstOrderAllPass(s FirstOrderAllPass, sampleTime float32) biquad.Coefficients {
	k := prewarp(s.Freq, sampleTime)
	a0 := (1 - k) / (1 + k)

	return biquad.Coefficients{
		A0: a0,
		A1: -1,
		B1: -a0,
	}
}

func firstOrderLowShelf(s FirstOrderLowShelf, sampleTime float32) biquad.Coefficients {
	k := prewarp(s.Freq, sampleTime)
	v := linearGain(s.GainDB)

	if s.GainDB >= 0 {
		norm := 1 / (k + 1)
		return biquad.Coefficients{
			A0: (k*v + 1) * norm,
			A1: (k*v - 1) * norm,
			B1: (k - 1) * norm,
		}
	}

	norm := 1 / (k*v + 1)
	return biquad.Coefficients{
		A0: (k + 1) * norm,
		A1: (k - 1) * norm,
		B1: (k*v - 1) * norm,
	}
}

func firstOrderHighShelf(s FirstOrderHighShelf, sampleTime float32) biquad.Coefficients {
	k := prewarp(s.Freq, sampleTime)
	v := linearGain(s.GainDB)

	if s.GainDB >= 0 {
		norm := 1 / (k + 1)
		return biquad.Coefficients{
			A0: (k + v) * norm,
			A1: (k - v) * norm,
			B1: (k - 1) * norm,
		}
	}

	norm := 1 / (k + v)
	return biquad.Coefficients{
		A0: (k + 1) * norm,
		A1: (k - 1) * norm,
		B1: (k - v) * norm,
	}
}

func onePoleLowPass(s OnePoleLowPass, sampleTime float32) biquad.Coefficients {
	p := float32(math.Exp(float64(-2 * math.Pi * s.Freq * sampleTime)))

	return biquad.Coefficients{
		A0: 1 - p,
		B1: -p,
	}
}
