package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

// Response computes the complex frequency response H(e^jw) at the given
// frequency (Hz) and sample rate (Hz). Evaluation is done in float64.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(float64(c.A0), 0) + complex(float64(c.A1), 0)*ejw + complex(float64(c.A2), 0)*ej2w
	den := complex(1, 0) + complex(float64(c.B1), 0)*ejw + complex(float64(c.B2), 0)*ej2w
	return num / den
}

// MagnitudeSquared returns |H(f)|^2 using a closed-form expression.
func (c Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	n0, n1, n2 := float64(c.A0), float64(c.A1), float64(c.A2)
	d1, d2 := float64(c.B1), float64(c.B2)

	num := (n0-n2)*(n0-n2) + n1*n1 + (n1*(n0+n2)+n0*n2*cw)*cw
	den := (1-d2)*(1-d2) + d1*d1 + (d1*(d2+1)+cw*d2)*cw
	return num / den
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearPowerToDB(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase response in radians, in [-pi, pi].
func (c Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}
