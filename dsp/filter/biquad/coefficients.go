package biquad

import (
	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/internal/yamlfloat"
)

// Coefficients holds the normalized transfer function of one section.
// The leading denominator coefficient is 1 and not stored.
//
//	y[n] = A0*x[n] + A1*x[n-1] + A2*x[n-2] - B1*y[n-1] - B2*y[n-2]
//
// First-order sections leave A2 and B2 at zero.
type Coefficients struct {
	A0 float32 `json:"a0" yaml:"a0"` // feedforward (numerator)
	A1 float32 `json:"a1" yaml:"a1"`
	A2 float32 `json:"a2" yaml:"a2"`
	B1 float32 `json:"b1" yaml:"b1"` // feedback (denominator)
	B2 float32 `json:"b2" yaml:"b2"`
}

// Identity returns the bypass coefficients (1, 0, 0, 0, 0).
//
// The zero value of Coefficients is not the identity: it mutes the signal.
func Identity() Coefficients {
	return Coefficients{A0: 1}
}

// MarshalYAML implements yaml.Marshaler so that every term, negative zero
// included, decodes to the same bits.
func (c Coefficients) MarshalYAML() (any, error) {
	return yamlfloat.Mapping(
		[]string{"a0", "a1", "a2", "b1", "b2"},
		[]float32{c.A0, c.A1, c.A2, c.B1, c.B2},
	), nil
}

// IsIdentity reports whether c equals the bypass coefficients with every
// term within tol.
func (c Coefficients) IsIdentity(tol float32) bool {
	return core.NearlyEqual(c.A0, 1, tol) &&
		core.NearlyEqual(c.A1, 0, tol) &&
		core.NearlyEqual(c.A2, 0, tol) &&
		core.NearlyEqual(c.B1, 0, tol) &&
		core.NearlyEqual(c.B2, 0, tol)
}

// IsFirstOrder reports whether the second-order taps are both zero.
func (c Coefficients) IsFirstOrder() bool {
	return c.A2 == 0 && c.B2 == 0
}

// ImpulseResponse returns the first n samples of the impulse response,
// computed on a private Direct Form 1 realization.
func (c Coefficients) ImpulseResponse(n int) []float32 {
	if n <= 0 {
		return nil
	}

	var f DirectForm1
	f.SetCoefficients(c)

	ir := make([]float32, n)
	ir[0] = 1
	f.ProcessBlock(ir)
	return ir
}
