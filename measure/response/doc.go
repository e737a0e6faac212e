// Package response measures the frequency response of a running biquad
// realization.
//
// Unlike the closed-form evaluation on biquad.Coefficients, the [Analyzer]
// drives an actual float32 realization with a unit impulse and transforms
// the captured response with an FFT, so it reflects the arithmetic of the
// chosen structure.
//
// # Usage
//
//	a, err := response.New(response.WithSize(8192), response.WithSampleRate(44100))
//	res, err := a.MeasureCoefficients(c, biquad.StructureDirectForm1)
//	fmt.Printf("1 kHz: %.2f dB\n", res.MagnitudeDBAt(1000))
package response
