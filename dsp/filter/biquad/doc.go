// Package biquad provides single-precision biquad (second-order IIR) filter
// realizations.
//
// [Coefficients] hold a normalized transfer function
//
//	H(z) = (A0 + A1 z^-1 + A2 z^-2) / (1 + B1 z^-1 + B2 z^-2)
//
// and are consumed by one of two realization structures:
//
//   - [DirectForm1] keeps two samples of input and two samples of output
//     history and evaluates the textbook recurrence.
//   - [DirectForm2Transposed] keeps two accumulator registers. It stores
//     half the state and behaves better when coefficients change mid-stream.
//
// Both are plain value types with no allocation in the processing path and
// no shared state, so one instance per channel or voice is the intended use.
// Installing new coefficients never clears history; [DirectForm1.Reset]
// only installs the bypass coefficients. Use ClearState to zero history.
//
// This package provides the processing runtime only. Coefficient design
// from semantic filter descriptions lives in dsp/filter/design.
package biquad
