// Package design derives normalized biquad and first-order coefficients
// from semantic filter specifications.
//
// A [Spec] names one filter variant (LowPass, PeakingEq, FirstOrderLowShelf,
// ...) with its frequency, Q and gain parameters. [Derive] turns a Spec and a
// sample period into [biquad.Coefficients] ready for a realization from
// dsp/filter/biquad. Derivation is pure float32 arithmetic with no
// validation: out-of-range parameters produce degenerate (possibly NaN)
// coefficients instead of errors.
//
// [Descriptor] is the flat, tagged form of a Spec used for JSON and YAML
// interchange, and [LoadPresets] reads named descriptors from a YAML
// document.
package design
