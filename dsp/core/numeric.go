package core

import "math"

// Float is the set of sample types the library works with.
type Float interface {
	~float32 | ~float64
}

const defaultEpsilon = 1e-12

// Abs returns |x| without a round trip through float64.
func Abs[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

// NearlyEqual reports whether a and b are equal within eps, either as an
// absolute difference or relative to the larger magnitude.
func NearlyEqual[F Float](a, b, eps F) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := max(Abs(a), Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
// The exponent is formed in F; only the power itself is evaluated in float64.
func DBToLinear[F Float](db F) F {
	return F(math.Pow(10, float64(db/20)))
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// SampleTime returns the sample period 1/sampleRate.
func SampleTime[F Float](sampleRate F) F {
	return 1 / sampleRate
}
