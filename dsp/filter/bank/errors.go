package bank

import "errors"

var (
	// ErrChannelMismatch reports a buffer whose layout does not match the
	// bank's channel count.
	ErrChannelMismatch = errors.New("bank: channel count mismatch")
	// ErrSampleRateMismatch reports a buffer recorded at another rate than
	// the one the coefficients were derived for.
	ErrSampleRateMismatch = errors.New("bank: sample rate mismatch")
)
