// Package bank runs one biquad design across several audio channels.
//
// A [Bank] owns one realization per channel (Direct Form 1 or Direct Form 2
// Transposed) and installs the same coefficients into all of them. Each
// channel keeps its own history, so interleaved multichannel buffers can be
// filtered in place:
//
//	b := bank.New(2, bank.WithSampleRate(44100))
//	b.SetSpec(design.HighPass{Freq: 40, Q: 0.707})
//	err := b.ProcessInterleaved(frames)
//
// [Bank.ProcessBuffer] accepts a go-audio Float32Buffer and checks its
// channel count and sample rate against the bank first.
package bank
