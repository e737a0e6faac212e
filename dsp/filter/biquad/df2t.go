package biquad

// DirectForm2Transposed realizes a section with the transposed canonical
// recurrence:
//
//	y  = s0 + A0*x
//	s0 = s1 + A1*x - B1*y
//	s1 = A2*x - B2*y
//
// s0 and s1 are accumulator registers, not past samples.
//
// The zero value has all-zero coefficients and mutes its input; use
// [NewDirectForm2Transposed] or call Reset or SetCoefficients first.
type DirectForm2Transposed struct {
	coeffs Coefficients

	s0, s1 float32
}

// NewDirectForm2Transposed returns a realization with bypass coefficients
// and zero state.
func NewDirectForm2Transposed() *DirectForm2Transposed {
	return &DirectForm2Transposed{coeffs: Identity()}
}

// Reset installs the bypass coefficients without touching the registers.
// Pending register contents still reach the next two outputs; call
// ClearState to discard them.
func (f *DirectForm2Transposed) Reset() {
	f.SetCoefficients(Identity())
}

// SetCoefficients replaces the active coefficients. The registers are kept.
func (f *DirectForm2Transposed) SetCoefficients(c Coefficients) {
	f.coeffs = c
}

// Coefficients returns the active coefficients.
func (f *DirectForm2Transposed) Coefficients() Coefficients {
	return f.coeffs
}

// ProcessSample filters one input sample and returns the output.
func (f *DirectForm2Transposed) ProcessSample(x float32) float32 {
	c := &f.coeffs
	y := f.s0 + c.A0*x
	f.s0 = f.s1 + c.A1*x - c.B1*y
	f.s1 = c.A2*x - c.B2*y

	return y
}

// ProcessBlock filters buf in-place. The result equals calling
// ProcessSample on each element in order. Zero-alloc.
func (f *DirectForm2Transposed) ProcessBlock(buf []float32) {
	if len(buf) == 0 {
		return
	}

	k := blockKernels()
	st := k.DirectForm2Transposed(kernelCoefficients(f.coeffs), f.State(), buf)
	f.SetState(st)
}

// ClearState zeroes both registers. Coefficients are kept.
func (f *DirectForm2Transposed) ClearState() {
	f.s0, f.s1 = 0, 0
}

// State returns the registers [s0, s1].
func (f *DirectForm2Transposed) State() [2]float32 {
	return [2]float32{f.s0, f.s1}
}

// SetState restores registers previously returned by State.
func (f *DirectForm2Transposed) SetState(state [2]float32) {
	f.s0, f.s1 = state[0], state[1]
}
