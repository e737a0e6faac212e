package biquad

// DirectForm1 realizes a section with the non-transposed recurrence. It
// stores the last two input and output samples next to the coefficients.
//
// The zero value has all-zero coefficients and mutes its input; use
// [NewDirectForm1] or call Reset or SetCoefficients first.
type DirectForm1 struct {
	coeffs Coefficients

	x1, x2 float32 // input history
	y1, y2 float32 // output history
}

// NewDirectForm1 returns a realization with bypass coefficients and zero history.
func NewDirectForm1() *DirectForm1 {
	return &DirectForm1{coeffs: Identity()}
}

// Reset installs the bypass coefficients without touching history. The
// output follows the input at once, but the stale history is still fed to
// the next coefficients installed with SetCoefficients. Call ClearState to
// discard it.
func (f *DirectForm1) Reset() {
	f.SetCoefficients(Identity())
}

// SetCoefficients replaces the active coefficients. History is kept.
func (f *DirectForm1) SetCoefficients(c Coefficients) {
	f.coeffs = c
}

// Coefficients returns the active coefficients.
func (f *DirectForm1) Coefficients() Coefficients {
	return f.coeffs
}

// ProcessSample filters one input sample and returns the output.
func (f *DirectForm1) ProcessSample(x float32) float32 {
	c := &f.coeffs
	y := c.A0*x + c.A1*f.x1 + c.A2*f.x2 - c.B1*f.y1 - c.B2*f.y2

	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y

	return y
}

// ProcessBlock filters buf in-place. The result equals calling
// ProcessSample on each element in order. Zero-alloc.
func (f *DirectForm1) ProcessBlock(buf []float32) {
	if len(buf) == 0 {
		return
	}

	k := blockKernels()
	st := k.DirectForm1(kernelCoefficients(f.coeffs), f.State(), buf)
	f.SetState(st)
}

// ClearState zeroes the input and output history. Coefficients are kept.
func (f *DirectForm1) ClearState() {
	f.x1, f.x2 = 0, 0
	f.y1, f.y2 = 0, 0
}

// State returns the history as [x[n-1], x[n-2], y[n-1], y[n-2]].
func (f *DirectForm1) State() [4]float32 {
	return [4]float32{f.x1, f.x2, f.y1, f.y2}
}

// SetState restores a history previously returned by State.
func (f *DirectForm1) SetState(state [4]float32) {
	f.x1, f.x2 = state[0], state[1]
	f.y1, f.y2 = state[2], state[3]
}
