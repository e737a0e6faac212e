package generic

import (
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:                  "generic",
		SIMDLevel:             cpu.SIMDNone,
		Priority:              0,
		DirectForm1:           directForm1,
		DirectForm2Transposed: directForm2Transposed,
	})
}

// The loops below evaluate exactly the per-sample expressions of the
// realizations so block and sample processing agree.

func directForm1(c registry.Coefficients, state [4]float32, buf []float32) [4]float32 {
	a0, a1, a2 := c.A0, c.A1, c.A2
	b1, b2 := c.B1, c.B2
	x1, x2, y1, y2 := state[0], state[1], state[2], state[3]

	for i, x := range buf {
		y := a0*x + a1*x1 + a2*x2 - b1*y1 - b2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	return [4]float32{x1, x2, y1, y2}
}

func directForm2Transposed(c registry.Coefficients, state [2]float32, buf []float32) [2]float32 {
	a0, a1, a2 := c.A0, c.A1, c.A2
	b1, b2 := c.B1, c.B2
	s0, s1 := state[0], state[1]

	for i, x := range buf {
		y := s0 + a0*x
		s0 = s1 + a1*x - b1*y
		s1 = a2*x - b2*y
		buf[i] = y
	}

	return [2]float32{s0, s1}
}
