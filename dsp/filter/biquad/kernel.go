package biquad

import (
	"sync"

	_ "github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/generic" // register generic backend
	archregistry "github.com/cwbudde/algo-biquad/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	kernelEntry    *archregistry.OpEntry
	kernelInitOnce sync.Once
)

func blockKernels() *archregistry.OpEntry {
	kernelInitOnce.Do(initBlockKernels)
	return kernelEntry
}

func initBlockKernels() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no block kernel registered (missing generic fallback?)")
	}

	if entry.DirectForm1 == nil || entry.DirectForm2Transposed == nil {
		panic("biquad: selected kernel " + entry.Name + " is incomplete")
	}

	kernelEntry = entry
}

func kernelCoefficients(c Coefficients) archregistry.Coefficients {
	return archregistry.Coefficients(c)
}
