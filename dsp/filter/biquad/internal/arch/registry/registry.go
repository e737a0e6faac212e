package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients mirror biquad.Coefficients: numerator A0..A2, denominator
// B1, B2 with the leading denominator term normalized to 1.
type Coefficients struct {
	A0, A1, A2 float32
	B1, B2     float32
}

// DirectForm1Fn processes buf in-place with Direct Form 1 and returns the
// updated history [x1, x2, y1, y2].
type DirectForm1Fn func(c Coefficients, state [4]float32, buf []float32) [4]float32

// DirectForm2TransposedFn processes buf in-place with Direct Form 2
// Transposed and returns the updated registers [s0, s1].
type DirectForm2TransposedFn func(c Coefficients, state [2]float32, buf []float32) [2]float32

// OpEntry is one registered set of block kernels.
type OpEntry struct {
	Name                  string
	SIMDLevel             cpu.SIMDLevel
	Priority              int
	DirectForm1           DirectForm1Fn
	DirectForm2Transposed DirectForm2TransposedFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// insertion sort, stable for equal priorities
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}
