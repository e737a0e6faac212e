package biquad

import (
	"fmt"
	"strings"
)

// Filter is the contract shared by [DirectForm1] and
// [DirectForm2Transposed].
type Filter interface {
	Reset()
	SetCoefficients(c Coefficients)
	Coefficients() Coefficients
	ProcessSample(x float32) float32
	ProcessBlock(buf []float32)
	ClearState()
}

var (
	_ Filter = (*DirectForm1)(nil)
	_ Filter = (*DirectForm2Transposed)(nil)
)

// Structure selects a realization.
type Structure int

const (
	// StructureDirectForm2Transposed is the default: half the state and
	// smoother behavior when coefficients change mid-stream.
	StructureDirectForm2Transposed Structure = iota
	StructureDirectForm1
)

var structureNames = map[Structure]string{
	StructureDirectForm2Transposed: "df2t",
	StructureDirectForm1:           "df1",
}

// String returns the short name used on command lines ("df1", "df2t").
func (s Structure) String() string {
	if name, ok := structureNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Structure(%d)", int(s))
}

// ParseStructure resolves a short name as returned by String.
func ParseStructure(name string) (Structure, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range structureNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("biquad: unknown structure %q", name)
}

// New returns a realization of the given structure with bypass
// coefficients. Unknown structures fall back to Direct Form 2 Transposed.
func New(s Structure) Filter {
	if s == StructureDirectForm1 {
		return NewDirectForm1()
	}
	return NewDirectForm2Transposed()
}
