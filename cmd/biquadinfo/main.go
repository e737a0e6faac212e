// Command biquadinfo derives biquad coefficients and prints their response.
//
// Usage:
//
//	biquadinfo [flags] [preset-name ...]
//
// A single filter is described with --type, --freq, --q and --gain. With
// --presets, filters are read from a YAML preset file instead; positional
// arguments then select presets by name.
//
// Examples:
//
//	biquadinfo --type LowPass --freq 1000 --q 0.707
//	biquadinfo -t PeakingEq -f 3150 -q 1.4 -g -4.5 --format yaml
//	biquadinfo --presets eq.yaml rumble presence
//	biquadinfo -t HighShelf -f 8000 -g 3 --measure --structure df1
//	biquadinfo --list
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
