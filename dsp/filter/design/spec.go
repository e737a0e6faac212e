package design

import (
	"fmt"
	"strings"
)

// Spec is a semantic filter description. The set of implementations is
// closed; switch on the concrete type or on Kind.
type Spec interface {
	Kind() Kind
	spec()
}

// Bypass passes the signal through unchanged.
type Bypass struct{}

// LowPass is a second-order low-pass with cutoff Freq (Hz) and quality Q.
type LowPass struct {
	Freq, Q float32
}

// HighPass is a second-order high-pass with cutoff Freq (Hz) and quality Q.
type HighPass struct {
	Freq, Q float32
}

// BandPass is a second-order band-pass centered at Freq (Hz).
type BandPass struct {
	Freq, Q float32
}

// Notch rejects a band centered at Freq (Hz).
type Notch struct {
	Freq, Q float32
}

// AllPass is a second-order all-pass centered at Freq (Hz).
type AllPass struct {
	Freq, Q float32
}

// PeakingEq boosts (GainDB > 0) or cuts (GainDB < 0) a band around Freq.
type PeakingEq struct {
	Freq, Q, GainDB float32
}

// LowShelf scales frequencies below the corner Freq by GainDB.
type LowShelf struct {
	Freq, GainDB float32
}

// HighShelf scales frequencies above the corner Freq by GainDB.
type HighShelf struct {
	Freq, GainDB float32
}

// FirstOrderLowPass is a first-order low-pass with cutoff Freq (Hz).
type FirstOrderLowPass struct {
	Freq float32
}

// FirstOrderHighPass is a first-order high-pass with cutoff Freq (Hz).
type FirstOrderHighPass struct {
	Freq float32
}

// FirstOrderAllPass is a first-order all-pass with center Freq (Hz).
type FirstOrderAllPass struct {
	Freq float32
}

// FirstOrderLowShelf is a first-order low-shelf.
type FirstOrderLowShelf struct {
	Freq, GainDB float32
}

// FirstOrderHighShelf is a first-order high-shelf.
type FirstOrderHighShelf struct {
	Freq, GainDB float32
}

// OnePoleLowPass is a single-pole smoother, y += (1-p)(x-y) with
// p = exp(-2*pi*Freq/fs).
type OnePoleLowPass struct {
	Freq float32
}

func (Bypass) Kind() Kind              { return KindBypass }
func (LowPass) Kind() Kind             { return KindLowPass }
func (HighPass) Kind() Kind            { return KindHighPass }
func (BandPass) Kind() Kind            { return KindBandPass }
func (Notch) Kind() Kind               { return KindNotch }
func (AllPass) Kind() Kind             { return KindAllPass }
func (PeakingEq) Kind() Kind           { return KindPeakingEq }
func (LowShelf) Kind() Kind            { return KindLowShelf }
func (HighShelf) Kind() Kind           { return KindHighShelf }
func (FirstOrderLowPass) Kind() Kind   { return KindFirstOrderLowPass }
func (FirstOrderHighPass) Kind() Kind  { return KindFirstOrderHighPass }
func (FirstOrderAllPass) Kind() Kind   { return KindFirstOrderAllPass }
func (FirstOrderLowShelf) Kind() Kind  { return KindFirstOrderLowShelf }
func (FirstOrderHighShelf) Kind() Kind { return KindFirstOrderHighShelf }
func (OnePoleLowPass) Kind() Kind      { return KindOnePoleLowPass }

func (Bypass) spec()              {}
func (LowPass) spec()             {}
func (HighPass) spec()            {}
func (BandPass) spec()            {}
func (Notch) spec()               {}
func (AllPass) spec()             {}
func (PeakingEq) spec()           {}
func (LowShelf) spec()            {}
func (HighShelf) spec()           {}
func (FirstOrderLowPass) spec()   {}
func (FirstOrderHighPass) spec()  {}
func (FirstOrderAllPass) spec()   {}
func (FirstOrderLowShelf) spec()  {}
func (FirstOrderHighShelf) spec() {}
func (OnePoleLowPass) spec()      {}

// Kind identifies a Spec variant.
type Kind int

const (
	KindBypass Kind = iota
	KindLowPass
	KindHighPass
	KindBandPass
	KindNotch
	KindAllPass
	KindPeakingEq
	KindLowShelf
	KindHighShelf
	KindFirstOrderLowPass
	KindFirstOrderHighPass
	KindFirstOrderAllPass
	KindFirstOrderLowShelf
	KindFirstOrderHighShelf
	KindOnePoleLowPass

	numKinds
)

// params lists which Spec fields a kind carries.
type params struct {
	freq, q, gain bool
}

var kindInfo = [numKinds]struct {
	name string
	params
}{
	KindBypass:              {"Bypass", params{}},
	KindLowPass:             {"LowPass", params{freq: true, q: true}},
	KindHighPass:            {"HighPass", params{freq: true, q: true}},
	KindBandPass:            {"BandPass", params{freq: true, q: true}},
	KindNotch:               {"Notch", params{freq: true, q: true}},
	KindAllPass:             {"AllPass", params{freq: true, q: true}},
	KindPeakingEq:           {"PeakingEq", params{freq: true, q: true, gain: true}},
	KindLowShelf:            {"LowShelf", params{freq: true, gain: true}},
	KindHighShelf:           {"HighShelf", params{freq: true, gain: true}},
	KindFirstOrderLowPass:   {"FirstOrderLowPass", params{freq: true}},
	KindFirstOrderHighPass:  {"FirstOrderHighPass", params{freq: true}},
	KindFirstOrderAllPass:   {"FirstOrderAllPass", params{freq: true}},
	KindFirstOrderLowShelf:  {"FirstOrderLowShelf", params{freq: true, gain: true}},
	KindFirstOrderHighShelf: {"FirstOrderHighShelf", params{freq: true, gain: true}},
	KindOnePoleLowPass:      {"OnePoleLowPass", params{freq: true}},
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) valid() bool {
	return k >= 0 && k < numKinds
}

// String returns the variant name, e.g. "PeakingEq".
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindInfo[k].name
}

// HasQ reports whether specs of this kind carry a Q parameter.
func (k Kind) HasQ() bool {
	return k.valid() && kindInfo[k].q
}

// HasGain reports whether specs of this kind carry a gain in dB.
func (k Kind) HasGain() bool {
	return k.valid() && kindInfo[k].gain
}

// HasFreq reports whether specs of this kind carry a frequency.
func (k Kind) HasFreq() bool {
	return k.valid() && kindInfo[k].freq
}

// ParseKind resolves a variant name. Matching ignores case and surrounding
// whitespace.
func ParseKind(name string) (Kind, error) {
	name = strings.TrimSpace(name)
	for i := range kindInfo {
		if strings.EqualFold(kindInfo[i].name, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("design: %w: %q", ErrUnknownKind, name)
}

// MarshalText encodes the kind as its variant name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("design: %w: %d", ErrUnknownKind, int(k))
	}
	return []byte(kindInfo[k].name), nil
}

// UnmarshalText decodes a variant name as accepted by ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
