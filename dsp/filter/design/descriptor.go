package design

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cwbudde/algo-biquad/internal/yamlfloat"
)

// Descriptor is the flat interchange form of a Spec. Parameters a kind does
// not carry must be zero; they are left out when encoding unless set.
// Encoded values, signed zeros included, decode to the same bits.
type Descriptor struct {
	Type   Kind    `json:"type" yaml:"type"`
	Freq   float32 `json:"freq" yaml:"freq"`
	Q      float32 `json:"q" yaml:"q"`
	GainDB float32 `json:"gain_db" yaml:"gain_db"`
}

type descriptorField struct {
	key   string
	value float32
}

// fields returns the parameters written for d in key order: the ones its kind
// carries and any other that is not +0.
func (d Descriptor) fields() []descriptorField {
	out := make([]descriptorField, 0, 3)
	if d.Type.HasFreq() || math.Float32bits(d.Freq) != 0 {
		out = append(out, descriptorField{"freq", d.Freq})
	}
	if d.Type.HasQ() || math.Float32bits(d.Q) != 0 {
		out = append(out, descriptorField{"q", d.Q})
	}
	if d.Type.HasGain() || math.Float32bits(d.GainDB) != 0 {
		out = append(out, descriptorField{"gain_db", d.GainDB})
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	var wire struct {
		Type   Kind     `json:"type"`
		Freq   *float32 `json:"freq,omitempty"`
		Q      *float32 `json:"q,omitempty"`
		GainDB *float32 `json:"gain_db,omitempty"`
	}
	wire.Type = d.Type
	for _, f := range d.fields() {
		v := f.value
		switch f.key {
		case "freq":
			wire.Freq = &v
		case "q":
			wire.Q = &v
		case "gain_db":
			wire.GainDB = &v
		}
	}
	return json.Marshal(wire)
}

// MarshalYAML implements yaml.Marshaler.
func (d Descriptor) MarshalYAML() (any, error) {
	name, err := d.Type.MarshalText()
	if err != nil {
		return nil, err
	}

	fields := d.fields()
	keys := make([]string, len(fields))
	values := make([]float32, len(fields))
	for i, f := range fields {
		keys[i], values[i] = f.key, f.value
	}
	return yamlfloat.Mapping(keys, values, yamlfloat.Scalar("type"), yamlfloat.Scalar(string(name))), nil
}

// Describe flattens spec into a Descriptor. A nil spec describes Bypass.
func Describe(spec Spec) Descriptor {
	switch s := spec.(type) {
	case LowPass:
		return Descriptor{Type: KindLowPass, Freq: s.Freq, Q: s.Q}
	case HighPass:
		return Descriptor{Type: KindHighPass, Freq: s.Freq, Q: s.Q}
	case BandPass:
		return Descriptor{Type: KindBandPass, Freq: s.Freq, Q: s.Q}
	case Notch:
		return Descriptor{Type: KindNotch, Freq: s.Freq, Q: s.Q}
	case AllPass:
		return Descriptor{Type: KindAllPass, Freq: s.Freq, Q: s.Q}
	case PeakingEq:
		return Descriptor{Type: KindPeakingEq, Freq: s.Freq, Q: s.Q, GainDB: s.GainDB}
	case LowShelf:
		return Descriptor{Type: KindLowShelf, Freq: s.Freq, GainDB: s.GainDB}
	case HighShelf:
		return Descriptor{Type: KindHighShelf, Freq: s.Freq, GainDB: s.GainDB}
	case FirstOrderLowPass:
		return Descriptor{Type: KindFirstOrderLowPass, Freq: s.Freq}
	case FirstOrderHighPass:
		return Descriptor{Type: KindFirstOrderHighPass, Freq: s.Freq}
	case FirstOrderAllPass:
		return Descriptor{Type: KindFirstOrderAllPass, Freq: s.Freq}
	case FirstOrderLowShelf:
		return Descriptor{Type: KindFirstOrderLowShelf, Freq: s.Freq, GainDB: s.GainDB}
	case FirstOrderHighShelf:
		return Descriptor{Type: KindFirstOrderHighShelf, Freq: s.Freq, GainDB: s.GainDB}
	case OnePoleLowPass:
		return Descriptor{Type: KindOnePoleLowPass, Freq: s.Freq}
	default:
		return Descriptor{Type: KindBypass}
	}
}

// Spec rebuilds the filter description. It fails with ErrUnknownKind for an
// out-of-range Type and with ErrUnusedField when a parameter the kind does
// not carry is non-zero. Parameter values are not range-checked.
func (d Descriptor) Spec() (Spec, error) {
	if !d.Type.valid() {
		return nil, fmt.Errorf("design: %w: %d", ErrUnknownKind, int(d.Type))
	}

	if d.Freq != 0 && !d.Type.HasFreq() {
		return nil, fmt.Errorf("design: %s: %w: freq", d.Type, ErrUnusedField)
	}
	if d.Q != 0 && !d.Type.HasQ() {
		return nil, fmt.Errorf("design: %s: %w: q", d.Type, ErrUnusedField)
	}
	if d.GainDB != 0 && !d.Type.HasGain() {
		return nil, fmt.Errorf("design: %s: %w: gain_db", d.Type, ErrUnusedField)
	}

	switch d.Type {
	case KindLowPass:
		return LowPass{Freq: d.Freq, Q: d.Q}, nil
	case KindHighPass:
		return HighPass{Freq: d.Freq, Q: d.Q}, nil
	case KindBandPass:
		return BandPass{Freq: d.Freq, Q: d.Q}, nil
	case KindNotch:
		return Notch{Freq: d.Freq, Q: d.Q}, nil
	case KindAllPass:
		return AllPass{Freq: d.Freq, Q: d.Q}, nil
	case KindPeakingEq:
		return PeakingEq{Freq: d.Freq, Q: d.Q, GainDB: d.GainDB}, nil
	case KindLowShelf:
		return LowShelf{Freq: d.Freq, GainDB: d.GainDB}, nil
	case KindHighShelf:
		return HighShelf{Freq: d.Freq, GainDB: d.GainDB}, nil
	case KindFirstOrderLowPass:
		return FirstOrderLowPass{Freq: d.Freq}, nil
	case KindFirstOrderHighPass:
		return FirstOrderHighPass{Freq: d.Freq}, nil
	case KindFirstOrderAllPass:
		return FirstOrderAllPass{Freq: d.Freq}, nil
	case KindFirstOrderLowShelf:
		return FirstOrderLowShelf{Freq: d.Freq, GainDB: d.GainDB}, nil
	case KindFirstOrderHighShelf:
		return FirstOrderHighShelf{Freq: d.Freq, GainDB: d.GainDB}, nil
	case KindOnePoleLowPass:
		return OnePoleLowPass{Freq: d.Freq}, nil
	default:
		return Bypass{}, nil
	}
}

// String formats the descriptor for tables and error messages, e.g.
// "PeakingEq(freq=1000 q=0.7 gain=-6dB)".
func (d Descriptor) String() string {
	out := d.Type.String() + "("
	sep := ""
	if d.Type.HasFreq() {
		out += fmt.Sprintf("freq=%g", d.Freq)
		sep = " "
	}
	if d.Type.HasQ() {
		out += fmt.Sprintf("%sq=%g", sep, d.Q)
		sep = " "
	}
	if d.Type.HasGain() {
		out += fmt.Sprintf("%sgain=%gdB", sep, d.GainDB)
	}
	return out + ")"
}
