package design

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Preset is a named filter descriptor.
type Preset struct {
	Name   string     `json:"name" yaml:"name"`
	Filter Descriptor `json:"filter" yaml:"filter"`
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets reads a YAML document of the form
//
//	presets:
//	  - name: rumble
//	    filter: {type: HighPass, freq: 40, q: 0.707}
//
// Unknown keys are rejected and every descriptor is checked with
// [Descriptor.Spec]. An empty document yields no presets.
func LoadPresets(r io.Reader) ([]Preset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file presetFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("design: decode presets: %w", err)
	}

	for i, p := range file.Presets {
		if _, err := p.Filter.Spec(); err != nil {
			return nil, fmt.Errorf("design: preset %d (%q): %w", i, p.Name, err)
		}
	}

	return file.Presets, nil
}

// Lookup returns the preset with the given name.
func Lookup(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
