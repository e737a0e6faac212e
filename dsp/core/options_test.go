package core

import (
	"math"
	"testing"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000), nil, WithBlockSize(2048))
	if cfg.SampleRate != 96000 {
		t.Fatalf("sample rate = %v, want 96000", cfg.SampleRate)
	}
	if cfg.BlockSize != 2048 {
		t.Fatalf("block size = %d, want 2048", cfg.BlockSize)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	def := DefaultProcessorConfig()
	for _, rate := range []float64{0, -44100, math.NaN(), math.Inf(1)} {
		cfg := ApplyProcessorOptions(WithSampleRate(rate), WithBlockSize(-1))
		if cfg != def {
			t.Fatalf("rate %v: cfg = %#v, want %#v", rate, cfg, def)
		}
	}
}

func TestProcessorConfig_SampleTime(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(44100))
	if got, want := cfg.SampleTime(), float32(1)/float32(44100); got != want {
		t.Fatalf("SampleTime() = %v, want %v", got, want)
	}
}

func TestValidSampleRate(t *testing.T) {
	tests := []struct {
		rate float64
		want bool
	}{
		{48000, true},
		{1, true},
		{0, false},
		{-1, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}
	for _, tt := range tests {
		if got := ValidSampleRate(tt.rate); got != tt.want {
			t.Errorf("ValidSampleRate(%v) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
