package biquad

import (
	"math"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-biquad/internal/testutil"
)

func TestIdentity(t *testing.T) {
	c := Identity()
	if c != (Coefficients{A0: 1}) {
		t.Fatalf("Identity() = %+v", c)
	}
	if !c.IsIdentity(0) {
		t.Fatal("Identity().IsIdentity(0) = false")
	}
}

func TestIsIdentity_Tolerance(t *testing.T) {
	near := Coefficients{A0: 1 + 1e-7, A1: 2e-7, A2: -1e-7, B1: 1e-7, B2: 0}
	if !near.IsIdentity(1e-6) {
		t.Fatalf("%+v should be identity within 1e-6", near)
	}
	if near.IsIdentity(1e-8) {
		t.Fatalf("%+v should not be identity within 1e-8", near)
	}
	if (Coefficients{}).IsIdentity(1e-3) {
		t.Fatal("zero coefficients are not the identity")
	}
}

func TestIsFirstOrder(t *testing.T) {
	if !(Coefficients{A0: 0.5, A1: 0.5, B1: -0.1}).IsFirstOrder() {
		t.Fatal("expected first-order")
	}
	if tracedCoefficients().IsFirstOrder() {
		t.Fatal("expected second-order")
	}
}

func TestImpulseResponse_MatchesDirectForm1(t *testing.T) {
	c := lowpass1k()
	ir := c.ImpulseResponse(64)
	if len(ir) != 64 {
		t.Fatalf("len=%d, want 64", len(ir))
	}

	ref := NewDirectForm1()
	ref.SetCoefficients(c)
	for i, x := range testutil.Impulse(len(ir), 0) {
		want := ir[i]
		if got := ref.ProcessSample(x); !almostEqual(got, want, eps) {
			t.Fatalf("ir[%d]: got %.9f, want %.9f", i, got, want)
		}
	}
}

func TestImpulseResponse_NonPositiveLength(t *testing.T) {
	if ir := tracedCoefficients().ImpulseResponse(0); ir != nil {
		t.Fatalf("expected nil, got %v", ir)
	}
	if ir := tracedCoefficients().ImpulseResponse(-3); ir != nil {
		t.Fatalf("expected nil, got %v", ir)
	}
}

func TestCoefficients_YAMLKeepsSignedZero(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	c := Coefficients{A0: 0.5, A1: negZero, A2: 0, B1: negZero, B2: float32(1) / 3}

	data, err := yaml.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}

	var got Coefficients
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	want := [5]float32{c.A0, c.A1, c.A2, c.B1, c.B2}
	for i, v := range [5]float32{got.A0, got.A1, got.A2, got.B1, got.B2} {
		if math.Float32bits(v) != math.Float32bits(want[i]) {
			t.Fatalf("term %d: got %v (%#x), want %v (%#x)\n%s",
				i, v, math.Float32bits(v), want[i], math.Float32bits(want[i]), data)
		}
	}
}
