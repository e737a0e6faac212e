package yamlfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{0, "0"},
		{float32(math.Copysign(0, -1)), "-0.0"},
		{1000, "1000"},
		{-4.5, "-4.5"},
		{float32(math.Inf(1)), ".inf"},
		{float32(math.Inf(-1)), "-.inf"},
		{float32(math.NaN()), ".nan"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in))
	}
}

func TestMapping_DecodesToSameBits(t *testing.T) {
	values := []float32{
		float32(math.Copysign(0, -1)),
		0,
		math.SmallestNonzeroFloat32,
		math.Nextafter32(1, 2),
		float32(1) / 3,
		float32(math.Inf(-1)),
	}
	keys := []string{"a", "b", "c", "d", "e", "f"}

	data, err := yaml.Marshal(Mapping(keys, values))
	require.NoError(t, err)

	var got map[string]float32
	require.NoError(t, yaml.Unmarshal(data, &got))
	for i, k := range keys {
		assert.Equal(t, math.Float32bits(values[i]), math.Float32bits(got[k]), "%s in %s", k, data)
	}
}

func TestMapping_Prefix(t *testing.T) {
	node := Mapping([]string{"x"}, []float32{2}, Scalar("type"), Scalar("Notch"))

	data, err := yaml.Marshal(node)
	require.NoError(t, err)
	assert.YAMLEq(t, "type: Notch\nx: 2\n", string(data))
}
