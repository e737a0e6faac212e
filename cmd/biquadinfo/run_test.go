package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-biquad/dsp/filter/design"
)

func runArgs(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writePresets(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eq.yaml")
	doc := `presets:
  - name: rumble
    filter: {type: HighPass, freq: 40, q: 0.707}
  - name: presence
    filter: {type: PeakingEq, freq: 3000, q: 1.2, gain_db: 2.5}
  - name: air
    filter: {type: HighShelf, freq: 12000, gain_db: 1.5}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestRun_List(t *testing.T) {
	code, out, _ := runArgs("--list")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "PeakingEq")
	assert.Contains(t, out, "freq q gain")
	assert.Contains(t, out, "OnePoleLowPass")
	assert.Equal(t, len(design.Kinds())+2, strings.Count(out, "\n"))
}

func TestRun_DefaultTable(t *testing.T) {
	code, out, errOut := runArgs()
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "LowPass(freq=1000 q=0.707)")
	assert.Contains(t, out, "Freq [Hz]")
	assert.Contains(t, out, "-3.01")
	assert.Contains(t, out, "true")
}

func TestRun_ShelfIgnoresDefaultQ(t *testing.T) {
	code, out, errOut := runArgs("-t", "lowshelf", "-f", "200", "-g", "6")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "LowShelf(freq=200 gain=6dB)")
}

func TestRun_JSON(t *testing.T) {
	code, out, errOut := runArgs("--type", "PeakingEq", "--freq", "3150", "--q", "1.4", "--gain", "-4.5", "--rate", "44100", "--format", "json")
	require.Equal(t, 0, code, errOut)

	var reports []report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)

	spec := design.PeakingEq{Freq: 3150, Q: 1.4, GainDB: -4.5}
	assert.Equal(t, design.Describe(spec), reports[0].Filter)
	assert.Equal(t, design.Derive(spec, design.SampleTime(44100)), reports[0].Coefficients)
	assert.InDelta(t, 44100, reports[0].SampleRate, 0)
	assert.True(t, reports[0].Stable)
}

func TestRun_YAMLPresets(t *testing.T) {
	path := writePresets(t)
	code, out, errOut := runArgs("--presets", path, "--format", "yaml", "air", "rumble")
	require.Equal(t, 0, code, errOut)

	var reports []report
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "air", reports[0].Name)
	assert.Equal(t, "rumble", reports[1].Name)

	spec, err := reports[1].Filter.Spec()
	require.NoError(t, err)
	assert.Equal(t, design.Derive(spec, design.SampleTime(48000)), reports[1].Coefficients)
}

func TestRun_PresetSelection(t *testing.T) {
	path := writePresets(t)

	code, out, errOut := runArgs("-p", path)
	require.Equal(t, 0, code, errOut)
	for _, name := range []string{"rumble", "presence", "air"} {
		assert.Contains(t, out, name)
	}

	code, out, errOut = runArgs("-p", path, "presence", "nope")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, `warning: unknown preset "nope"`)
	assert.Contains(t, out, "presence")
	assert.NotContains(t, out, "rumble")

	code, _, errOut = runArgs("-p", path, "nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no matching presets")
}

func TestRun_Measure(t *testing.T) {
	code, out, errOut := runArgs("-t", "HighShelf", "-f", "4000", "-g", "6", "--measure", "--structure", "df1", "--points", "1000,20000")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "measured")
	assert.Equal(t, 2, strings.Count(out, "+5.9")+strings.Count(out, "+6.0"))
}

func TestRun_PointsAboveNyquist(t *testing.T) {
	code, out, errOut := runArgs("--rate", "8000", "--points", "100,5000", "--measure")
	require.Equal(t, 0, code, errOut)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	last := strings.Fields(lines[len(lines)-1])
	assert.Equal(t, []string{"5000", "-", "-"}, last)
}

func TestRun_Errors(t *testing.T) {
	path := writePresets(t)
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("presets:\n  - name: x\n    filter: {type: Notch, freq: 50, gain_db: 1}\n"), 0o600))

	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"unknown kind", []string{"-t", "Butterworth"}, 2, "unknown filter kind"},
		{"unknown format", []string{"-o", "xml"}, 2, "unknown format"},
		{"bad rate", []string{"-r", "0"}, 2, "sample rate must be positive"},
		{"infinite rate", []string{"-r", "+Inf"}, 2, "sample rate must be positive"},
		{"names without presets", []string{"rumble"}, 2, "without --presets"},
		{"bad structure", []string{"-p", path, "-m", "-s", "df3"}, 2, "unknown structure"},
		{"bad fft size", []string{"-m", "--size", "1"}, 2, "size must be at least 2"},
		{"bad flag", []string{"--nope"}, 2, "unknown flag"},
		{"missing preset file", []string{"-p", filepath.Join(t.TempDir(), "none.yaml")}, 1, "error:"},
		{"invalid preset", []string{"-p", bad}, 1, "not used"},
		{"bad values checked before file", []string{"-p", filepath.Join(t.TempDir(), "none.yaml"), "-o", "xml"}, 2, "unknown format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runArgs(tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, _, errOut := runArgs("--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "Usage: biquadinfo")
}
