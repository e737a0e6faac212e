package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
	"github.com/cwbudde/algo-biquad/measure/response"
)

var defaultPoints = []float64{20, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000}

type options struct {
	rate      float64
	kind      string
	freq      float32
	q         float32
	gain      float32
	presets   string
	format    string
	structure string
	measure   bool
	size      int
	points    []float64
	list      bool
}

// entry is one filter to report on.
type entry struct {
	Name   string            `json:"name" yaml:"name"`
	Filter design.Descriptor `json:"filter" yaml:"filter"`
}

// report is the machine-readable output for one entry.
type report struct {
	Name         string              `json:"name" yaml:"name"`
	Filter       design.Descriptor   `json:"filter" yaml:"filter"`
	SampleRate   float64             `json:"sample_rate" yaml:"sample_rate"`
	Coefficients biquad.Coefficients `json:"coefficients" yaml:"coefficients"`
	Stable       bool                `json:"stable" yaml:"stable"`
}

func newFlagSet(opts *options, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("biquadinfo", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Float64VarP(&opts.rate, "rate", "r", 48000, "sample rate in Hz")
	fs.StringVarP(&opts.kind, "type", "t", "LowPass", "filter kind (see --list)")
	fs.Float32VarP(&opts.freq, "freq", "f", 1000, "cutoff, center or corner frequency in Hz")
	fs.Float32VarP(&opts.q, "q", "q", 0.707, "quality factor (kinds with Q only)")
	fs.Float32VarP(&opts.gain, "gain", "g", 0, "gain in dB (peaking and shelving kinds only)")
	fs.StringVarP(&opts.presets, "presets", "p", "", "YAML preset file")
	fs.StringVarP(&opts.format, "format", "o", "table", "output format: table, json or yaml")
	fs.StringVarP(&opts.structure, "structure", "s", "df2t", "realization measured by --measure: df1 or df2t")
	fs.BoolVarP(&opts.measure, "measure", "m", false, "measure the realization by FFT and add it to the table")
	fs.IntVar(&opts.size, "size", 8192, "FFT size for --measure")
	fs.Float64SliceVar(&opts.points, "points", defaultPoints, "frequencies for the magnitude table")
	fs.BoolVarP(&opts.list, "list", "l", false, "list filter kinds and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: biquadinfo [flags] [preset-name ...]\n\n")
		fmt.Fprintf(stderr, "Derives biquad coefficients and prints poles, zeros and magnitude response.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  biquadinfo --type LowPass --freq 1000 --q 0.707\n")
		fmt.Fprintf(stderr, "  biquadinfo -t PeakingEq -f 3150 -q 1.4 -g -4.5 --format yaml\n")
		fmt.Fprintf(stderr, "  biquadinfo --presets eq.yaml rumble presence\n")
		fmt.Fprintf(stderr, "  biquadinfo --list\n")
	}

	return fs
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.list {
		if err := printKinds(stdout); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := checkFlags(opts, fs.Args()); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	entries, err := resolveEntries(opts, fs.Args(), stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if len(entries) == 0 {
		fmt.Fprintf(stderr, "error: no matching presets\n")
		return 1
	}

	reports, err := buildReports(entries, opts.rate)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	switch strings.ToLower(opts.format) {
	case "json":
		err = writeJSON(stdout, reports)
	case "yaml":
		err = writeYAML(stdout, reports)
	default:
		err = writeTables(stdout, reports, opts)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

// checkFlags validates flag values before any file is read. Its errors are
// usage errors.
func checkFlags(opts options, names []string) error {
	if !core.ValidSampleRate(opts.rate) {
		return fmt.Errorf("sample rate must be positive, got %g", opts.rate)
	}

	switch strings.ToLower(opts.format) {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q (table, json, yaml)", opts.format)
	}

	if opts.presets == "" {
		if len(names) > 0 {
			return fmt.Errorf("preset names given without --presets")
		}
		if _, err := descriptorFromFlags(opts); err != nil {
			return err
		}
	}

	if opts.measure {
		if _, err := biquad.ParseStructure(opts.structure); err != nil {
			return err
		}
		if opts.size < 2 {
			return fmt.Errorf("%w: %d", response.ErrInvalidSize, opts.size)
		}
	}

	return nil
}

// resolveEntries builds the filter list from either the preset file or the
// single-filter flags.
func resolveEntries(opts options, names []string, stderr io.Writer) ([]entry, error) {
	if opts.presets == "" {
		d, err := descriptorFromFlags(opts)
		if err != nil {
			return nil, err
		}
		return []entry{{Name: d.Type.String(), Filter: d}}, nil
	}

	f, err := os.Open(opts.presets)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	presets, err := design.LoadPresets(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.presets, err)
	}

	return selectPresets(presets, names, stderr), nil
}

func selectPresets(presets []design.Preset, names []string, stderr io.Writer) []entry {
	var out []entry
	if len(names) == 0 {
		for _, p := range presets {
			out = append(out, entry{Name: p.Name, Filter: p.Filter})
		}
		return out
	}

	for _, name := range names {
		p, ok := design.Lookup(presets, strings.TrimSpace(name))
		if !ok {
			fmt.Fprintf(stderr, "warning: unknown preset %q\n", name)
			continue
		}
		out = append(out, entry{Name: p.Name, Filter: p.Filter})
	}
	return out
}

// descriptorFromFlags keeps only the parameters the kind carries, so the
// default --q does not trip ErrUnusedField for shelving kinds.
func descriptorFromFlags(opts options) (design.Descriptor, error) {
	kind, err := design.ParseKind(opts.kind)
	if err != nil {
		return design.Descriptor{}, fmt.Errorf("%w (use --list to see available)", err)
	}

	d := design.Descriptor{Type: kind}
	if kind.HasFreq() {
		d.Freq = opts.freq
	}
	if kind.HasQ() {
		d.Q = opts.q
	}
	if kind.HasGain() {
		d.GainDB = opts.gain
	}
	return d, nil
}

func buildReports(entries []entry, sampleRate float64) ([]report, error) {
	st := design.SampleTime(float32(sampleRate))
	reports := make([]report, 0, len(entries))
	for _, e := range entries {
		spec, err := e.Filter.Spec()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		c := design.Derive(spec, st)
		reports = append(reports, report{
			Name:         e.Name,
			Filter:       e.Filter,
			SampleRate:   sampleRate,
			Coefficients: c,
			Stable:       c.IsStable(),
		})
	}
	return reports, nil
}

func printKinds(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kind\tParameters\n")
	fmt.Fprintf(tw, "----\t----------\n")
	for _, k := range design.Kinds() {
		var params []string
		if k.HasFreq() {
			params = append(params, "freq")
		}
		if k.HasQ() {
			params = append(params, "q")
		}
		if k.HasGain() {
			params = append(params, "gain")
		}
		if len(params) == 0 {
			params = append(params, "-")
		}
		fmt.Fprintf(tw, "%s\t%s\n", k, strings.Join(params, " "))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, reports []report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func writeYAML(w io.Writer, reports []report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}
	return enc.Close()
}

func writeTables(w io.Writer, reports []report, opts options) error {
	if err := writeCoefficientTable(w, reports); err != nil {
		return err
	}
	fmt.Fprintln(w)

	var measured [][]float64
	if opts.measure {
		var err error
		measured, err = measureAll(reports, opts)
		if err != nil {
			return err
		}
	}

	return writeMagnitudeTable(w, reports, measured, opts.points)
}

func writeCoefficientTable(w io.Writer, reports []report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tFilter\ta0\ta1\ta2\tb1\tb2\tPoles\tStable\n")
	fmt.Fprintf(tw, "----\t------\t--\t--\t--\t--\t--\t-----\t------\n")
	for _, r := range reports {
		c := r.Coefficients
		fmt.Fprintf(tw, "%s\t%s\t%.9g\t%.9g\t%.9g\t%.9g\t%.9g\t%s\t%t\n",
			r.Name, r.Filter, c.A0, c.A1, c.A2, c.B1, c.B2, formatRoots(c.Poles()), r.Stable)
	}
	return tw.Flush()
}

func formatRoots(roots [2]complex128) string {
	return fmt.Sprintf("%.4f%+.4fi, %.4f%+.4fi",
		real(roots[0]), imag(roots[0]), real(roots[1]), imag(roots[1]))
}

// measureAll runs every report through the FFT analyzer and returns the
// measured magnitude in dB at each table point.
func measureAll(reports []report, opts options) ([][]float64, error) {
	structure, err := biquad.ParseStructure(opts.structure)
	if err != nil {
		return nil, err
	}

	a, err := response.New(response.WithSize(opts.size), response.WithSampleRate(opts.rate))
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(reports))
	for i, r := range reports {
		res, err := a.MeasureCoefficients(r.Coefficients, structure)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.Name, err)
		}
		out[i] = make([]float64, len(opts.points))
		for j, freq := range opts.points {
			out[i][j] = res.MagnitudeDBAt(freq)
		}
	}
	return out, nil
}

func writeMagnitudeTable(w io.Writer, reports []report, measured [][]float64, points []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Freq [Hz]\t")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s [dB]\t", r.Name)
		if measured != nil {
			fmt.Fprintf(tw, "measured\t")
		}
	}
	fmt.Fprintln(tw)

	for j, freq := range points {
		fmt.Fprintf(tw, "%.0f\t", freq)
		for i, r := range reports {
			inRange := freq >= 0 && freq <= r.SampleRate/2
			if inRange {
				fmt.Fprintf(tw, "%+.2f\t", r.Coefficients.MagnitudeDB(freq, r.SampleRate))
			} else {
				fmt.Fprintf(tw, "-\t")
			}
			if measured == nil {
				continue
			}
			if inRange {
				fmt.Fprintf(tw, "%+.2f\t", measured[i][j])
			} else {
				fmt.Fprintf(tw, "-\t")
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
