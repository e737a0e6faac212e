// Package yamlfloat writes float32 values as YAML scalars that yaml.v3
// decodes back to the same bits.
package yamlfloat

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Format returns the shortest exact form of v. "-0" would resolve as the
// integer 0, so negative zero is written as "-0.0".
func Format(v float32) string {
	s := strconv.FormatFloat(float64(v), 'g', -1, 32)
	switch s {
	case "-0":
		return "-0.0"
	case "+Inf":
		return ".inf"
	case "-Inf":
		return "-.inf"
	case "NaN":
		return ".nan"
	}
	return s
}

// Scalar returns a plain scalar node holding value.
func Scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}

// Mapping builds a mapping node from keys and float values in order.
// prefix holds already-built key/value nodes placed before them.
func Mapping(keys []string, values []float32, prefix ...*yaml.Node) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Content: prefix}
	for i, k := range keys {
		node.Content = append(node.Content, Scalar(k), Scalar(Format(values[i])))
	}
	return node
}
