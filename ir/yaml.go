package ir

import (
	"github.com/goccy/go-yaml"
)

// MarshalYAML encodes a node as YAML with object keys in tree order.
func MarshalYAML(y *Node) ([]byte, error) {
	return yaml.Marshal(ToAny(y))
}

// MarshalJSON encodes a node as JSON, again in tree order.
func MarshalJSON(y *Node) ([]byte, error) {
	return yaml.MarshalWithOptions(ToAny(y), yaml.JSON())
}

// UnmarshalYAML parses a YAML (or JSON) document into a node tree. Object
// keys keep document order.
func UnmarshalYAML(data []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}
