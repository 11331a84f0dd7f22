package uritemplate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalJSON decodes any JSON value. Object members keep their
// document order, numbers keep their literal text and null is undefined.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	val, err := decodeJSONValue(dec)
	if err != nil {
		return fmt.Errorf("uritemplate: decode JSON value: %w", err)
	}
	*v = val
	return nil
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return Undefined(), nil
	case string:
		return String(t), nil
	case json.Number:
		return String(t.String()), nil
	case bool:
		return Bool(t), nil
	case json.Delim:
		switch t {
		case '[':
			var items []Value
			for dec.More() {
				item, err := decodeJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return List(items...), nil

		case '{':
			var pairs []Pair
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key %v", keyTok)
				}
				item, err := decodeJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				pairs = append(pairs, Pair{Key: key, Value: item})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Map(pairs...), nil
		}
	}

	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

// UnmarshalYAML decodes any YAML node. Mapping entries keep their
// document order, scalars keep their literal text and null is undefined.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	val, err := valueFromNode(node)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func valueFromNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Undefined(), nil
		}
		return valueFromNode(node.Content[0])

	case yaml.AliasNode:
		return valueFromNode(node.Alias)

	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return Undefined(), nil
		}
		return String(node.Value), nil

	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := valueFromNode(child)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return List(items...), nil

	case yaml.MappingNode:
		pairs := make([]Pair, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind == yaml.AliasNode {
				keyNode = keyNode.Alias
			}
			if keyNode.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("uritemplate: line %d: mapping key must be a scalar", keyNode.Line)
			}
			item, err := valueFromNode(node.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			pairs = append(pairs, Pair{Key: keyNode.Value, Value: item})
		}
		return Map(pairs...), nil
	}

	return Value{}, fmt.Errorf("uritemplate: line %d: unsupported YAML node kind %d", node.Line, node.Kind)
}
