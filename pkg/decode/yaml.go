package decode

import (
	"github.com/arthur-debert/exporter/pkg/array"
	"github.com/arthur-debert/exporter/pkg/errors"
	"gopkg.in/yaml.v3"
)

const mergeTag = "!!merge"

// FromYAML decodes a YAML (or JSON) document. An empty document decodes to
// nil.
func FromYAML(data []byte) (interface{}, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrDecode, "cannot decode yaml")
	}

	c := &yamlConverter{containers: make(map[*yaml.Node]*array.Array)}
	return c.convert(&doc)
}

// yamlConverter remembers the container built for each collection node so
// aliases share it.
type yamlConverter struct {
	containers map[*yaml.Node]*array.Array
}

func (c *yamlConverter) convert(n *yaml.Node) (interface{}, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return c.convert(n.Content[0])
	case yaml.AliasNode:
		return c.convert(n.Alias)
	case yaml.ScalarNode:
		return scalarValue(n)
	case yaml.SequenceNode:
		if a, ok := c.containers[n]; ok {
			return a, nil
		}
		a := &array.Array{}
		c.containers[n] = a
		for _, item := range n.Content {
			v, err := c.convert(item)
			if err != nil {
				return nil, err
			}
			a.Append(v)
		}
		return a, nil
	case yaml.MappingNode:
		if a, ok := c.containers[n]; ok {
			return a, nil
		}
		a := &array.Array{}
		c.containers[n] = a
		if err := c.fillMapping(a, n); err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, errors.Newf(errors.ErrDecode, "unexpected yaml node kind %d at line %d", n.Kind, n.Line)
	}
}

func (c *yamlConverter) fillMapping(a *array.Array, n *yaml.Node) error {
	var merges []*yaml.Node

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.ShortTag() == mergeTag {
			merges = append(merges, v)
			continue
		}

		key, err := mappingKey(k)
		if err != nil {
			return err
		}
		value, err := c.convert(v)
		if err != nil {
			return err
		}
		a.Set(key, value)
	}

	// Merged keys never override keys set explicitly.
	for _, m := range merges {
		if err := c.merge(a, m); err != nil {
			return err
		}
	}
	return nil
}

func (c *yamlConverter) merge(a *array.Array, n *yaml.Node) error {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	switch n.Kind {
	case yaml.SequenceNode:
		for _, item := range n.Content {
			if err := c.merge(a, item); err != nil {
				return err
			}
		}
		return nil
	case yaml.MappingNode:
		source, err := c.convert(n)
		if err != nil {
			return err
		}
		for _, e := range source.(*array.Array).Entries() {
			if !a.Has(e.Key) {
				a.Set(e.Key, e.Value)
			}
		}
		return nil
	default:
		return errors.Newf(errors.ErrDecode, "cannot merge non-mapping node at line %d", n.Line)
	}
}

// mappingKey returns an int for integer keys and the literal text for every
// other scalar key.
func mappingKey(k *yaml.Node) (interface{}, error) {
	if k.Kind == yaml.AliasNode {
		k = k.Alias
	}
	if k.Kind != yaml.ScalarNode {
		return nil, errors.Newf(errors.ErrDecode, "unsupported non-scalar mapping key at line %d", k.Line).
			WithDetail("line", k.Line)
	}
	if k.ShortTag() == "!!int" {
		var n int
		if err := k.Decode(&n); err == nil {
			return n, nil
		}
	}
	return k.Value, nil
}

// scalarValue decodes null, booleans and numbers. Everything else,
// timestamps included, stays text.
func scalarValue(n *yaml.Node) (interface{}, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool", "!!int", "!!float":
		var v interface{}
		if err := n.Decode(&v); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDecode, "cannot decode scalar at line %d", n.Line)
		}
		return v, nil
	default:
		return n.Value, nil
	}
}
