package ingest

import (
	"github.com/GrayChrysTea/coupled-values/coupled/commons"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FromDocument parses a YAML or JSON document holding a mapping, a list of
// two-element lists, or a single two-element list. Pairs come out in
// document order.
func FromDocument[V comparable](data []byte) ([]*commons.Pair[V], error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "parse pair document")
	}
	if root.Kind == 0 {
		return []*commons.Pair[V]{}, nil
	}
	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return []*commons.Pair[V]{}, nil
		}
		node = node.Content[0]
	}
	switch node.Kind {
	case yaml.MappingNode:
		return fromMappingNode[V](node)
	case yaml.SequenceNode:
		if isTuple(node) {
			p, err := fromTupleNode[V](node)
			if err != nil {
				return nil, err
			}
			return []*commons.Pair[V]{p}, nil
		}
		out := make([]*commons.Pair[V], 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.SequenceNode {
				return nil, errors.Wrapf(commons.ErrUnsupportedShape, "line %d: expected a two-element list", item.Line)
			}
			p, err := fromTupleNode[V](item)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, nil
	}
	return nil, errors.Wrapf(commons.ErrUnsupportedShape, "line %d: expected a mapping or a list", node.Line)
}

func isTuple(node *yaml.Node) bool {
	if len(node.Content) != 2 {
		return false
	}
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return false
		}
	}
	return true
}

func fromMappingNode[V comparable](node *yaml.Node) ([]*commons.Pair[V], error) {
	out := make([]*commons.Pair[V], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		p, err := decodePair[V](node.Content[i], node.Content[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func fromTupleNode[V comparable](node *yaml.Node) (*commons.Pair[V], error) {
	if len(node.Content) != 2 {
		return nil, errors.Wrapf(commons.ErrUnsupportedShape, "line %d: tuple has %d elements", node.Line, len(node.Content))
	}
	return decodePair[V](node.Content[0], node.Content[1])
}

func decodePair[V comparable](a, b *yaml.Node) (*commons.Pair[V], error) {
	var first, second V
	if err := a.Decode(&first); err != nil {
		return nil, errors.Wrapf(err, "line %d", a.Line)
	}
	if err := b.Decode(&second); err != nil {
		return nil, errors.Wrapf(err, "line %d", b.Line)
	}
	p, err := commons.NewPair(first, second)
	if err != nil {
		return nil, errors.WithMessagef(err, "line %d", a.Line)
	}
	return p, nil
}
