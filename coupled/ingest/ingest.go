// Package ingest turns the shapes callers hold into pairs ready for a
// PairSet. Nothing here checks pairs against each other; that is left to
// the set.
package ingest

import (
	"fmt"
	"sort"

	"github.com/GrayChrysTea/coupled-values/coupled/commons"
	"github.com/pkg/errors"
)

// Source is anything that can hand out its pairs, e.g. a PairSet.
type Source[V comparable] interface {
	Pairs() []*commons.Pair[V]
}

// ToPairs converts shape into pairs, keeping the input order. Map entries
// are ordered by their formatted key.
func ToPairs[V comparable](shape any) ([]*commons.Pair[V], error) {
	switch in := shape.(type) {
	case nil:
		return []*commons.Pair[V]{}, nil
	case *commons.Pair[V]:
		if in == nil {
			return nil, errors.Wrap(commons.ErrUnsupportedShape, "nil pair")
		}
		return ToPairs[V](*in)
	case commons.Pair[V]:
		first, second := in.Values()
		p, err := commons.NewPair(first, second)
		if err != nil {
			return nil, err
		}
		return []*commons.Pair[V]{p}, nil
	case []*commons.Pair[V]:
		out := make([][2]V, 0, len(in))
		for i, p := range in {
			if p == nil {
				return nil, errors.Wrapf(commons.ErrUnsupportedShape, "nil pair at index %d", i)
			}
			out = append(out, [2]V{p.First(), p.Second()})
		}
		return fromTuples(out)
	case [2]V:
		p, err := commons.NewPair(in[0], in[1])
		if err != nil {
			return nil, err
		}
		return []*commons.Pair[V]{p}, nil
	case [][2]V:
		return fromTuples(in)
	case [][]V:
		tuples := make([][2]V, 0, len(in))
		for i, t := range in {
			if len(t) != 2 {
				return nil, errors.Wrapf(commons.ErrUnsupportedShape, "tuple at index %d has %d elements", i, len(t))
			}
			tuples = append(tuples, [2]V{t[0], t[1]})
		}
		return fromTuples(tuples)
	case map[V]V:
		return FromMap(in)
	case Source[V]:
		return ToPairs[V](in.Pairs())
	}
	return nil, errors.Wrapf(commons.ErrUnsupportedShape, "%T", shape)
}

func fromTuples[V comparable](tuples [][2]V) ([]*commons.Pair[V], error) {
	out := make([]*commons.Pair[V], 0, len(tuples))
	for i, t := range tuples {
		p, err := commons.NewPair(t[0], t[1])
		if err != nil {
			return nil, errors.WithMessagef(err, "tuple at index %d", i)
		}
		out = append(out, p)
	}
	return out, nil
}

// FromMap builds one pair per entry. Keys and values need not be unique
// across entries here.
func FromMap[V comparable](m map[V]V) ([]*commons.Pair[V], error) {
	keys := make([]V, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	out := make([]*commons.Pair[V], 0, len(m))
	for _, k := range keys {
		p, err := commons.NewPair(k, m[k])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
