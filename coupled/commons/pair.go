package commons

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Pair is an unordered couple of two distinct values. Either value can be
// used to look up the other one.
type Pair[V comparable] struct {
	first  V
	second V
}

func NewPair[V comparable](first, second V) (*Pair[V], error) {
	if first == second {
		return nil, errors.Wrapf(ErrInvalidPair, "got %s twice", FormatValue(first))
	}
	return &Pair[V]{
		first:  first,
		second: second,
	}, nil
}

func (p *Pair[V]) First() V {
	return p.first
}

func (p *Pair[V]) Second() V {
	return p.second
}

func (p *Pair[V]) Values() (V, V) {
	return p.first, p.second
}

func (p *Pair[V]) Has(v V) bool {
	return v == p.first || v == p.second
}

// Other returns the counterpart of key.
func (p *Pair[V]) Other(key V) (v V, err error) {
	switch key {
	case p.first:
		return p.second, nil
	case p.second:
		return p.first, nil
	}
	return v, errors.Wrapf(ErrNotFound, "%s is not in %s", FormatValue(key), p)
}

// Edit replaces the counterpart of key with value.
func (p *Pair[V]) Edit(key, value V) error {
	if !p.Has(key) {
		return errors.Wrapf(ErrNotFound, "%s is not in %s", FormatValue(key), p)
	}
	if key == value {
		return errors.Wrapf(ErrInvalidPair, "key %s cannot be its own counterpart", FormatValue(key))
	}
	if key == p.first {
		p.second = value
	} else {
		p.first = value
	}
	return nil
}

// IsEquivalentTo reports whether both pairs hold the same values, in any order.
func (p *Pair[V]) IsEquivalentTo(o *Pair[V]) bool {
	if p == o {
		return true
	}
	if o == nil {
		return false
	}
	return (p.first == o.first && p.second == o.second) ||
		(p.first == o.second && p.second == o.first)
}

// ClashesWith reports whether o holds any value of p. Equivalent pairs clash.
func (p *Pair[V]) ClashesWith(o *Pair[V]) bool {
	if o == nil {
		return false
	}
	return p.Has(o.first) || p.Has(o.second)
}

func (p *Pair[V]) Clone() *Pair[V] {
	return &Pair[V]{
		first:  p.first,
		second: p.second,
	}
}

func (p Pair[V]) String() string {
	return fmt.Sprintf("Pair(%s, %s)", FormatValue(p.first), FormatValue(p.second))
}

// MiniString is the short form used when a PairSet is printed.
func (p Pair[V]) MiniString() string {
	return FormatValue(p.first) + "~" + FormatValue(p.second)
}

func (p Pair[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]V{p.first, p.second})
}

func (p *Pair[V]) UnmarshalJSON(data []byte) error {
	var values [2]V
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	pair, err := NewPair(values[0], values[1])
	if err != nil {
		return err
	}
	*p = *pair
	return nil
}

// FormatValue renders a pair element, quoting strings.
func FormatValue(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
