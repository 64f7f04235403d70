package internal

import (
	"github.com/GrayChrysTea/coupled-values/coupled/commons"
	"github.com/GrayChrysTea/coupled-values/utils/collections"
)

// ValueIndex maps every value held by a set of pairs to the pair owning it.
type ValueIndex[V comparable] interface {
	Owner(v V) (*commons.Pair[V], bool)
	Contains(v V) bool
	Bind(p *commons.Pair[V]) error
	Unbind(p *commons.Pair[V])
	Rebind(old, value V) error
	Clear()
	Size() int
}

type valueIndex[V comparable] struct {
	owners collections.Map[V, *commons.Pair[V]]
}

func NewValueIndex[V comparable](pairs []*commons.Pair[V]) (ValueIndex[V], error) {
	idx := &valueIndex[V]{
		owners: collections.NewHashMapWithCapacity[V, *commons.Pair[V]](2 * len(pairs)),
	}
	for _, p := range pairs {
		if err := idx.Bind(p); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

func (idx *valueIndex[V]) Owner(v V) (*commons.Pair[V], bool) {
	return idx.owners.Lookup(v)
}

func (idx *valueIndex[V]) Contains(v V) bool {
	return idx.owners.Contains(v)
}

// Bind registers both values of p. Nothing is registered if either value
// already has an owner.
func (idx *valueIndex[V]) Bind(p *commons.Pair[V]) error {
	first, second := p.Values()
	if idx.owners.Contains(first) || idx.owners.Contains(second) {
		return commons.ErrClashing
	}
	_ = idx.owners.Put(first, p, false)
	_ = idx.owners.Put(second, p, false)
	return nil
}

func (idx *valueIndex[V]) Unbind(p *commons.Pair[V]) {
	first, second := p.Values()
	if owner, ok := idx.owners.Lookup(first); ok && owner == p {
		_ = idx.owners.Delete(first)
	}
	if owner, ok := idx.owners.Lookup(second); ok && owner == p {
		_ = idx.owners.Delete(second)
	}
}

// Rebind moves ownership from old to value after the owning pair was edited.
func (idx *valueIndex[V]) Rebind(old, value V) error {
	owner, ok := idx.owners.Lookup(old)
	if !ok {
		return commons.ErrNotFound
	}
	if err := idx.owners.Put(value, owner, false); err != nil {
		return commons.ErrClashing
	}
	_ = idx.owners.Delete(old)
	return nil
}

func (idx *valueIndex[V]) Clear() {
	idx.owners.Clear()
}

func (idx *valueIndex[V]) Size() int {
	return idx.owners.Size()
}
