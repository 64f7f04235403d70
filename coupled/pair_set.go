package coupled

import (
	"strings"

	"github.com/GrayChrysTea/coupled-values/coupled/commons"
	"github.com/GrayChrysTea/coupled-values/coupled/ingest"
	"github.com/GrayChrysTea/coupled-values/coupled/internal"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	log "github.com/sirupsen/logrus"
)

// PairSet is a set of pairs in which no value belongs to more than one
// pair, so every value can be used to look up its counterpart.
//
// Pairs are kept in insertion order. The set owns its pairs: pairs handed
// in are copied and pairs handed out are copies. The zero value is an
// empty strict set. A PairSet is not safe for concurrent use, see
// SyncPairSet.
type PairSet[V comparable] struct {
	pairs []*commons.Pair[V]
	index internal.ValueIndex[V]
	mode  commons.ErrorMode
	log   *log.Entry
}

// NewPairSet builds a set from pairs, in order. If any pair clashes with an
// earlier one no set is returned.
func NewPairSet[V comparable](mode commons.ErrorMode, pairs ...*commons.Pair[V]) (*PairSet[V], error) {
	if !mode.Valid() {
		return nil, errors.Wrapf(commons.ErrInvalidErrorMode, "got %s", mode)
	}
	s := &PairSet[V]{
		mode: mode,
		log:  defaultLogger(),
	}
	s.lazyInit()
	if err := s.Push(pairs...); err != nil {
		return nil, err
	}
	return s, nil
}

// NewPairSetFromShape converts shape with ingest.ToPairs and builds a set
// from the result.
func NewPairSetFromShape[V comparable](mode commons.ErrorMode, shape any) (*PairSet[V], error) {
	pairs, err := ingest.ToPairs[V](shape)
	if err != nil {
		return nil, err
	}
	return NewPairSet(mode, pairs...)
}

func defaultLogger() *log.Entry {
	return log.WithFields(log.Fields{"component": "pairset"})
}

func (s *PairSet[V]) lazyInit() {
	if s.index == nil {
		s.index, _ = internal.NewValueIndex(s.pairs)
	}
	if s.log == nil {
		s.log = defaultLogger()
	}
}

func (s *PairSet[V]) SetLogger(entry *log.Entry) {
	s.log = entry
}

func (s *PairSet[V]) Mode() commons.ErrorMode {
	return s.mode
}

func (s *PairSet[V]) notFound(key V) error {
	if s.mode == commons.Lenient {
		return nil
	}
	return errors.Wrapf(commons.ErrNotFound, "%s does not exist in the set", commons.FormatValue(key))
}

func (s *PairSet[V]) reject(err error, op string) error {
	s.log.WithError(err).Debug(op, " rejected")
	return err
}

// own validates p and returns a copy for the set to keep.
func own[V comparable](p *commons.Pair[V]) (*commons.Pair[V], error) {
	if p == nil {
		return nil, errors.Wrap(commons.ErrInvalidPair, "nil pair")
	}
	first, second := p.Values()
	return commons.NewPair(first, second)
}

// Clashes reports whether candidate is equivalent to, or shares a value
// with, any pair of the set. Every mutation passes through this check.
func (s *PairSet[V]) Clashes(candidate *commons.Pair[V]) bool {
	s.lazyInit()
	first, second := candidate.Values()
	for _, v := range [2]V{first, second} {
		if owner, ok := s.index.Owner(v); ok && (candidate.IsEquivalentTo(owner) || candidate.ClashesWith(owner)) {
			return true
		}
	}
	return false
}

func (s *PairSet[V]) Contains(v V) bool {
	s.lazyInit()
	return s.index.Contains(v)
}

// ContainsPair reports whether the set holds a pair equivalent to p.
func (s *PairSet[V]) ContainsPair(p *commons.Pair[V]) bool {
	s.lazyInit()
	if p == nil {
		return false
	}
	owner, ok := s.index.Owner(p.First())
	return ok && owner.IsEquivalentTo(p)
}

// Get returns the counterpart of key. A missing key is ErrNotFound in
// strict mode and the zero value in lenient mode.
func (s *PairSet[V]) Get(key V) (v V, err error) {
	s.lazyInit()
	owner, ok := s.index.Owner(key)
	if !ok {
		return v, s.notFound(key)
	}
	return owner.Other(key)
}

// Lookup is Get in comma-ok form, regardless of the error mode.
func (s *PairSet[V]) Lookup(key V) (v V, ok bool) {
	s.lazyInit()
	owner, ok := s.index.Owner(key)
	if !ok {
		return v, false
	}
	v, err := owner.Other(key)
	return v, err == nil
}

func (s *PairSet[V]) Insert(p *commons.Pair[V]) error {
	s.lazyInit()
	owned, err := own(p)
	if err != nil {
		return s.reject(err, "insert")
	}
	if s.Clashes(owned) {
		return s.reject(errors.Wrapf(commons.ErrClashing, "%s clashes with another pair in the set", owned), "insert")
	}
	_ = s.index.Bind(owned)
	s.pairs = append(s.pairs, owned)
	s.log.WithField("pair", owned.MiniString()).Debug("pair inserted")
	return nil
}

// Push adds pairs in order. Either every pair is added or, on the first
// clash, none is.
func (s *PairSet[V]) Push(pairs ...*commons.Pair[V]) error {
	s.lazyInit()
	scratch := slices.Clone(s.pairs)
	idx, err := internal.NewValueIndex(scratch)
	if err != nil {
		return err
	}
	for i, p := range pairs {
		owned, err := own(p)
		if err != nil {
			return s.reject(errors.WithMessagef(err, "pair at index %d", i), "push")
		}
		if err := idx.Bind(owned); err != nil {
			return s.reject(errors.Wrapf(commons.ErrClashing, "%s at index %d clashes with another pair", owned, i), "push")
		}
		scratch = append(scratch, owned)
	}
	s.pairs = scratch
	s.index = idx
	s.log.WithField("count", len(pairs)).Debug("pairs pushed")
	return nil
}

// With returns a new set holding the pairs of s followed by pairs. s is
// left untouched.
func (s *PairSet[V]) With(pairs ...*commons.Pair[V]) (*PairSet[V], error) {
	c := s.Clone()
	if err := c.Push(pairs...); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the counterpart of key with value. Nothing changes when
// value already is the counterpart of key.
func (s *PairSet[V]) Update(key, value V) error {
	s.lazyInit()
	if key == value {
		return s.reject(errors.Wrapf(commons.ErrInvalidPair, "key %s cannot be its own counterpart", commons.FormatValue(key)), "update")
	}
	owner, ok := s.index.Owner(key)
	if !ok {
		return s.notFound(key)
	}
	if other, ok := s.index.Owner(value); ok {
		if other == owner {
			return nil
		}
		return s.reject(errors.Wrapf(commons.ErrClashing, "%s is already in %s", commons.FormatValue(value), other), "update")
	}
	return s.edit(owner, key, value)
}

// Upsert pairs key with value. The pair owning key is edited if there is
// one, otherwise the pair owning value, otherwise a new pair is inserted.
// Key and value owned by two different pairs is a clash.
func (s *PairSet[V]) Upsert(key, value V) error {
	s.lazyInit()
	candidate, err := commons.NewPair(key, value)
	if err != nil {
		return s.reject(err, "upsert")
	}
	keyOwner, hasKey := s.index.Owner(key)
	valueOwner, hasValue := s.index.Owner(value)
	switch {
	case hasKey && hasValue:
		if keyOwner == valueOwner {
			return nil
		}
		return s.reject(errors.Wrapf(commons.ErrClashing, "%s clashes with %s and %s", candidate, keyOwner, valueOwner), "upsert")
	case hasKey:
		return s.edit(keyOwner, key, value)
	case hasValue:
		return s.edit(valueOwner, value, key)
	}
	_ = s.index.Bind(candidate)
	s.pairs = append(s.pairs, candidate)
	s.log.WithField("pair", candidate.MiniString()).Debug("pair inserted")
	return nil
}

func (s *PairSet[V]) edit(owner *commons.Pair[V], key, value V) error {
	old, err := owner.Other(key)
	if err != nil {
		return err
	}
	if err := s.index.Rebind(old, value); err != nil {
		return s.reject(errors.Wrapf(err, "rebind %s", commons.FormatValue(value)), "update")
	}
	if err := owner.Edit(key, value); err != nil {
		_ = s.index.Rebind(value, old)
		return s.reject(err, "update")
	}
	s.log.WithField("pair", owner.MiniString()).Debug("pair updated")
	return nil
}

// Remove drops the pair owning key and returns the counterpart of key. A
// missing key is ErrNotFound in strict mode and the zero value in lenient
// mode.
func (s *PairSet[V]) Remove(key V) (v V, err error) {
	s.lazyInit()
	owner, ok := s.index.Owner(key)
	if !ok {
		return v, s.notFound(key)
	}
	v, err = owner.Other(key)
	if err != nil {
		return v, err
	}
	s.drop(owner)
	return v, nil
}

// RemovePair drops the pair equivalent to p.
func (s *PairSet[V]) RemovePair(p *commons.Pair[V]) error {
	s.lazyInit()
	if p == nil {
		return errors.Wrap(commons.ErrInvalidPair, "nil pair")
	}
	owner, ok := s.index.Owner(p.First())
	if !ok || !owner.IsEquivalentTo(p) {
		if s.mode == commons.Lenient {
			return nil
		}
		return errors.Wrapf(commons.ErrNotFound, "%s does not exist in the set", p)
	}
	s.drop(owner)
	return nil
}

func (s *PairSet[V]) drop(owner *commons.Pair[V]) {
	if i := slices.Index(s.pairs, owner); i >= 0 {
		s.pairs[i] = nil
		s.pairs = slices.Delete(s.pairs, i, i+1)
	}
	s.index.Unbind(owner)
	s.log.WithField("pair", owner.MiniString()).Debug("pair removed")
}

func (s *PairSet[V]) Clear() {
	s.lazyInit()
	s.pairs = nil
	s.index.Clear()
	s.log.Debug("set cleared")
}

func (s *PairSet[V]) Size() int {
	return len(s.pairs)
}

// IsSubsetOf reports whether every pair of s has an equivalent pair in o.
func (s *PairSet[V]) IsSubsetOf(o *PairSet[V]) bool {
	for _, p := range s.pairs {
		if o == nil || !o.ContainsPair(p) {
			return false
		}
	}
	return true
}

func (s *PairSet[V]) IsEquivalentTo(o *PairSet[V]) bool {
	if o == nil {
		return s.Size() == 0
	}
	return s.Size() == o.Size() && s.IsSubsetOf(o) && o.IsSubsetOf(s)
}

func (s *PairSet[V]) Clone() *PairSet[V] {
	c := &PairSet[V]{
		pairs: make([]*commons.Pair[V], 0, len(s.pairs)),
		mode:  s.mode,
		log:   s.log,
	}
	for _, p := range s.pairs {
		c.pairs = append(c.pairs, p.Clone())
	}
	c.lazyInit()
	return c
}

// Pairs returns copies of the pairs in insertion order.
func (s *PairSet[V]) Pairs() []*commons.Pair[V] {
	out := make([]*commons.Pair[V], 0, len(s.pairs))
	for _, p := range s.pairs {
		out = append(out, p.Clone())
	}
	return out
}

// Values returns both values of every pair, pair by pair.
func (s *PairSet[V]) Values() []V {
	out := make([]V, 0, 2*len(s.pairs))
	for _, p := range s.pairs {
		out = append(out, p.First(), p.Second())
	}
	return out
}

// Range calls f for every pair in insertion order until f returns false.
func (s *PairSet[V]) Range(f func(first, second V) bool) {
	for _, p := range s.pairs {
		if !f(p.Values()) {
			return
		}
	}
}

func (s *PairSet[V]) String() string {
	items := make([]string, 0, len(s.pairs))
	for _, p := range s.pairs {
		items = append(items, p.MiniString())
	}
	return "PairSet([" + strings.Join(items, ", ") + "])"
}

// SortedValues returns every value of s in ascending order.
func SortedValues[V constraints.Ordered](s *PairSet[V]) []V {
	values := s.Values()
	slices.Sort(values)
	return values
}
