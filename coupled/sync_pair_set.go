package coupled

import (
	"sync"

	"github.com/GrayChrysTea/coupled-values/coupled/commons"
)

// SyncPairSet guards a PairSet with a single mutex. Use Do to run a
// read-then-write sequence without another writer slipping in between.
type SyncPairSet[V comparable] struct {
	mu  sync.Mutex
	set *PairSet[V]
}

func NewSyncPairSet[V comparable](mode commons.ErrorMode, pairs ...*commons.Pair[V]) (*SyncPairSet[V], error) {
	set, err := NewPairSet(mode, pairs...)
	if err != nil {
		return nil, err
	}
	return Synchronized(set), nil
}

// Synchronized wraps set. The caller must stop using set directly.
func Synchronized[V comparable](set *PairSet[V]) *SyncPairSet[V] {
	return &SyncPairSet[V]{
		set: set,
	}
}

func (s *SyncPairSet[V]) Do(f func(set *PairSet[V]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return f(s.set)
}

func (s *SyncPairSet[V]) Contains(v V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Contains(v)
}

func (s *SyncPairSet[V]) Get(key V) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Get(key)
}

func (s *SyncPairSet[V]) Lookup(key V) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Lookup(key)
}

func (s *SyncPairSet[V]) Insert(p *commons.Pair[V]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Insert(p)
}

func (s *SyncPairSet[V]) Push(pairs ...*commons.Pair[V]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Push(pairs...)
}

func (s *SyncPairSet[V]) Update(key, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Update(key, value)
}

func (s *SyncPairSet[V]) Upsert(key, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Upsert(key, value)
}

func (s *SyncPairSet[V]) Remove(key V) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Remove(key)
}

func (s *SyncPairSet[V]) RemovePair(p *commons.Pair[V]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.RemovePair(p)
}

func (s *SyncPairSet[V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set.Clear()
}

func (s *SyncPairSet[V]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Size()
}

func (s *SyncPairSet[V]) Pairs() []*commons.Pair[V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Pairs()
}

// Snapshot returns an unguarded copy of the current set.
func (s *SyncPairSet[V]) Snapshot() *PairSet[V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Clone()
}

func (s *SyncPairSet[V]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.String()
}
