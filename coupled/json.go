package coupled

import (
	"github.com/GrayChrysTea/coupled-values/coupled/ingest"
	"github.com/goccy/go-json"
)

// MarshalJSON encodes the set as a list of two-element lists in insertion
// order.
func (s *PairSet[V]) MarshalJSON() ([]byte, error) {
	tuples := make([][2]V, 0, s.Size())
	s.Range(func(first, second V) bool {
		tuples = append(tuples, [2]V{first, second})
		return true
	})
	return json.Marshal(tuples)
}

// UnmarshalJSON replaces the pairs of s. On error s is left as it was.
func (s *PairSet[V]) UnmarshalJSON(data []byte) error {
	var tuples [][2]V
	if err := json.Unmarshal(data, &tuples); err != nil {
		return err
	}
	pairs, err := ingest.ToPairs[V](tuples)
	if err != nil {
		return err
	}
	fresh := &PairSet[V]{
		mode: s.mode,
		log:  s.log,
	}
	fresh.lazyInit()
	if err := fresh.Push(pairs...); err != nil {
		return err
	}
	s.pairs = fresh.pairs
	s.index = fresh.index
	s.log = fresh.log
	return nil
}
