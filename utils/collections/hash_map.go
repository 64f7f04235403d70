package collections

type hashMap[K comparable, V any] struct {
	entries map[K]V
}

func NewHashMap[K comparable, V any]() Map[K, V] {
	return NewHashMapWithCapacity[K, V](0)
}

func NewHashMapWithCapacity[K comparable, V any](capacity int) Map[K, V] {
	return &hashMap[K, V]{
		entries: make(map[K]V, capacity),
	}
}

func (m *hashMap[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]
	return ok
}

// Put stores v under k. Unless forced, an existing key is left untouched
// and ErrKeyExisted is returned.
func (m *hashMap[K, V]) Put(k K, v V, forced bool) error {
	if !forced && m.Contains(k) {
		return ErrKeyExisted
	}
	m.entries[k] = v
	return nil
}

func (m *hashMap[K, V]) Get(k K) (v V, err error) {
	v, ok := m.entries[k]
	if !ok {
		return v, ErrKeyNotExisted
	}
	return v, nil
}

func (m *hashMap[K, V]) Lookup(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}

func (m *hashMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrKeyNotExisted
	}
	delete(m.entries, k)
	return nil
}

func (m *hashMap[K, V]) Clear() {
	m.entries = make(map[K]V)
}

func (m *hashMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *hashMap[K, V]) Keys() []K {
	arr := make([]K, 0, m.Size())
	for k := range m.entries {
		arr = append(arr, k)
	}
	return arr
}

func (m *hashMap[K, V]) Values() []V {
	arr := make([]V, 0, m.Size())
	for _, v := range m.entries {
		arr = append(arr, v)
	}
	return arr
}

// Range calls f for every entry until f returns false. Iteration order is
// unspecified.
func (m *hashMap[K, V]) Range(f func(k K, v V) bool) {
	for k, v := range m.entries {
		if !f(k, v) {
			return
		}
	}
}
