package collections

type Map[K any, V any] interface {
	Contains(k K) bool
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	Lookup(k K) (V, bool)
	Delete(k K) error
	Clear()
	Size() int
	Keys() []K
	Values() []V
	Range(f func(k K, v V) bool)
}
