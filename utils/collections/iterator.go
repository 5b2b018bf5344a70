package collections

import "iter"

// Iterator walks a container once, front to back. Any mutation of the
// container after the iterator was created invalidates it: Next then returns
// ErrConcurrentModification and HasNext reports false.
type Iterator[V any] interface {
	HasNext() bool
	Next() (V, error)
}

type chainIterator[V any] struct {
	owner   *chain[V]
	current *node[V]
	version uint64
}

func (it *chainIterator[V]) valid() bool {
	return it.owner.version == it.version
}

func (it *chainIterator[V]) HasNext() bool {
	return it.current != nil && it.valid()
}

func (it *chainIterator[V]) Next() (v V, err error) {
	if !it.valid() {
		return v, ErrConcurrentModification
	}
	if it.current == nil {
		return v, ErrIterationExhausted
	}
	v = it.current.value
	it.current = it.current.next
	return v, nil
}

// seq adapts an Iterator to a range-over-func sequence. Mutating the container
// from inside the loop body panics with ErrConcurrentModification.
func seq[V any](it Iterator[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, err := it.Next()
			switch err {
			case nil:
			case ErrIterationExhausted:
				return
			default:
				panic(err)
			}
			if !yield(v) {
				return
			}
		}
	}
}
